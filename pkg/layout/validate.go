package layout

import (
	"math"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// SiblingOverlap identifies an unordered pair of same-parent nodes whose
// bounding boxes overlap. A and B follow sibling order.
type SiblingOverlap struct {
	A, B string
}

// EdgeProximity reports an edge whose straight segment between its
// endpoints' centers passes close to an unrelated node's box.
type EdgeProximity struct {
	EdgeID   string
	NodeID   string
	Distance float64
}

// ContainmentViolation reports a child box not fully enclosed by its
// container.
type ContainmentViolation struct {
	Container, Child string
}

// Diagnostics is the read-only result of [Validate]. Sibling overlaps and
// containment violations indicate a broken layout invariant; edge
// proximities are informational only, since edges legitimately cross
// container boundaries.
type Diagnostics struct {
	SiblingOverlaps       []SiblingOverlap
	EdgeProximities       []EdgeProximity
	ContainmentViolations []ContainmentViolation
}

// Clean reports whether the layout invariants hold. Edge proximities do not
// count against cleanliness.
func (d Diagnostics) Clean() bool {
	return len(d.SiblingOverlaps) == 0 && len(d.ContainmentViolations) == 0
}

// Validate inspects the settled geometry and reports diagnostics. It never
// mutates geometry.
//
// Three checks run:
//
//   - sibling collisions: same-parent pairs whose boxes overlap, expected
//     empty after [ResolveCollisions];
//   - edge near-crossings: edges whose center-to-center segment passes
//     within the configured threshold of a node's box, excluding the edge's
//     own endpoints, their container ancestors, and their descendants;
//   - containment: a direct re-check that every non-leaf container encloses
//     each of its direct children, the invariant [SizeContainers]
//     establishes.
func Validate(c *Context) Diagnostics {
	var d Diagnostics

	for _, parent := range groupKeys(c) {
		siblings := c.children[parent]
		for i := 0; i < len(siblings); i++ {
			for j := i + 1; j < len(siblings); j++ {
				if siblings[i].Overlaps(siblings[j]) {
					d.SiblingOverlaps = append(d.SiblingOverlaps, SiblingOverlap{
						A: siblings[i].ID,
						B: siblings[j].ID,
					})
				}
			}
		}
	}

	for _, e := range c.edges {
		d.EdgeProximities = append(d.EdgeProximities, edgeProximities(c, e)...)
	}

	for _, n := range c.nodes {
		if !n.IsContainer() {
			continue
		}
		for _, ch := range c.children[n.ID] {
			if !n.Encloses(ch) {
				d.ContainmentViolations = append(d.ContainmentViolations, ContainmentViolation{
					Container: n.ID,
					Child:     ch.ID,
				})
			}
		}
	}

	return d
}

// groupKeys returns the parent IDs (including "" for roots) in node order.
func groupKeys(c *Context) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, n := range c.nodes {
		pid := n.Data.ParentID
		if _, done := seen[pid]; done {
			continue
		}
		seen[pid] = struct{}{}
		keys = append(keys, pid)
	}
	return keys
}

// edgeProximities finds nodes unrelated to the edge whose box lies within
// the proximity threshold of the edge's center-to-center segment.
func edgeProximities(c *Context, e diagram.Edge) []EdgeProximity {
	src, okS := c.byID[e.Source]
	dst, okT := c.byID[e.Target]
	if !okS || !okT {
		return nil
	}

	a, b := src.Center(), dst.Center()
	var out []EdgeProximity
	for _, n := range c.nodes {
		if n == src || n == dst {
			continue
		}
		// Ancestors of an endpoint always surround the segment start or
		// end; descendants sit inside an endpoint's box. Neither is a
		// meaningful crossing.
		if c.isAncestor(n, src) || c.isAncestor(n, dst) {
			continue
		}
		if c.isAncestor(src, n) || c.isAncestor(dst, n) {
			continue
		}
		if dist := segmentBoxDistance(a, b, n); dist < c.cfg.NearEdgeThreshold {
			out = append(out, EdgeProximity{EdgeID: e.ID, NodeID: n.ID, Distance: dist})
		}
	}
	return out
}

// =============================================================================
// Segment Geometry
// =============================================================================

// segmentBoxDistance returns the minimum distance between segment a-b and
// the node's bounding box, 0 when they intersect.
func segmentBoxDistance(a, b diagram.Point, n *diagram.Node) float64 {
	if pointInBox(a, n) || pointInBox(b, n) {
		return 0
	}

	corners := [4]diagram.Point{
		{X: n.Position.X, Y: n.Position.Y},
		{X: n.Right(), Y: n.Position.Y},
		{X: n.Right(), Y: n.Bottom()},
		{X: n.Position.X, Y: n.Bottom()},
	}

	min := math.Inf(1)
	for i := range corners {
		p1, p2 := corners[i], corners[(i+1)%4]
		if segmentsIntersect(a, b, p1, p2) {
			return 0
		}
		if d := segmentSegmentDistance(a, b, p1, p2); d < min {
			min = d
		}
	}
	return min
}

func pointInBox(p diagram.Point, n *diagram.Node) bool {
	return p.X >= n.Position.X && p.X <= n.Right() &&
		p.Y >= n.Position.Y && p.Y <= n.Bottom()
}

// orientation returns >0 for counter-clockwise, <0 for clockwise, 0 for
// collinear.
func orientation(a, b, c diagram.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func segmentsIntersect(a1, a2, b1, b2 diagram.Point) bool {
	d1 := orientation(b1, b2, a1)
	d2 := orientation(b1, b2, a2)
	d3 := orientation(a1, a2, b1)
	d4 := orientation(a1, a2, b2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(b1, b2, a1)) ||
		(d2 == 0 && onSegment(b1, b2, a2)) ||
		(d3 == 0 && onSegment(a1, a2, b1)) ||
		(d4 == 0 && onSegment(a1, a2, b2))
}

// onSegment assumes p is collinear with a-b and reports whether it lies
// between them.
func onSegment(a, b, p diagram.Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

func pointSegmentDistance(p, a, b diagram.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
		t = math.Max(0, math.Min(1, t))
	}
	cx, cy := a.X+t*dx, a.Y+t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
}

func segmentSegmentDistance(a1, a2, b1, b2 diagram.Point) float64 {
	if segmentsIntersect(a1, a2, b1, b2) {
		return 0
	}
	return math.Min(
		math.Min(pointSegmentDistance(a1, b1, b2), pointSegmentDistance(a2, b1, b2)),
		math.Min(pointSegmentDistance(b1, a1, a2), pointSegmentDistance(b2, a1, a2)),
	)
}
