package layout

import (
	"sort"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// CollisionResult reports what the collision resolver did.
type CollisionResult struct {
	// Passes is the number of scan passes executed.
	Passes int
	// Pushes is the total number of sibling push-downs applied.
	Pushes int
	// Resolved is false when the pass cap was hit with overlap remaining;
	// the layout returned is then the best one achieved, not a clean one.
	Resolved bool
}

// ResolveCollisions removes residual vertical overlap between container
// siblings by pushing the lower sibling down.
//
// Only containers sharing a parent are considered; leaf siblings are never
// repositioned here because the position solver's row flow already keeps
// them apart horizontally. Each pass sorts the sibling containers of every
// parent by top edge and scans adjacent pairs: when the boxes overlap, the
// lower sibling is pushed straight down by the vertical overlap plus the
// configured minimum gap. Siblings that merely share a vertical range while
// sitting side by side are left alone. A push translates every
// descendant of the pushed container by the same offset, preserving its
// internal layout.
//
// Iteration is a bounded fixed point: it stops early once a full pass
// applies no push, and gives up after the configured pass cap so
// pathological inputs still terminate. Residual overlap after the cap is
// recoverable - it is reported through Resolved and left to the validator
// to diagnose, not treated as an error.
func ResolveCollisions(c *Context) CollisionResult {
	groups := containerGroups(c)
	res := CollisionResult{Resolved: true}

	for pass := 0; pass < c.cfg.MaxCollisionPasses; pass++ {
		res.Passes++
		pushed := false
		for _, siblings := range groups {
			sort.SliceStable(siblings, func(i, j int) bool {
				return siblings[i].Position.Y < siblings[j].Position.Y
			})
			for i := 0; i+1 < len(siblings); i++ {
				upper, lower := siblings[i], siblings[i+1]
				if !upper.Overlaps(lower) {
					continue
				}
				overlap := upper.Bottom() - lower.Position.Y
				translateSubtree(c, lower, overlap+c.cfg.MinGap)
				res.Pushes++
				pushed = true
			}
		}
		if !pushed {
			return res
		}
	}

	// Cap reached; one more scan tells us whether overlap survived.
	for _, siblings := range groups {
		sort.SliceStable(siblings, func(i, j int) bool {
			return siblings[i].Position.Y < siblings[j].Position.Y
		})
		for i := 0; i+1 < len(siblings); i++ {
			if siblings[i].Overlaps(siblings[i+1]) {
				res.Resolved = false
				return res
			}
		}
	}
	return res
}

// containerGroups collects, per parent, the container children with at
// least one sibling. Groups are keyed in node order for determinism.
func containerGroups(c *Context) [][]*diagram.Node {
	seen := make(map[string]struct{})
	var groups [][]*diagram.Node
	for _, n := range c.nodes {
		pid := n.Data.ParentID
		if _, done := seen[pid]; done {
			continue
		}
		seen[pid] = struct{}{}
		var group []*diagram.Node
		for _, ch := range c.children[pid] {
			if ch.IsContainer() {
				group = append(group, ch)
			}
		}
		if len(group) > 1 {
			groups = append(groups, group)
		}
	}
	return groups
}

// translateSubtree moves n and every one of its descendants down by dy.
func translateSubtree(c *Context, n *diagram.Node, dy float64) {
	n.Position.Y += dy
	c.walkSubtree(n, func(d *diagram.Node) { d.Position.Y += dy })
}
