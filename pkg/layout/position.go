package layout

import (
	"sort"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// Solve computes (x, y) for every node, respecting containment and layer
// bands. The pass is deterministic and one-shot.
//
// Vertically, each layer occupies a band whose height is its tallest
// member, separated from the next band by the configured band gap, so y is
// strictly monotonic in the layer index and layers never overlap no matter
// how the forest is shaped.
//
// Horizontally, the nodes of a layer are grouped by parent and flow
// left-to-right from the parent's interior padding: the first child starts
// at parent.x plus the padding, each next child follows the previous one
// plus the sibling gap. The row keeps flowing even past the parent's
// preliminary right edge - parents carry builder-supplied guesses at this
// point, and [SizeContainers] afterwards grows every container into a
// padded superset of its children, so containment comes from measuring the
// parent around the row rather than squeezing the row into the guess.
// Root containers flow left-to-right from the origin. Parentless leaf
// nodes are placed last, in a strip to the right of the rightmost
// container edge, so they sit visually outside the structured topology.
func Solve(c *Context) {
	if len(c.nodes) == 0 {
		return
	}

	byLayer := make(map[int][]*diagram.Node)
	var layerIDs []int
	for _, n := range c.nodes {
		l := c.layers[n.ID]
		if _, seen := byLayer[l]; !seen {
			layerIDs = append(layerIDs, l)
		}
		byLayer[l] = append(byLayer[l], n)
	}
	sort.Ints(layerIDs)

	// Vertical bands.
	y := 0.0
	for _, l := range layerIDs {
		tallest := 0.0
		for _, n := range byLayer[l] {
			if n.Height > tallest {
				tallest = n.Height
			}
		}
		for _, n := range byLayer[l] {
			n.Position.Y = y
		}
		y += tallest + c.cfg.BandGap
	}

	// Horizontal flow inside each parent, outer layers first so every
	// parent is already placed when its children are.
	cursor := make(map[string]float64)
	rootCursor := 0.0
	for _, l := range layerIDs {
		for _, n := range byLayer[l] {
			p, ok := c.Parent(n)
			if !ok {
				if !n.IsContainer() {
					continue // placed by PlaceExternals below
				}
				n.Position.X = rootCursor
				rootCursor += n.Width + c.cfg.SiblingGap
				continue
			}

			x, started := cursor[p.ID]
			if !started {
				x = p.Position.X + c.cfg.Padding
			}
			n.Position.X = x
			cursor[p.ID] = x + n.Width + c.cfg.SiblingGap
		}
	}

	PlaceExternals(c)
}

// PlaceExternals lines up parentless leaf nodes left-to-right in a strip to
// the right of every container's right edge. [Solve] runs it as its final
// step; the pipeline runs it again after container sizing has settled the
// container extents, since sizing can widen containers past the strip.
func PlaceExternals(c *Context) {
	rightmost := 0.0
	var externals []*diagram.Node
	for _, n := range c.nodes {
		if n.IsContainer() {
			if n.Right() > rightmost {
				rightmost = n.Right()
			}
			continue
		}
		if n.Data.ParentID == "" {
			externals = append(externals, n)
		}
	}
	x := rightmost + c.cfg.ExternalGap
	for _, n := range externals {
		n.Position.X = x
		x += n.Width + c.cfg.SiblingGap
	}
}
