package layout

import (
	"sort"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// SizeContainers resizes every container bottom-up so it encloses its
// direct children with the configured padding on all sides.
//
// Containers are processed in descending nesting depth, deepest first, so a
// container is only measured once all of its children carry final sizes.
// For a container with at least one child the box becomes the padded union
// of the children's boxes: the origin moves up-left to the minimum child
// corner minus padding when a child starts outside the current origin, and
// width and height extend to the maximum child corner plus padding. A
// childless container keeps its caller-supplied size, floored at the
// configured defaults so it never degenerates to zero area.
//
// The pass establishes, recursively up to the roots, that every non-leaf
// box is a padded superset of the union of its direct children's boxes. It
// is idempotent: re-running it on an already-sized tree changes nothing.
func SizeContainers(c *Context) {
	containers := make([]*diagram.Node, 0, len(c.nodes))
	for _, n := range c.nodes {
		if n.IsContainer() {
			containers = append(containers, n)
		}
	}
	sort.SliceStable(containers, func(i, j int) bool {
		return containers[i].Data.NestingDepth > containers[j].Data.NestingDepth
	})

	for _, box := range containers {
		children := c.children[box.ID]
		if len(children) == 0 {
			if box.Width < c.cfg.DefaultContainerWidth {
				box.Width = c.cfg.DefaultContainerWidth
			}
			if box.Height < c.cfg.DefaultContainerHeight {
				box.Height = c.cfg.DefaultContainerHeight
			}
			continue
		}

		minX, minY := children[0].Position.X, children[0].Position.Y
		maxRight, maxBottom := children[0].Right(), children[0].Bottom()
		for _, ch := range children[1:] {
			if ch.Position.X < minX {
				minX = ch.Position.X
			}
			if ch.Position.Y < minY {
				minY = ch.Position.Y
			}
			if ch.Right() > maxRight {
				maxRight = ch.Right()
			}
			if ch.Bottom() > maxBottom {
				maxBottom = ch.Bottom()
			}
		}

		if x := minX - c.cfg.Padding; x < box.Position.X {
			box.Position.X = x
		}
		if y := minY - c.cfg.Padding; y < box.Position.Y {
			box.Position.Y = y
		}
		box.Width = maxRight - box.Position.X + c.cfg.Padding
		box.Height = maxBottom - box.Position.Y + c.cfg.Padding
	}
}
