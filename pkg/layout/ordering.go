package layout

import (
	"sort"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// OrderSiblings reorders the nodes within each layer by the barycenter
// heuristic to reduce edge crossings.
//
// For every node the barycenter is the mean x-coordinate of its
// edge-connected neighbors that sit in a different layer; a node with no
// such neighbor keeps its own current x as its value. Each layer is then
// stable-sorted ascending by barycenter, so ties preserve the original
// sibling order. This is a single-pass approximation without iterative
// refinement: it improves the crossing count but makes no optimality claim.
//
// The master node order is rewritten layer by layer and the
// parent→children multimap is rebuilt, so the position solver sees the new
// sibling order.
func OrderSiblings(c *Context) {
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

	ordered := make([]*diagram.Node, 0, len(c.nodes))
	for _, l := range layerIDs {
		nodes := byLayer[l]
		bary := make(map[string]float64, len(nodes))
		for _, n := range nodes {
			bary[n.ID] = c.barycenter(n)
		}
		sort.SliceStable(nodes, func(i, j int) bool {
			return bary[nodes[i].ID] < bary[nodes[j].ID]
		})
		ordered = append(ordered, nodes...)
	}

	c.nodes = ordered
	c.rebuildChildren()
}

// barycenter returns the mean center x of n's cross-layer edge neighbors,
// or n's own x when it has none.
func (c *Context) barycenter(n *diagram.Node) float64 {
	sum, count := 0.0, 0
	for _, id := range c.neighbors[n.ID] {
		other := c.byID[id]
		if c.layers[other.ID] == c.layers[n.ID] {
			continue
		}
		sum += other.Center().X
		count++
	}
	if count == 0 {
		return n.Position.X
	}
	return sum / float64(count)
}
