package layout

import "github.com/cloudtopo/topograph/pkg/diagram"

// CanonicalLayers maps resource category tags to their canonical layer.
// Outermost grouping is layer 0, the network boundary 1, subdivisions 2,
// and leaf compute 3. Categories missing from this map inherit
// layer(parent)+1, or 0 for parentless nodes.
var CanonicalLayers = map[string]int{
	"region":        0,
	"vpc":           1,
	"subnet":        2,
	"ec2":           3,
	"routetable":    2,
	"securityGroup": 2,
}

// AssignLayers tags every node with an integer layer derived from its
// resource category, falling back to the parent's layer plus one.
//
// The forest is traversed parents-first so the fallback always sees a
// settled parent layer. A canonical layer that would land at or above the
// parent's layer is bumped to layer(parent)+1, keeping the layer of every
// child strictly greater than its parent's regardless of how the inventory
// nested the categories. The pass is deterministic and needs no tie-break.
func AssignLayers(c *Context) {
	var assign func(n, parent *diagram.Node)
	assign = func(n, parent *diagram.Node) {
		layer, mapped := CanonicalLayers[n.Category()]
		switch {
		case parent == nil && !mapped:
			layer = 0
		case parent != nil && (!mapped || layer <= c.layers[parent.ID]):
			layer = c.layers[parent.ID] + 1
		}
		c.layers[n.ID] = layer
		for _, ch := range c.children[n.ID] {
			assign(ch, n)
		}
	}

	for _, root := range c.children[""] {
		assign(root, nil)
	}
}
