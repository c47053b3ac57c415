package diagram

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// NodeTypeResource is the node type understood by the diagram surface.
const NodeTypeResource = "resourceNode"

// EdgeTypeSmoothstep is the edge routing type understood by the diagram surface.
const EdgeTypeSmoothstep = "smoothstep"

// =============================================================================
// Document - Diagram Serialization
// =============================================================================

// Document is the canonical serialization format for positioned diagrams.
// It holds the two ordered sequences handed to the rendering surface: nodes
// with final geometry and edges with styling.
type Document struct {
	Nodes []*Node `json:"nodes"`
	Edges []Edge  `json:"edges"`
}

// Node returns the node with the given ID and true, or nil and false.
// This is a linear scan; passes that need repeated lookups should build an
// index once (see pkg/layout.Context).
func (d *Document) Node(id string) (*Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// =============================================================================
// Node
// =============================================================================

// Point is a 2D coordinate in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a diagram element with absolute geometry and an opaque payload.
// Position is the top-left corner; Width and Height are always positive
// after layout. Geometry is mutated in place by the layout passes.
type Node struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Point    `json:"position"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Data     NodeData `json:"data"`
}

// NodeData is the node payload consumed by the rendering surface.
// The layout engine reads only Resource.ID (the category tag), IsContainer,
// ParentID, and NestingDepth; everything else passes through unexamined.
type NodeData struct {
	Label        string   `json:"label"`
	Resource     Resource `json:"resourceType"`
	IsContainer  bool     `json:"isContainer"`
	ParentID     string   `json:"parentId,omitempty"`
	NestingDepth int      `json:"nestingDepth"`
	Config       Attrs    `json:"config,omitempty"`
}

// Resource describes a resource category with its display styling.
// Values come from the inventory styling tables and are copied verbatim.
type Resource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Category returns the resource category tag used for layer assignment.
func (n *Node) Category() string { return n.Data.Resource.ID }

// IsContainer reports whether the node visually contains other nodes.
func (n *Node) IsContainer() bool { return n.Data.IsContainer }

// ParentID returns the containment parent ID, or "" for roots.
func (n *Node) ParentID() string { return n.Data.ParentID }

// Right returns the x-coordinate of the node's right edge.
func (n *Node) Right() float64 { return n.Position.X + n.Width }

// Bottom returns the y-coordinate of the node's bottom edge.
func (n *Node) Bottom() float64 { return n.Position.Y + n.Height }

// Center returns the center point of the node's bounding box.
func (n *Node) Center() Point {
	return Point{X: n.Position.X + n.Width/2, Y: n.Position.Y + n.Height/2}
}

// Overlaps reports whether the bounding boxes of n and other intersect with
// positive area. Boxes that merely touch along an edge do not overlap.
func (n *Node) Overlaps(other *Node) bool {
	return n.Position.X < other.Right() && other.Position.X < n.Right() &&
		n.Position.Y < other.Bottom() && other.Position.Y < n.Bottom()
}

// Encloses reports whether n's bounding box contains other's entirely.
// A small epsilon absorbs floating-point drift from repeated translations.
func (n *Node) Encloses(other *Node) bool {
	const eps = 1e-6
	return n.Position.X <= other.Position.X+eps &&
		n.Position.Y <= other.Position.Y+eps &&
		n.Right()+eps >= other.Right() &&
		n.Bottom()+eps >= other.Bottom()
}

// =============================================================================
// Edge
// =============================================================================

// Edge is a styled connection between two nodes. Edges are independent of
// the containment forest and may cross container boundaries.
type Edge struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Animated  bool      `json:"animated"`
	Type      string    `json:"type"`
	Style     EdgeStyle `json:"style"`
	Waypoints []Point   `json:"waypoints,omitempty"`
}

// EdgeStyle holds the stroke styling copied from the edge styling tables.
type EdgeStyle struct {
	Stroke          string  `json:"stroke"`
	StrokeWidth     float64 `json:"strokeWidth"`
	StrokeDasharray string  `json:"strokeDasharray,omitempty"`
}
