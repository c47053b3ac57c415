package layout

import (
	"errors"
	"fmt"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

var (
	// ErrEmptyNodeID is returned by [NewContext] when a node has no ID.
	ErrEmptyNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [NewContext] when two nodes share
	// an ID. Node IDs must be unique across the document.
	ErrDuplicateNodeID = errors.New("duplicate node ID")
)

// Context owns the node and edge collections for one layout run, together
// with the derived indices every pass needs: the id→node map, the
// parent→children multimap, the edge adjacency lists, and the layer
// assignment. Indices are built once at construction; containment is frozen
// from that point on, and only geometry is mutated by the passes.
//
// A Context is exclusively owned by a single pipeline invocation and is not
// safe for concurrent use.
type Context struct {
	cfg Config

	nodes []*diagram.Node
	edges []diagram.Edge

	byID      map[string]*diagram.Node
	children  map[string][]*diagram.Node // parent ID -> children, "" holds the roots
	neighbors map[string][]string        // node ID -> edge-connected neighbor IDs
	layers    map[string]int

	droppedParents int
	droppedEdges   int
}

// NewContext builds a layout context over the document's nodes and edges.
//
// Construction normalizes containment so the passes can assume a forest:
// parent references naming a missing node, the node itself, or closing a
// cycle are dropped (the node becomes a root), and edges with a missing
// endpoint are dropped entirely. Both are the silent-omission behavior for
// missing references; [Context.DroppedParents] and [Context.DroppedEdges]
// report the counts for diagnostics. Nesting depths are recomputed from the
// settled forest.
//
// Returns an error only for construction-time defects: empty or duplicate
// node IDs.
func NewContext(doc *diagram.Document, cfg Config) (*Context, error) {
	ctx := &Context{
		cfg:       cfg,
		nodes:     doc.Nodes,
		edges:     nil,
		byID:      make(map[string]*diagram.Node, len(doc.Nodes)),
		neighbors: make(map[string][]string),
		layers:    make(map[string]int, len(doc.Nodes)),
	}

	for _, n := range doc.Nodes {
		if n.ID == "" {
			return nil, ErrEmptyNodeID
		}
		if _, exists := ctx.byID[n.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
		}
		ctx.byID[n.ID] = n
	}

	ctx.normalizeParents()
	ctx.rebuildChildren()
	ctx.recomputeDepths()

	for _, e := range doc.Edges {
		_, okS := ctx.byID[e.Source]
		_, okT := ctx.byID[e.Target]
		if !okS || !okT {
			ctx.droppedEdges++
			continue
		}
		ctx.edges = append(ctx.edges, e)
		ctx.neighbors[e.Source] = append(ctx.neighbors[e.Source], e.Target)
		ctx.neighbors[e.Target] = append(ctx.neighbors[e.Target], e.Source)
	}

	return ctx, nil
}

// normalizeParents clears parent links that don't resolve to an existing
// node or that would close a containment cycle.
func (c *Context) normalizeParents() {
	for _, n := range c.nodes {
		pid := n.Data.ParentID
		if pid == "" {
			continue
		}
		if _, ok := c.byID[pid]; !ok || pid == n.ID {
			n.Data.ParentID = ""
			c.droppedParents++
		}
	}

	// Break cycles: walk each parent chain; a chain longer than the node
	// count or returning to its start cannot be part of a forest.
	for _, n := range c.nodes {
		seen := map[string]struct{}{n.ID: {}}
		cur := n
		for cur.Data.ParentID != "" {
			next := c.byID[cur.Data.ParentID]
			if _, cyclic := seen[next.ID]; cyclic {
				n.Data.ParentID = ""
				c.droppedParents++
				break
			}
			seen[next.ID] = struct{}{}
			cur = next
		}
	}
}

// rebuildChildren reconstructs the parent→children multimap from the current
// node order. Children appear in the same relative order as in the node
// slice, so a stable reorder of the nodes reorders siblings accordingly.
func (c *Context) rebuildChildren() {
	c.children = make(map[string][]*diagram.Node)
	for _, n := range c.nodes {
		c.children[n.Data.ParentID] = append(c.children[n.Data.ParentID], n)
	}
}

// recomputeDepths rewrites every node's NestingDepth from the settled
// forest: roots at 0, each child one deeper than its parent.
func (c *Context) recomputeDepths() {
	var walk func(n *diagram.Node, depth int)
	walk = func(n *diagram.Node, depth int) {
		n.Data.NestingDepth = depth
		for _, ch := range c.children[n.ID] {
			walk(ch, depth+1)
		}
	}
	for _, root := range c.children[""] {
		walk(root, 0)
	}
}

// Config returns the layout constants for this run.
func (c *Context) Config() Config { return c.cfg }

// Nodes returns the node collection. The slice is live: passes reorder and
// mutate it in place.
func (c *Context) Nodes() []*diagram.Node { return c.nodes }

// Edges returns the edges that survived construction.
func (c *Context) Edges() []diagram.Edge { return c.edges }

// NodeCount returns the number of nodes.
func (c *Context) NodeCount() int { return len(c.nodes) }

// EdgeCount returns the number of edges.
func (c *Context) EdgeCount() int { return len(c.edges) }

// Node returns the node with the given ID and true, or nil and false.
func (c *Context) Node(id string) (*diagram.Node, bool) {
	n, ok := c.byID[id]
	return n, ok
}

// Children returns the direct children of the node with the given ID, in
// sibling order. Pass "" for the roots.
func (c *Context) Children(id string) []*diagram.Node { return c.children[id] }

// Parent returns the containment parent of n, or nil and false for roots.
func (c *Context) Parent(n *diagram.Node) (*diagram.Node, bool) {
	if n.Data.ParentID == "" {
		return nil, false
	}
	p, ok := c.byID[n.Data.ParentID]
	return p, ok
}

// Layer returns the layer assigned to the node, or 0 before [AssignLayers].
func (c *Context) Layer(id string) int { return c.layers[id] }

// DroppedParents returns how many parent links were dropped at construction.
func (c *Context) DroppedParents() int { return c.droppedParents }

// DroppedEdges returns how many edges were dropped at construction.
func (c *Context) DroppedEdges() int { return c.droppedEdges }

// isAncestor reports whether ancestor lies on n's parent chain (a node is
// not its own ancestor).
func (c *Context) isAncestor(ancestor, n *diagram.Node) bool {
	for cur := n; cur.Data.ParentID != ""; {
		p := c.byID[cur.Data.ParentID]
		if p == ancestor {
			return true
		}
		cur = p
	}
	return false
}

// walkSubtree calls fn for every descendant of n, depth-first. n itself is
// not visited.
func (c *Context) walkSubtree(n *diagram.Node, fn func(*diagram.Node)) {
	for _, ch := range c.children[n.ID] {
		fn(ch)
		c.walkSubtree(ch, fn)
	}
}
