package layout

import (
	"testing"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// Two sibling containers both at y=0 with height 100 and a minimum gap of
// 20: after resolution the second container must sit at y >= 120.
func TestResolveCollisionsPushesLowerSibling(t *testing.T) {
	parent := testNode("parent", "", true, 0, 0, 1000, 1000)
	a := testNode("a", "parent", true, 0, 0, 300, 100)
	b := testNode("b", "parent", true, 0, 0, 300, 100)

	ctx := mustContext(t, []*diagram.Node{parent, a, b}, nil)
	res := ResolveCollisions(ctx)

	if !res.Resolved {
		t.Fatal("expected resolution within the pass cap")
	}
	if b.Position.Y < 120 {
		t.Errorf("pushed sibling y = %v, want >= 120", b.Position.Y)
	}
	if a.Position.Y != 0 {
		t.Errorf("upper sibling moved to y = %v, want 0", a.Position.Y)
	}
}

// A push must translate the pushed container's entire subtree by the same
// offset so its internal layout survives.
func TestResolveCollisionsTranslatesDescendants(t *testing.T) {
	parent := testNode("parent", "", true, 0, 0, 1000, 1000)
	a := testNode("a", "parent", true, 0, 0, 300, 100)
	b := testNode("b", "parent", true, 0, 0, 300, 100)
	inner := testNode("inner", "b", true, 20, 20, 100, 50)
	leaf := testNode("leaf", "inner", false, 30, 30, 40, 20)

	ctx := mustContext(t, []*diagram.Node{parent, a, b, inner, leaf}, nil)

	innerOffset := inner.Position.Y - b.Position.Y
	leafOffset := leaf.Position.Y - b.Position.Y

	ResolveCollisions(ctx)

	if got := inner.Position.Y - b.Position.Y; got != innerOffset {
		t.Errorf("inner offset drifted: %v, want %v", got, innerOffset)
	}
	if got := leaf.Position.Y - b.Position.Y; got != leafOffset {
		t.Errorf("leaf offset drifted: %v, want %v", got, leafOffset)
	}
}

func TestResolveCollisionsLeavesLeafSiblingsAlone(t *testing.T) {
	parent := testNode("parent", "", true, 0, 0, 1000, 1000)
	a := testNode("a", "parent", false, 0, 0, 100, 100)
	b := testNode("b", "parent", false, 0, 0, 100, 100)

	ctx := mustContext(t, []*diagram.Node{parent, a, b}, nil)
	ResolveCollisions(ctx)

	if a.Position.Y != 0 || b.Position.Y != 0 {
		t.Errorf("leaf siblings repositioned: a.y=%v b.y=%v", a.Position.Y, b.Position.Y)
	}
}

func TestResolveCollisionsStopsEarlyWhenClean(t *testing.T) {
	parent := testNode("parent", "", true, 0, 0, 1000, 1000)
	a := testNode("a", "parent", true, 0, 0, 300, 100)
	b := testNode("b", "parent", true, 0, 200, 300, 100)

	ctx := mustContext(t, []*diagram.Node{parent, a, b}, nil)
	res := ResolveCollisions(ctx)

	if res.Pushes != 0 {
		t.Errorf("pushes = %d, want 0", res.Pushes)
	}
	if res.Passes != 1 {
		t.Errorf("passes = %d, want 1 (early exit)", res.Passes)
	}
}

// A chain of stacked siblings resolves in a bounded number of passes: the
// scan uses updated positions, so one pass cascades the pushes downward.
func TestResolveCollisionsChain(t *testing.T) {
	nodes := []*diagram.Node{testNode("parent", "", true, 0, 0, 2000, 2000)}
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5"} {
		nodes = append(nodes, testNode(id, "parent", true, 0, 0, 300, 100))
	}

	ctx := mustContext(t, nodes, nil)
	res := ResolveCollisions(ctx)

	if !res.Resolved {
		t.Fatal("chain not resolved within cap")
	}
	d := Validate(ctx)
	if len(d.SiblingOverlaps) != 0 {
		t.Errorf("residual overlaps: %v", d.SiblingOverlaps)
	}
}
