package layout

import (
	"testing"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// One container, one child at (10,10) sized 100x50, padding 20: the sized
// container must cover at least [-10,-10] .. [130,90].
func TestSizeContainersPadsAroundChild(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Padding = 20

	parent := testNode("parent", "", true, 0, 0, 50, 50)
	child := testNode("child", "parent", false, 10, 10, 100, 50)
	ctx, err := NewContext(&diagram.Document{Nodes: []*diagram.Node{parent, child}}, cfg)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	SizeContainers(ctx)

	if parent.Position.X > -10 || parent.Position.Y > -10 {
		t.Errorf("origin = (%v, %v), want at most (-10, -10)", parent.Position.X, parent.Position.Y)
	}
	if parent.Right() < 130 || parent.Bottom() < 90 {
		t.Errorf("extent = (%v, %v), want at least (130, 90)", parent.Right(), parent.Bottom())
	}
}

func TestSizeContainersIdempotent(t *testing.T) {
	region := withCategory(testNode("region", "", true, 0, 0, 100, 100), "region")
	vpc := withCategory(testNode("vpc", "region", true, 0, 0, 1200, 700), "vpc")
	subnet := withCategory(testNode("subnet", "vpc", true, 0, 0, 400, 160), "subnet")
	inst := withCategory(testNode("i", "subnet", false, 0, 0, 120, 88), "ec2")

	ctx := mustContext(t, []*diagram.Node{region, vpc, subnet, inst}, nil)
	AssignLayers(ctx)
	Solve(ctx)
	SizeContainers(ctx)

	type geom struct{ x, y, w, h float64 }
	snapshot := make(map[string]geom)
	for _, n := range ctx.Nodes() {
		snapshot[n.ID] = geom{n.Position.X, n.Position.Y, n.Width, n.Height}
	}

	SizeContainers(ctx)

	for _, n := range ctx.Nodes() {
		got := geom{n.Position.X, n.Position.Y, n.Width, n.Height}
		if got != snapshot[n.ID] {
			t.Errorf("%s changed on second sizing: %+v -> %+v", n.ID, snapshot[n.ID], got)
		}
	}
}

func TestSizeContainersChildlessKeepsDefault(t *testing.T) {
	cfg := DefaultConfig()
	n := testNode("empty", "", true, 0, 0, 300, 250)
	tiny := testNode("tiny", "", true, 0, 0, 1, 1)

	ctx, err := NewContext(&diagram.Document{Nodes: []*diagram.Node{n, tiny}}, cfg)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	SizeContainers(ctx)

	// A generous caller-supplied size survives; a degenerate one is
	// floored at the defaults so the box never shrinks toward zero.
	if n.Width != 300 || n.Height != 250 {
		t.Errorf("sized to %vx%v, want 300x250 kept", n.Width, n.Height)
	}
	if tiny.Width != cfg.DefaultContainerWidth || tiny.Height != cfg.DefaultContainerHeight {
		t.Errorf("floor = %vx%v, want %vx%v", tiny.Width, tiny.Height,
			cfg.DefaultContainerWidth, cfg.DefaultContainerHeight)
	}
}

// Post-sizing, every container must be a padded superset of its children's
// union, recursively up to the root.
func TestSizeContainersEnclosesRecursively(t *testing.T) {
	region := withCategory(testNode("region", "", true, 0, 0, 100, 100), "region")
	vpcA := withCategory(testNode("vpcA", "region", true, 0, 0, 1200, 700), "vpc")
	vpcB := withCategory(testNode("vpcB", "region", true, 0, 0, 1200, 700), "vpc")
	subnet := withCategory(testNode("subnet", "vpcA", true, 0, 0, 400, 160), "subnet")
	i1 := withCategory(testNode("i1", "subnet", false, 0, 0, 120, 88), "ec2")
	i2 := withCategory(testNode("i2", "subnet", false, 0, 0, 120, 88), "ec2")

	ctx := mustContext(t, []*diagram.Node{region, vpcA, vpcB, subnet, i1, i2}, nil)
	AssignLayers(ctx)
	OrderSiblings(ctx)
	Solve(ctx)
	SizeContainers(ctx)

	for _, n := range ctx.Nodes() {
		p, ok := ctx.Parent(n)
		if !ok {
			continue
		}
		if !p.Encloses(n) {
			t.Errorf("%s [%v,%v %vx%v] escapes %s [%v,%v %vx%v]",
				n.ID, n.Position.X, n.Position.Y, n.Width, n.Height,
				p.ID, p.Position.X, p.Position.Y, p.Width, p.Height)
		}
	}

	// Width lower bound from the sizing formula.
	for _, box := range []*diagram.Node{region, vpcA, subnet} {
		children := ctx.Children(box.ID)
		maxRight := 0.0
		for _, ch := range children {
			if ch.Right() > maxRight {
				maxRight = ch.Right()
			}
		}
		if box.Width < maxRight-box.Position.X {
			t.Errorf("%s width %v below children extent %v", box.ID, box.Width, maxRight-box.Position.X)
		}
	}
}
