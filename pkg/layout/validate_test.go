package layout

import (
	"math"
	"testing"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// The validator must flag an artificially overlapping sibling pair and must
// not flag a legitimately overlapping parent/child pair as a collision.
func TestValidateFlagsSiblingOverlapOnly(t *testing.T) {
	parent := testNode("parent", "", true, 0, 0, 1000, 1000)
	a := testNode("a", "parent", true, 50, 50, 300, 300)
	b := testNode("b", "parent", true, 200, 200, 300, 300)
	child := testNode("child", "a", false, 60, 60, 50, 50) // overlaps its parent a, by definition

	ctx := mustContext(t, []*diagram.Node{parent, a, b, child}, nil)
	d := Validate(ctx)

	if len(d.SiblingOverlaps) != 1 {
		t.Fatalf("overlaps = %v, want exactly one", d.SiblingOverlaps)
	}
	if got := d.SiblingOverlaps[0]; got.A != "a" || got.B != "b" {
		t.Errorf("overlap pair = %+v, want {a b}", got)
	}
	if d.Clean() {
		t.Error("Clean() = true with a sibling overlap present")
	}
}

func TestValidateContainmentRecheck(t *testing.T) {
	parent := testNode("parent", "", true, 0, 0, 100, 100)
	escaped := testNode("escaped", "parent", false, 500, 500, 50, 50)

	ctx := mustContext(t, []*diagram.Node{parent, escaped}, nil)
	d := Validate(ctx)

	if len(d.ContainmentViolations) != 1 {
		t.Fatalf("violations = %v, want one", d.ContainmentViolations)
	}
	v := d.ContainmentViolations[0]
	if v.Container != "parent" || v.Child != "escaped" {
		t.Errorf("violation = %+v", v)
	}
}

func TestValidateCleanLayout(t *testing.T) {
	region := withCategory(testNode("region", "", true, 0, 0, 100, 100), "region")
	vpc := withCategory(testNode("vpc", "region", true, 0, 0, 1200, 700), "vpc")
	s1 := withCategory(testNode("s1", "vpc", true, 0, 0, 400, 160), "subnet")
	s2 := withCategory(testNode("s2", "vpc", true, 0, 0, 400, 160), "subnet")

	ctx := mustContext(t, []*diagram.Node{region, vpc, s1, s2}, nil)
	AssignLayers(ctx)
	OrderSiblings(ctx)
	Solve(ctx)
	SizeContainers(ctx)
	ResolveCollisions(ctx)
	SizeContainers(ctx)

	if d := Validate(ctx); !d.Clean() {
		t.Errorf("expected clean layout, got %+v", d)
	}
}

func TestValidateEdgeProximity(t *testing.T) {
	// a and b sit far apart on one row; bystander sits right on the
	// segment between their centers. unrelatedFar sits well away.
	a := testNode("a", "", false, 0, 0, 20, 20)
	b := testNode("b", "", false, 400, 0, 20, 20)
	bystander := testNode("bystander", "", false, 200, 0, 20, 20)
	far := testNode("far", "", false, 200, 500, 20, 20)
	edges := []diagram.Edge{{ID: "e", Source: "a", Target: "b"}}

	ctx := mustContext(t, []*diagram.Node{a, b, bystander, far}, edges)
	d := Validate(ctx)

	if len(d.EdgeProximities) != 1 {
		t.Fatalf("proximities = %+v, want exactly one", d.EdgeProximities)
	}
	got := d.EdgeProximities[0]
	if got.NodeID != "bystander" || got.EdgeID != "e" {
		t.Errorf("proximity = %+v, want edge e near bystander", got)
	}
	if got.Distance != 0 {
		t.Errorf("distance = %v, want 0 for a true crossing", got.Distance)
	}
	// Proximities are informational; the layout is still clean.
	if !d.Clean() {
		t.Error("Clean() = false on proximity-only diagnostics")
	}
}

func TestValidateEdgeProximityExcludesRelatives(t *testing.T) {
	// The edge crosses its endpoint's container boundary; neither the
	// ancestor container nor a descendant of an endpoint may be flagged.
	vpc := withCategory(testNode("vpc", "", true, 0, 0, 600, 300), "vpc")
	subnet := withCategory(testNode("subnet", "vpc", true, 40, 40, 300, 200), "subnet")
	inst := withCategory(testNode("inst", "subnet", false, 60, 60, 120, 88), "ec2")
	outside := testNode("outside", "", false, 700, 100, 120, 88)
	edges := []diagram.Edge{{ID: "e", Source: "inst", Target: "outside"}}

	ctx := mustContext(t, []*diagram.Node{vpc, subnet, inst, outside}, edges)
	d := Validate(ctx)

	for _, p := range d.EdgeProximities {
		if p.NodeID == "vpc" || p.NodeID == "subnet" {
			t.Errorf("ancestor %s flagged as near-crossing", p.NodeID)
		}
	}
}

func TestValidateNeverMutatesGeometry(t *testing.T) {
	a := testNode("a", "", true, 5, 7, 100, 100)
	b := testNode("b", "a", false, 900, 900, 10, 10)
	ctx := mustContext(t, []*diagram.Node{a, b}, nil)

	Validate(ctx)

	if a.Position.X != 5 || a.Position.Y != 7 || a.Width != 100 || a.Height != 100 {
		t.Errorf("validator mutated geometry: %+v", a)
	}
	if b.Position.X != 900 || b.Position.Y != 900 {
		t.Errorf("validator mutated child geometry: %+v", b)
	}
}

func TestSegmentBoxDistance(t *testing.T) {
	box := testNode("box", "", false, 100, 100, 50, 50)
	tests := []struct {
		name string
		a, b diagram.Point
		want float64
	}{
		{"ThroughBox", diagram.Point{X: 0, Y: 125}, diagram.Point{X: 300, Y: 125}, 0},
		{"EndpointInside", diagram.Point{X: 125, Y: 125}, diagram.Point{X: 300, Y: 300}, 0},
		{"ParallelBelow", diagram.Point{X: 0, Y: 160}, diagram.Point{X: 300, Y: 160}, 10},
		{"FarAway", diagram.Point{X: 0, Y: 0}, diagram.Point{X: 10, Y: 0}, math.Hypot(90, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentBoxDistance(tt.a, tt.b, box)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("distance = %v, want %v", got, tt.want)
			}
		})
	}
}
