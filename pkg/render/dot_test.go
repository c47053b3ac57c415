package render

import (
	"strings"
	"testing"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

func testDocument() *diagram.Document {
	return &diagram.Document{
		Nodes: []*diagram.Node{
			{ID: "vpc-1", Type: diagram.NodeTypeResource, Data: diagram.NodeData{
				Label:       "prod",
				IsContainer: true,
				Resource:    diagram.Resource{ID: "vpc", Color: "#8C4FFF"},
			}},
			{ID: "subnet-1", Type: diagram.NodeTypeResource, Data: diagram.NodeData{
				Label:       "subnet-1",
				IsContainer: true,
				ParentID:    "vpc-1",
				Resource:    diagram.Resource{ID: "subnet", Color: "#8C4FFF"},
			}},
			{ID: "i-1", Type: diagram.NodeTypeResource, Data: diagram.NodeData{
				Label:    "web",
				ParentID: "subnet-1",
				Resource: diagram.Resource{ID: "ec2", Color: "#FF9900"},
			}},
		},
		Edges: []diagram.Edge{
			{ID: "e1", Source: "subnet-1", Target: "i-1",
				Style: diagram.EdgeStyle{Stroke: "#FF9900", StrokeWidth: 2}},
			{ID: "e2", Source: "vpc-1", Target: "subnet-1",
				Style: diagram.EdgeStyle{Stroke: "#FFA000", StrokeWidth: 2, StrokeDasharray: "4,4"}},
		},
	}
}

func TestToDOTClusters(t *testing.T) {
	dot := ToDOT(testDocument())

	for _, want := range []string{
		`subgraph "cluster_vpc-1"`,
		`subgraph "cluster_subnet-1"`,
		`label="prod"`,
		`"i-1" [label="web"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	// Nesting: the subnet cluster must open after the vpc cluster.
	vpcAt := strings.Index(dot, `subgraph "cluster_vpc-1"`)
	subnetAt := strings.Index(dot, `subgraph "cluster_subnet-1"`)
	if subnetAt < vpcAt {
		t.Error("subnet cluster declared outside vpc cluster")
	}
}

func TestToDOTEdgeStyling(t *testing.T) {
	dot := ToDOT(testDocument())

	if !strings.Contains(dot, `"subnet-1" -> "i-1" [color="#FF9900", penwidth=2]`) {
		t.Errorf("solid edge missing or mis-styled:\n%s", dot)
	}
	if !strings.Contains(dot, `"vpc-1" -> "subnet-1" [color="#FFA000", penwidth=2, style=dashed]`) {
		t.Errorf("dashed edge missing or mis-styled:\n%s", dot)
	}
}

func TestToDOTWellFormed(t *testing.T) {
	dot := ToDOT(testDocument())

	if !strings.HasPrefix(dot, "digraph topology {") {
		t.Errorf("DOT header missing:\n%s", dot)
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Errorf("DOT not closed:\n%s", dot)
	}
	if open, closed := strings.Count(dot, "{"), strings.Count(dot, "}"); open != closed {
		t.Errorf("unbalanced braces: %d open, %d closed", open, closed)
	}
}

func TestToDOTEmptyDocument(t *testing.T) {
	dot := ToDOT(&diagram.Document{})
	if !strings.Contains(dot, "digraph topology") {
		t.Errorf("empty document should still produce a digraph:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="12.00 24.00 800.00 600.00" xmlns="http://www.w3.org/2000/svg">rest</svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 800.00 600.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="800" height="600"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}
	if !strings.HasSuffix(out, "rest</svg>") {
		t.Errorf("content after the root tag lost: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg>no viewbox</svg>")
	if got := string(normalizeViewBox(in)); got != string(in) {
		t.Errorf("SVG without viewBox should pass through, got %s", got)
	}
}
