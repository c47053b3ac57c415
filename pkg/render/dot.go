package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/cloudtopo/topograph/pkg/diagram"
)

// ToDOT converts a document to Graphviz DOT format. Containers become
// nested clusters colored with their resource color; leaves become boxes.
// Edges keep their stroke color and render dashed when the document styles
// them dashed. The resulting DOT string can be rendered with [RenderSVG] or
// [RenderPNG].
//
// Graphviz computes its own positions; the document's geometry is not
// carried into the DOT. The preview shows structure and styling, not the
// exact coordinates the diagram surface will use.
func ToDOT(doc *diagram.Document) string {
	var buf bytes.Buffer
	buf.WriteString("digraph topology {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	children := make(map[string][]*diagram.Node)
	for _, n := range doc.Nodes {
		children[n.ParentID()] = append(children[n.ParentID()], n)
	}
	for _, root := range children[""] {
		writeNode(&buf, root, children, 1)
	}

	buf.WriteString("\n")
	for _, e := range doc.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(edgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeNode emits a node, recursing into a cluster subgraph for containers.
func writeNode(buf *bytes.Buffer, n *diagram.Node, children map[string][]*diagram.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	if n.IsContainer() {
		fmt.Fprintf(buf, "%ssubgraph \"cluster_%s\" {\n", indent, n.ID)
		fmt.Fprintf(buf, "%s  label=%q;\n", indent, n.Data.Label)
		if c := n.Data.Resource.Color; c != "" {
			fmt.Fprintf(buf, "%s  color=%q;\n", indent, c)
			fmt.Fprintf(buf, "%s  fontcolor=%q;\n", indent, c)
		}
		for _, ch := range children[n.ID] {
			writeNode(buf, ch, children, depth+1)
		}
		// Clusters cannot be edge endpoints; an invisible anchor node
		// stands in for the container.
		fmt.Fprintf(buf, "%s  %q [label=\"\", shape=point, style=invis];\n", indent, n.ID)
		fmt.Fprintf(buf, "%s}\n", indent)
		return
	}

	attrs := []string{fmt.Sprintf("label=%q", n.Data.Label)}
	if c := n.Data.Resource.Color; c != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", c), fmt.Sprintf("fontcolor=%q", c))
	}
	fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, strings.Join(attrs, ", "))
}

func edgeAttrs(e diagram.Edge) []string {
	attrs := []string{}
	if e.Style.Stroke != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", e.Style.Stroke))
	}
	if e.Style.StrokeWidth > 0 {
		attrs = append(attrs, fmt.Sprintf("penwidth=%g", e.Style.StrokeWidth))
	}
	if e.Style.StrokeDasharray != "" {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG, nil)
}

func renderFormat(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the image starts at the
// origin, which embeds more predictably.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
