// Package render produces preview images of positioned diagrams.
//
// # Overview
//
// The diagram surface consumes the JSON document directly; this package
// exists for quick inspection from the command line. [ToDOT] converts a
// positioned document into Graphviz DOT, nesting containers as clusters and
// carrying the resource colors and edge styling from the document.
// [RenderSVG] and [RenderPNG] rasterize the DOT through Graphviz.
//
//	dot := render.ToDOT(doc)
//	svg, err := render.RenderSVG(dot)
package render
