// Package pkg provides the core libraries for Topograph infrastructure diagrams.
//
// # Overview
//
// Topograph turns a cloud resource inventory into a positioned, hierarchical
// diagram: regions contain VPCs, VPCs contain subnets, subnets contain
// instances, and cross-cutting resources (route tables, security groups) hang
// off the hierarchy with styled edges. The pkg directory is organized into
// five main areas:
//
//  1. [inventory] - Inventory parsing and node/edge synthesis
//  2. [diagram] - Serialization types for diagram documents
//  3. [layout] - Hierarchical layout passes (layering, ordering, positioning,
//     sizing, collision resolution, validation)
//  4. [render] - Graphviz-backed DOT/SVG/PNG previews
//  5. [pipeline] - Orchestration (build → layout → validate)
//
// # Architecture
//
// The typical data flow through Topograph:
//
//	Inventory JSON (regions, VPCs, subnets, instances, ...)
//	         ↓
//	    [inventory] package (build nodes and edges)
//	         ↓
//	    [layout] package (layer, order, position, size, resolve)
//	         ↓
//	    [diagram] package (positioned document, JSON)
//	         ↓
//	    [render] package (optional DOT/SVG/PNG preview)
//
// # Quick Start
//
// Build and lay out a diagram from an inventory file:
//
//	import (
//	    "context"
//	    "github.com/cloudtopo/topograph/pkg/inventory"
//	    "github.com/cloudtopo/topograph/pkg/pipeline"
//	)
//
//	inv, _ := inventory.ReadFile("inventory.json")
//	runner := pipeline.NewRunner(nil)
//	res, _ := runner.Run(context.Background(), inv, pipeline.Options{})
//	// res.Document holds positioned nodes and styled edges.
//
// # Main Packages
//
// [inventory] - Inventory document model and the builder that turns regions,
// VPCs, subnets, instances, gateways, route tables, and security groups into
// diagram nodes and edges with category styling.
//
// [diagram] - Node, edge, and document types with JSON round-tripping, plus
// the geometry helpers (Overlaps, Encloses) the layout passes build on.
//
// [layout] - The layout engine. A [layout.Context] normalizes the containment
// forest; successive passes assign layers, order siblings by barycenter,
// position nodes into layer bands, grow containers around their children,
// resolve sibling collisions, and validate the result.
//
// [render] - Converts a laid-out document to Graphviz DOT with nested
// clusters, and renders SVG/PNG previews.
//
// [pipeline] - Runs the full build → layout → validate sequence with
// consistent logging and timing. Used by every CLI command.
//
// [errors] - Structured error codes shared across the module.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//
// [inventory]: https://pkg.go.dev/github.com/cloudtopo/topograph/pkg/inventory
// [diagram]: https://pkg.go.dev/github.com/cloudtopo/topograph/pkg/diagram
// [layout]: https://pkg.go.dev/github.com/cloudtopo/topograph/pkg/layout
// [render]: https://pkg.go.dev/github.com/cloudtopo/topograph/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/cloudtopo/topograph/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/cloudtopo/topograph/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/cloudtopo/topograph/pkg/buildinfo
package pkg
