// Package diagram provides the serialization types for positioned diagram graphs.
//
// This package defines the canonical wire format handed to the diagram-rendering
// surface: a [Document] containing positioned [Node]s and styled [Edge]s. It is
// the boundary between the layout engine (pkg/layout), the inventory builder
// (pkg/inventory), and the outside world.
//
// # Core Types
//
//   - [Document]: top-level container with node and edge sequences
//   - [Node]: a diagram element with absolute position, size, and payload
//   - [Edge]: a styled connection between two nodes
//   - [Attrs]: typed variant map for provider-defined attribute payloads
//
// # Serialization
//
// Documents use a node-link JSON format compatible with node-based diagram
// surfaces:
//
//	{
//	  "nodes": [{"id": "vpc-1", "position": {"x": 0, "y": 0}, ...}],
//	  "edges": [{"id": "vpc-to-subnet-...", "source": "vpc-1", ...}]
//	}
//
// Common operations:
//
//	doc, _ := diagram.ReadDocumentFile("architecture.json")
//	diagram.WriteDocumentFile(doc, "out.json")
//	data, _ := diagram.MarshalDocument(doc)
//
// # Geometry
//
// Positions are top-left corners in pixels. [Node.Right], [Node.Bottom], and
// [Node.Overlaps] provide the bounding-box arithmetic used throughout the
// layout passes. Geometry fields are mutated in place by the layout engine;
// nodes are created once and never recreated mid-pipeline.
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package diagram
