// Package layout implements the automatic layout engine for diagram documents.
//
// The engine takes a [diagram.Document] whose nodes carry containment links
// (parent references) and produces non-overlapping pixel geometry: every
// container box fully encloses its descendants, layers occupy disjoint
// vertical bands, and siblings within a container never collide.
//
// # Passes
//
// Layout runs as a fixed sequence of synchronous passes over a shared
// [Context]:
//
//  1. [AssignLayers]   - tag every node with an integer layer
//  2. [OrderSiblings]  - barycenter ordering to reduce edge crossings
//  3. [Solve]          - compute (x, y) for every node
//  4. [SizeContainers] - bottom-up sizing so containers enclose children
//  5. [ResolveCollisions] - push apart vertically overlapping sibling containers
//  6. [Validate]       - read-only diagnostics over the settled geometry
//
// Each pass mutates geometry in place and depends on the geometry settled by
// its predecessor. SizeContainers is idempotent and is re-run after collision
// resolution to absorb the translations. pkg/pipeline wires the passes
// together; callers who need a single pass can invoke it directly on a
// Context.
//
// # Context
//
// [NewContext] takes ownership of the document's node and edge collections
// and builds the derived indices (id→node, parent→children) exactly once.
// Containment is frozen at construction: parent links that reference missing
// nodes or would form a cycle are dropped there, so every geometry pass can
// assume a well-formed forest.
//
// The engine is single-threaded; a Context must not be shared between
// concurrent pipeline runs.
package layout
