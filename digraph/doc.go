// Package digraph defines the read-only graph view consumed by every
// digraphx algorithm, plus two ready-made adapters.
//
// Overview:
//
//   - Digraph[N, E] is an iteration surface: for every node, the set of
//     (neighbor, edge) pairs leaving it. Nothing more. The detectors and
//     solvers never mutate a view and never inspect edge payloads — edges
//     are opaque handles interpreted only through caller-supplied functions.
//   - Map[N, E] adapts the canonical "map of node to map of node to edge"
//     representation. Iteration order follows Go map order (unspecified).
//   - List[E] adapts index-keyed adjacency slices: node IDs are the indices
//     0..len-1, and iteration order is fully deterministic. This is the
//     natural fit for pre-flattened multigraphs, where the edge payload is
//     an index into parallel attribute arrays.
//
// At most one edge per ordered (source, target) pair is visible through a
// Map view; true multigraphs must be pre-flattened by the caller (List with
// index payloads does exactly that).
//
// Validation:
//
//   - Validate performs an O(V+E) closure check: every neighbor must appear
//     in the outer node set. A dangling neighbor is reported as
//     ErrNodeNotFound with the offending arc in the message.
//
// Thread safety:
//
//   - Views are read-only; sharing one view across concurrent detectors is
//     safe as long as the backing store is not mutated underneath it.
//
// See also:
//
//   - negcycle.FindNegCycles: the detection layer built on this view.
package digraph
