// Package negcycle detects negative cycles in weighted directed graphs
// using Howard's policy-iteration method.
//
// Overview:
//
//   - Bellman-Ford is NOT the best way to detect negative cycles:
//     it needs a source node, it only reports the cycle's existence at the
//     final stage, and it restarts its distance solution every time.
//     Howard's method needs no source, reports concrete cycles, and accepts
//     a warm-started distance map — which is what makes the parametric
//     solvers built on top of it amortized across outer iterations.
//   - The algorithm alternates two phases until a fixpoint: (a) relax every
//     edge, recording the improving arc per node in a policy map, and
//     (b) scan the policy map — a functional graph with at most one
//     outgoing link per node — for cycles by walking links from every
//     unvisited node.
//   - Every candidate cycle is verified to be genuinely weight-negative
//     before it is emitted; a structurally closed policy loop that fails
//     the check indicates a non-deterministic weight function or an
//     implementation defect and is fatal (panic), never a user-facing error.
//
// Algorithm outline (FindNegCycles):
//
//  1. Clear the policy map.
//  2. Relax: for every arc (u, v, e), if dist[u]+weight(e) < dist[v],
//     set dist[v] and policy[v] = (u, e). Repeat from 2 while anything
//     changed and no cycle has been found yet.
//  3. Scan: walk policy links from each unvisited node, marking visits
//     with the walk's origin; a node that closes a loop back to its own
//     origin starts a cycle.
//  4. Verify each candidate (strict improvement must hold on ≥1 edge),
//     reconstruct it by following policy links, and yield it. All cycles
//     of that single scan are yielded, then the call ends.
//
// Complexity:
//
//   - Time:  O(R·(V + E)) where R is the number of relax passes until the
//     fixpoint or the first successful scan (finite for well-behaved
//     weight functions on finite graphs).
//   - Space: O(V) for the policy and visited maps.
//
// Constrained variant:
//
//   - ScanPred / ScanSucc run the same skeleton with an updateOK gate
//     consulted on every relaxation, in forward (predecessor) or backward
//     (successor) direction. ScanSucc skips the negativity verification
//     that ScanPred performs; see the constrained tests for the exact
//     asymmetry.
//
// Laziness:
//
//   - Cycles are produced as a pull-based iter.Seq. Stop ranging at any
//     point; policy state is private to the call and is simply dropped.
//
// Errors:
//
//   - Nil graph, nil distance map or nil weight function are programmer
//     errors and panic (ErrNilGraph, ErrNilDist, ErrNilWeight).
//   - A cycle failing negativity verification panics with ErrNotNegative.
package negcycle
