// Package ratio solves the minimum cost-to-time cycle ratio problem — the
// classic analysis behind circuit timing closure, discrete-event system
// throughput and periodic scheduling.
//
// Overview:
//
//	Every edge carries two numeric fields, cost and time. The minimum
//	cycle ratio of the graph is
//
//	    r* = min over cycles C of  Σ cost(e) / Σ time(e),  e ∈ C
//
//	which is exactly the optimum of the parametric problem
//
//	    max  r
//	    s.t. dist[v] - dist[u] <= cost(e) - r·time(e)   ∀ e(u,v)
//
//	so the whole solver is a thin specialization of parametric.Maximize
//	with distance(r, e) = cost(e) - r·time(e) and
//	zeroCancel(C) = Σcost/Σtime. It contributes no algorithmic logic of
//	its own beyond field extraction.
//
// Preconditions:
//
//   - time(e) must be strictly positive for every edge. This is validated
//     by a fast O(E) pre-scan and reported as ErrNonPositiveTime — a
//     configuration error, not a runtime recoverable condition (a zero
//     total time would divide by zero inside zeroCancel).
//
// Errors (sentinel):
//
//   - ErrNonPositiveTime — some edge has time(e) <= 0.
//   - ErrNilCost / ErrNilTime — missing field accessor.
//   - plus everything parametric.Maximize returns (ErrNilGraph,
//     ErrNilDist, ErrIterationLimit, ...).
//
// See also:
//
//   - parametric.Maximize: the engine this package delegates to.
//   - negcycle.FindNegCycles: the feasibility oracle underneath.
package ratio
