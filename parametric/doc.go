// Package parametric solves single-parameter network feasibility problems
// on top of the negcycle detection layer.
//
// Overview:
//
//	Maximize solves
//
//	    max  r
//	    s.t. dist[v] - dist[u] <= distance(r, e)   ∀ e(u,v) ∈ G(V,E)
//
//	given distance(r, e) monotonically non-increasing in r (raising r
//	tightens every constraint) and zeroCancel(cycle) returning the unique
//	r at which that cycle's total weight under distance(r, ·) is exactly
//	zero — the cycle's infeasibility threshold.
//
//	Minimize solves the symmetric minimization with an update-acceptance
//	gate on every relaxation, alternating the constrained detector's
//	predecessor and successor scans each outer iteration — constraints may
//	block improving relaxations in one direction while permitting them in
//	the other.
//
// Algorithm outline (Maximize):
//
//  1. Start from a caller-supplied upper bound r0 believed feasible.
//  2. Detect negative cycles under weight(e) = distance(rOpt, e).
//  3. For every cycle found take its zeroCancel threshold; let rMin be the
//     smallest. If rMin >= rOpt no cycle proves infeasibility below the
//     current bound: stop, rOpt is optimal and the last recorded critical
//     cycle is returned. Otherwise set rOpt = rMin, record the critical
//     cycle, and repeat.
//  4. dist is never reset between outer iterations (warm start), which is
//     why the detector's inner fixpoint converges quickly on successive
//     calls. rOpt is non-increasing across iterations.
//
// Termination:
//
//	The fixpoint criterion above is the primary (and proven) termination
//	for finite graphs with well-behaved distance functions. As a defensive
//	valve for pathological or misconfigured inputs, WithMaxIterations(n)
//	caps the outer loop; hitting the cap returns ErrIterationLimit together
//	with the best bound and cycle found so far. The cap is off by default.
//
// Options:
//
//   - WithMaxIterations(n) — defensive outer-loop cap (0 = unlimited).
//   - WithPickOneOnly()    — Minimize only: abandon scanning further cycles
//     within the current pass as soon as one improving cycle is found. A
//     deliberate completeness/speed trade-off: it can miss a better cycle
//     occurring later in the same pass.
//
// Errors (sentinel):
//
//   - ErrNilGraph / ErrNilDist / ErrNilDistanceFunc / ErrNilZeroCancel /
//     ErrNilUpdateOK — caller precondition violations, returned eagerly.
//   - ErrIterationLimit — the defensive cap was reached.
//   - ErrBadMaxIterations — (via panic) negative value passed to
//     WithMaxIterations.
//
// See also:
//
//   - ratio.MinCycleRatio: the cost/time specialization of Maximize.
package parametric
