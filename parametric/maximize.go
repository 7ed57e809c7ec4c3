package parametric

import (
	"fmt"

	"github.com/katalvlaran/digraphx/digraph"
	"github.com/katalvlaran/digraphx/negcycle"
)

// Maximize finds the largest parameter r for which a feasible potential
// exists: max r s.t. dist[v]-dist[u] <= distance(r, e) for every edge.
//
// r0 is a caller-supplied upper bound believed feasible; rOpt only ever
// decreases from there. dist is caller-owned and mutated in place across
// all outer iterations (warm start) — create it once and reuse it.
//
// Returns the optimal r, the critical cycle that determined it (nil when
// r0 was already optimal and no cycle ever tightened the bound), and an
// error. On ErrIterationLimit the best bound and cycle found so far are
// returned alongside the error.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. distance must be non-nil (ErrNilDistanceFunc).
//  3. zeroCancel must be non-nil (ErrNilZeroCancel).
//  4. dist must be non-nil (ErrNilDist).
func Maximize[N comparable, E any, R negcycle.Domain](
	g digraph.Digraph[N, E],
	r0 R,
	distance DistanceFunc[E, R],
	zeroCancel ZeroCancelFunc[E, R],
	dist map[N]R,
	opts ...Option,
) (R, negcycle.Cycle[E], error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs in documented order.
	if g == nil {
		return r0, nil, ErrNilGraph
	}
	if distance == nil {
		return r0, nil, ErrNilDistanceFunc
	}
	if zeroCancel == nil {
		return r0, nil, ErrNilZeroCancel
	}
	if dist == nil {
		return r0, nil, ErrNilDist
	}

	// 3) The weight function closes over rOpt: each outer iteration re-runs
	//    the detector under the tightened bound without rebuilding anything.
	rOpt := r0
	weight := func(e E) R { return distance(rOpt, e) }

	var cOpt negcycle.Cycle[E]
	iters := 0
	for {
		if cfg.MaxIterations > 0 && iters >= cfg.MaxIterations {
			return rOpt, cOpt, fmt.Errorf("%w: %d iterations", ErrIterationLimit, iters)
		}
		iters++

		// 4) Detect under the current bound; track the smallest
		//    infeasibility threshold over all cycles of this detection.
		rMin := rOpt
		var cMin negcycle.Cycle[E]
		for ci := range negcycle.FindNegCycles(g, dist, weight) {
			ri := zeroCancel(ci)
			if ri < rMin {
				rMin = ri
				cMin = ci
			}
		}

		// 5) No cycle proves infeasibility below the current bound: done.
		if rMin >= rOpt {
			return rOpt, cOpt, nil
		}

		// 6) Tighten the bound, record the critical cycle, go again.
		//    dist is intentionally NOT reset (warm start).
		rOpt = rMin
		cOpt = cMin
	}
}
