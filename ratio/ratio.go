package ratio

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/digraphx/digraph"
	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/katalvlaran/digraphx/parametric"
)

// Sentinel errors returned by MinCycleRatio.
var (
	// ErrNilCost indicates a nil cost accessor.
	ErrNilCost = errors.New("ratio: cost accessor is nil")

	// ErrNilTime indicates a nil time accessor.
	ErrNilTime = errors.New("ratio: time accessor is nil")

	// ErrNonPositiveTime indicates an edge whose time field is <= 0;
	// cycle ratios are undefined (division by zero) on such graphs.
	ErrNonPositiveTime = errors.New("ratio: edge time must be strictly positive")
)

// CycleRatio returns Σcost/Σtime over the given cycle — the zero-cancel
// threshold of the cost−r·time parametrization. Returns ErrNonPositiveTime
// when the cycle's total time is not strictly positive.
func CycleRatio[E any, R constraints.Float](
	c negcycle.Cycle[E],
	cost func(e E) R,
	time func(e E) R,
) (R, error) {
	var totalCost, totalTime R
	for _, e := range c {
		totalCost += cost(e)
		totalTime += time(e)
	}
	if totalTime <= 0 {
		return 0, fmt.Errorf("%w: cycle total time %v", ErrNonPositiveTime, totalTime)
	}

	return totalCost / totalTime, nil
}

// MinCycleRatio finds the minimum cost-to-time cycle ratio of g, starting
// from an upper bound r0 believed to exceed it (any value above the
// largest single-edge cost/time ratio works).
//
// dist is caller-owned and mutated in place across outer iterations, as in
// parametric.Maximize. Returns the optimal ratio, the critical cycle that
// attains it (nil when no cycle ever tightened r0), and an error.
//
// Preconditions and validation (in order):
//  1. cost must be non-nil (ErrNilCost).
//  2. time must be non-nil (ErrNilTime).
//  3. g must be non-nil (delegated, ErrNilGraph).
//  4. Every edge must have time(e) > 0; a fast O(E) pre-scan fails with
//     ErrNonPositiveTime naming the offending arc.
//
// Complexity: O(E) validation plus the parametric.Maximize outer loop.
func MinCycleRatio[N comparable, E any, R constraints.Float](
	g digraph.Digraph[N, E],
	r0 R,
	cost func(e E) R,
	time func(e E) R,
	dist map[N]R,
	opts ...parametric.Option,
) (R, negcycle.Cycle[E], error) {
	// 1) Accessors first: the pre-scan below needs them.
	if cost == nil {
		return r0, nil, ErrNilCost
	}
	if time == nil {
		return r0, nil, ErrNilTime
	}
	if g == nil {
		return r0, nil, parametric.ErrNilGraph
	}

	// 2) Pre-scan all edges to reject non-positive times. Fail fast.
	for u := range g.Nodes() {
		for v, e := range g.Neighbors(u) {
			if time(e) <= 0 {
				return r0, nil, fmt.Errorf("%w: arc %v→%v time=%v", ErrNonPositiveTime, u, v, time(e))
			}
		}
	}

	// 3) The parametrization: distance monotonically non-increasing in r
	//    (time > 0 guarantees it), zeroCancel the cycle's cost/time ratio.
	distance := func(r R, e E) R { return cost(e) - r*time(e) }
	zeroCancel := func(c negcycle.Cycle[E]) R {
		// The pre-scan guarantees a positive total time on any cycle.
		r, _ := CycleRatio(c, cost, time)

		return r
	}

	return parametric.Maximize(g, r0, distance, zeroCancel, dist, opts...)
}
