package parametric

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/digraphx/digraph"
	"github.com/katalvlaran/digraphx/negcycle"
)

// Minimize solves the constrained dual of Maximize:
// min r s.t. dist[v]-dist[u] <= distance(r, e), with updateOK consulted on
// every relaxation attempt.
//
// Each outer iteration alternates between the constrained detector's
// successor and predecessor scans (successor first) — constraints may block
// improving relaxations in one direction while permitting them in the
// other. For every cycle found in the active direction, the zeroCancel
// threshold is computed and the largest improving value tracked; when no
// cycle improves on the current r, the loop stops.
//
// With WithPickOneOnly, scanning a pass is abandoned as soon as one
// improving cycle is found (see Options).
//
// Returns the final r, the critical cycle (nil when r0 was never improved),
// and an error, with the same validation and cap semantics as Maximize
// plus ErrNilUpdateOK.
func Minimize[N comparable, E any, R negcycle.Domain](
	g digraph.Digraph[N, E],
	r0 R,
	distance DistanceFunc[E, R],
	zeroCancel ZeroCancelFunc[E, R],
	dist map[N]R,
	updateOK negcycle.UpdateFunc[R],
	opts ...Option,
) (R, negcycle.Cycle[E], error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
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
	if updateOK == nil {
		return r0, nil, ErrNilUpdateOK
	}

	// 3) weight closes over rCur so successive scans see the updated bound.
	rCur := r0
	weight := func(e E) R { return distance(rCur, e) }

	var cycle negcycle.Cycle[E]
	reverse := true // successor direction first, flipped every iteration
	iters := 0
	for {
		if cfg.MaxIterations > 0 && iters >= cfg.MaxIterations {
			return rCur, cycle, fmt.Errorf("%w: %d iterations", ErrIterationLimit, iters)
		}
		iters++

		// 4) Scan in the active direction against its own policy map.
		var cycles iter.Seq[negcycle.Cycle[E]]
		if reverse {
			cycles = negcycle.ScanSucc(g, dist, weight, updateOK)
		} else {
			cycles = negcycle.ScanPred(g, dist, weight, updateOK)
		}

		// 5) Track the largest improving threshold of this pass.
		rMax := rCur
		var cMax negcycle.Cycle[E]
		for ci := range cycles {
			ri := zeroCancel(ci)
			if ri > rMax {
				rMax = ri
				cMax = ci
				if cfg.PickOneOnly {
					break
				}
			}
		}

		// 6) No improvement over the current r: converged.
		if rMax <= rCur {
			return rCur, cycle, nil
		}

		// 7) Raise the bound, record the critical cycle, flip direction.
		rCur = rMax
		cycle = cMax
		reverse = !reverse
	}
}
