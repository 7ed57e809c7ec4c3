package negcycle

import (
	"iter"

	"github.com/katalvlaran/digraphx/digraph"
)

// ScanPred finds negative cycles with an update-acceptance gate, relaxing
// in the forward (predecessor) direction: dist[v] is improved from
// dist[u]+weight(e), exactly as FindNegCycles, but an update is applied
// only if it strictly improves the distance AND updateOK(old, candidate)
// approves it.
//
// ScanPred performs the same negativity verification as FindNegCycles;
// ScanSucc does not. Preconditions and the laziness contract are identical
// to FindNegCycles (nil arguments panic).
func ScanPred[N comparable, E any, D Domain](
	g digraph.Digraph[N, E],
	dist map[N]D,
	weight WeightFunc[E, D],
	updateOK UpdateFunc[D],
) iter.Seq[Cycle[E]] {
	checkConstrainedArgs(g, dist, weight, updateOK)

	return func(yield func(Cycle[E]) bool) {
		pred := make(map[N]policyArc[N, E], g.Order())

		found := false
		for !found && relaxPredGated(g, dist, weight, updateOK, pred) {
			for _, origin := range policyCycleStarts(g, pred) {
				if !cycleIsNegative(origin, dist, weight, pred) {
					panic(ErrNotNegative)
				}
				found = true
				if !yield(collectCycle(origin, pred)) {
					return
				}
			}
		}
	}
}

// ScanSucc finds cycles with the gate in the backward (successor)
// direction: dist[u] is improved from dist[v]-weight(e), building a policy
// map that points from u to its chosen successor v.
//
// ScanSucc skips the negativity verification that ScanPred performs, so
// with a misbehaving weight function it can emit a structurally closed
// policy loop that is not weight-negative where ScanPred would panic. The
// asymmetry is deliberate and pinned by TestScanSucc_SkipsVerification.
func ScanSucc[N comparable, E any, D Domain](
	g digraph.Digraph[N, E],
	dist map[N]D,
	weight WeightFunc[E, D],
	updateOK UpdateFunc[D],
) iter.Seq[Cycle[E]] {
	checkConstrainedArgs(g, dist, weight, updateOK)

	return func(yield func(Cycle[E]) bool) {
		succ := make(map[N]policyArc[N, E], g.Order())

		found := false
		for !found && relaxSuccGated(g, dist, weight, updateOK, succ) {
			for _, origin := range policyCycleStarts(g, succ) {
				found = true
				if !yield(collectCycle(origin, succ)) {
					return
				}
			}
		}
	}
}

// relaxPredGated is one forward relaxation pass with the acceptance gate.
func relaxPredGated[N comparable, E any, D Domain](
	g digraph.Digraph[N, E],
	dist map[N]D,
	weight WeightFunc[E, D],
	updateOK UpdateFunc[D],
	pred map[N]policyArc[N, E],
) bool {
	changed := false
	for u := range g.Nodes() {
		for v, e := range g.Neighbors(u) {
			d := dist[u] + weight(e)
			if d < dist[v] && updateOK(dist[v], d) {
				dist[v] = d
				pred[v] = policyArc[N, E]{node: u, edge: e}
				changed = true
			}
		}
	}

	return changed
}

// relaxSuccGated is one backward relaxation pass with the acceptance gate:
// for every arc (u, v, e), raise dist[u] toward dist[v]-weight(e) and point
// u at its chosen successor v.
func relaxSuccGated[N comparable, E any, D Domain](
	g digraph.Digraph[N, E],
	dist map[N]D,
	weight WeightFunc[E, D],
	updateOK UpdateFunc[D],
	succ map[N]policyArc[N, E],
) bool {
	changed := false
	for u := range g.Nodes() {
		for v, e := range g.Neighbors(u) {
			d := dist[v] - weight(e)
			if dist[u] < d && updateOK(dist[u], d) {
				dist[u] = d
				succ[u] = policyArc[N, E]{node: v, edge: e}
				changed = true
			}
		}
	}

	return changed
}

// checkConstrainedArgs fails fast on programmer errors shared by both
// constrained entry points.
func checkConstrainedArgs[N comparable, E any, D Domain](
	g digraph.Digraph[N, E],
	dist map[N]D,
	weight WeightFunc[E, D],
	updateOK UpdateFunc[D],
) {
	if g == nil {
		panic(ErrNilGraph)
	}
	if dist == nil {
		panic(ErrNilDist)
	}
	if weight == nil {
		panic(ErrNilWeight)
	}
	if updateOK == nil {
		panic(ErrNilUpdateOK)
	}
}
