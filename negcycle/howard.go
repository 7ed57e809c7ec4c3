package negcycle

import (
	"iter"

	"github.com/katalvlaran/digraphx/digraph"
)

// FindNegCycles finds negative cycles in g under weight, by Howard's policy
// iteration. It returns a lazy sequence: the algorithm suspends after
// producing one cycle and resumes on the next pull, with no background
// execution. All cycles found in the first successful policy scan are
// emitted, then the sequence ends; when the relaxation fixpoint is reached
// without a scan ever succeeding, the sequence is empty.
//
// dist is caller-owned and mutated in place: entries missing from the map
// read as the zero value of D, and on return dist holds the best distances
// found up to (and including) the relax pass that triggered cycle
// discovery. Reusing the same map across calls warm-starts the next call.
//
// Preconditions (panic on violation): g, dist and weight must be non-nil;
// weight must be pure and deterministic for the duration of the call — a
// cycle failing the internal negativity verification panics with
// ErrNotNegative.
//
// Complexity: O(R·(V+E)) time, O(V) extra space (see package doc).
func FindNegCycles[N comparable, E any, D Domain](
	g digraph.Digraph[N, E],
	dist map[N]D,
	weight WeightFunc[E, D],
) iter.Seq[Cycle[E]] {
	// Fail fast on programmer errors before handing out the sequence.
	if g == nil {
		panic(ErrNilGraph)
	}
	if dist == nil {
		panic(ErrNilDist)
	}
	if weight == nil {
		panic(ErrNilWeight)
	}

	return func(yield func(Cycle[E]) bool) {
		// The policy map is rebuilt from empty for every detection call and
		// never escapes it; abandoning the sequence mid-way drops it whole.
		pred := make(map[N]policyArc[N, E], g.Order())

		found := false
		for !found && relax(g, dist, weight, pred) {
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

// relax performs one full relaxation pass: for every arc (u, v, e), improve
// dist[v] through u where possible and record the improving arc as v's
// policy link. Reports whether anything changed.
func relax[N comparable, E any, D Domain](
	g digraph.Digraph[N, E],
	dist map[N]D,
	weight WeightFunc[E, D],
	pred map[N]policyArc[N, E],
) bool {
	changed := false
	for u := range g.Nodes() {
		for v, e := range g.Neighbors(u) {
			d := dist[u] + weight(e)
			if d < dist[v] {
				dist[v] = d
				pred[v] = policyArc[N, E]{node: u, edge: e}
				changed = true
			}
		}
	}

	return changed
}

// policyCycleStarts scans the policy map for cycles. Walking policy links
// from each unvisited node, it marks every node it touches with the walk's
// origin; a node already marked by the *current* origin closes a loop and
// is reported as a cycle start. Cycles are reported in the order their
// origin nodes are first visited.
func policyCycleStarts[N comparable, E any](
	g digraph.Digraph[N, E],
	policy map[N]policyArc[N, E],
) []N {
	visited := make(map[N]N, g.Order())
	var starts []N

	for v := range g.Nodes() {
		if _, seen := visited[v]; seen {
			continue
		}
		u := v
		visited[u] = v
		for {
			arc, ok := policy[u]
			if !ok {
				break
			}
			u = arc.node
			if origin, seen := visited[u]; seen {
				if origin == v {
					starts = append(starts, u)
				}
				break
			}
			visited[u] = v
		}
	}

	return starts
}

// cycleIsNegative walks the policy cycle through handle and confirms that
// the strict-improvement inequality dist[v] > dist[u] + weight(e) holds on
// at least one of its edges. A structurally closed policy loop that fails
// this is not a weight-negative cycle.
func cycleIsNegative[N comparable, E any, D Domain](
	handle N,
	dist map[N]D,
	weight WeightFunc[E, D],
	policy map[N]policyArc[N, E],
) bool {
	v := handle
	for {
		arc := policy[v]
		if dist[v] > dist[arc.node]+weight(arc.edge) {
			return true
		}
		v = arc.node
		if v == handle {
			return false
		}
	}
}

// collectCycle reconstructs the cycle through handle: follow policy links,
// collecting edge handles, until handle is revisited.
func collectCycle[N comparable, E any](
	handle N,
	policy map[N]policyArc[N, E],
) Cycle[E] {
	var cyc Cycle[E]
	v := handle
	for {
		arc := policy[v]
		cyc = append(cyc, arc.edge)
		v = arc.node
		if v == handle {
			return cyc
		}
	}
}
