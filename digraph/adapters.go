package digraph

import "iter"

// Map adapts the canonical nested-map graph representation to the Digraph
// view. The zero value is an empty graph; populate it like any map:
//
//	g := digraph.Map[string, float64]{
//	    "a0": {"a1": 7, "a2": 5},
//	    "a1": {"a0": 0, "a2": 3},
//	    "a2": {"a1": 1, "a0": 2},
//	}
//
// Iteration order is Go map order and therefore unspecified; use List when
// a deterministic order matters.
type Map[N comparable, E any] map[N]map[N]E

// Nodes yields every node that has an adjacency row.
func (m Map[N, E]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := range m {
			if !yield(n) {
				return
			}
		}
	}
}

// Neighbors yields every (target, edge) pair leaving n.
func (m Map[N, E]) Neighbors(n N) iter.Seq2[N, E] {
	return func(yield func(N, E) bool) {
		for v, e := range m[n] {
			if !yield(v, e) {
				return
			}
		}
	}
}

// Order returns the number of nodes.
func (m Map[N, E]) Order() int { return len(m) }

// Arc is one outgoing adjacency entry of a List view.
type Arc[E any] struct {
	To   int // target node index
	Edge E   // opaque edge payload
}

// List adapts index-keyed adjacency slices to the Digraph view: node IDs are
// the slice indices 0..len-1 and iteration order is exactly slice order.
//
// List is the pre-flattening convention for multigraphs: keep parallel
// attribute arrays (weight, cost, time, ...) and use the array index as the
// edge payload, so two parallel arcs between the same node pair stay
// distinguishable.
type List[E any] [][]Arc[E]

// Nodes yields 0..len-1 in ascending order.
func (l List[E]) Nodes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := range l {
			if !yield(n) {
				return
			}
		}
	}
}

// Neighbors yields the arcs of row u in slice order.
// Out-of-range u yields nothing.
func (l List[E]) Neighbors(u int) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		if u < 0 || u >= len(l) {
			return
		}
		for _, a := range l[u] {
			if !yield(a.To, a.Edge) {
				return
			}
		}
	}
}

// Order returns the number of nodes.
func (l List[E]) Order() int { return len(l) }
