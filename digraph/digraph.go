package digraph

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNodeNotFound indicates that a neighbor referenced by some adjacency row
// is absent from the outer node set (the view is not closed).
var ErrNodeNotFound = errors.New("digraph: neighbor node missing from node set")

// Digraph is a read-only view of a weighted directed graph.
//
// N is the node identity (any comparable type usable as a map key);
// E is the opaque edge payload. Implementations choose their own iteration
// order; algorithms in this module impose no additional sorting on top of it.
//
// A view is borrowed for the lifetime of a detector or solver and must not
// be mutated while one is running over it.
type Digraph[N comparable, E any] interface {
	// Nodes yields every node of the view, in the view's own order.
	Nodes() iter.Seq[N]

	// Neighbors yields every (target, edge) pair leaving n, in the view's
	// own order. A node with no outgoing edges yields nothing.
	Neighbors(n N) iter.Seq2[N, E]

	// Order returns the number of nodes in the view. Used only for sizing
	// internal maps; it does not need to be cheap to call repeatedly.
	Order() int
}

// Validate checks that g is closed: every neighbor yielded by some adjacency
// row must itself appear in the node set. Returns nil on success, or
// ErrNodeNotFound (wrapped with the offending arc) on the first violation.
//
// Complexity: O(V + E) time, O(V) space.
func Validate[N comparable, E any](g Digraph[N, E]) error {
	// 1) Collect the outer node set.
	seen := make(map[N]struct{}, g.Order())
	for u := range g.Nodes() {
		seen[u] = struct{}{}
	}

	// 2) Every arc target must be a member of that set.
	for u := range g.Nodes() {
		for v := range g.Neighbors(u) {
			if _, ok := seen[v]; !ok {
				return fmt.Errorf("%w: arc %v→%v", ErrNodeNotFound, u, v)
			}
		}
	}

	return nil
}
