package negcycle

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors. The detection entry points return lazy sequences, so
// precondition violations surface as panics carrying these values.
var (
	// ErrNilGraph indicates a nil Digraph view was passed to a detector.
	ErrNilGraph = errors.New("negcycle: digraph is nil")

	// ErrNilDist indicates a nil distance map; the map is caller-owned and
	// mutated in place, so it must exist before the first call.
	ErrNilDist = errors.New("negcycle: distance map is nil")

	// ErrNilWeight indicates a nil weight function.
	ErrNilWeight = errors.New("negcycle: weight function is nil")

	// ErrNilUpdateOK indicates a nil update-acceptance predicate on the
	// constrained detector.
	ErrNilUpdateOK = errors.New("negcycle: updateOK predicate is nil")

	// ErrNotNegative indicates that a cycle reported by the policy-graph
	// scan failed the negativity verification. The weight function is not
	// pure/deterministic, or there is an implementation defect. Fatal.
	ErrNotNegative = errors.New("negcycle: policy cycle failed negativity verification (weight function not deterministic?)")
)

// Domain constrains the numeric domain of distance values: any signed
// integer or floating-point type. The domain is inferred from the weight
// function's return type.
type Domain interface {
	constraints.Signed | constraints.Float
}

// WeightFunc maps an opaque edge payload to its weight. It must be pure and
// deterministic for the duration of a detection call.
type WeightFunc[E any, D Domain] func(e E) D

// UpdateFunc is the acceptance gate of the constrained detector: a
// relaxation is applied only if it strictly improves the distance AND
// UpdateFunc(old, candidate) returns true.
type UpdateFunc[D Domain] func(old, candidate D) bool

// Cycle is an ordered, non-empty sequence of edges. Traversal starts at an
// arbitrary node on the cycle and follows policy links until returning to
// the start; no canonical starting point is guaranteed across runs.
type Cycle[E any] []E

// policyArc is one entry of a policy map: the chosen predecessor (or
// successor) of a node together with the connecting edge handle. The view
// exclusively owns edge data; the policy map holds only these handles.
type policyArc[N comparable, E any] struct {
	node N
	edge E
}
