package parametric

import (
	"errors"

	"github.com/katalvlaran/digraphx/negcycle"
)

// Sentinel errors returned by the parametric solvers.
var (
	// ErrNilGraph indicates a nil Digraph view.
	ErrNilGraph = errors.New("parametric: digraph is nil")

	// ErrNilDist indicates a nil distance map; the map is caller-owned,
	// threaded through every outer iteration and mutated in place.
	ErrNilDist = errors.New("parametric: distance map is nil")

	// ErrNilDistanceFunc indicates a nil distance(r, e) function.
	ErrNilDistanceFunc = errors.New("parametric: distance function is nil")

	// ErrNilZeroCancel indicates a nil zeroCancel(cycle) function.
	ErrNilZeroCancel = errors.New("parametric: zeroCancel function is nil")

	// ErrNilUpdateOK indicates a nil update-acceptance predicate on Minimize.
	ErrNilUpdateOK = errors.New("parametric: updateOK predicate is nil")

	// ErrIterationLimit indicates the defensive outer-loop cap was reached
	// before the fixpoint. The best bound and cycle found so far are still
	// returned alongside this error.
	ErrIterationLimit = errors.New("parametric: iteration limit reached before convergence")

	// ErrBadMaxIterations indicates a negative WithMaxIterations value.
	ErrBadMaxIterations = errors.New("parametric: MaxIterations must be non-negative")
)

// DistanceFunc computes the parametrized constraint slack of an edge.
// For Maximize it must be monotonically non-increasing in r.
type DistanceFunc[E any, R negcycle.Domain] func(r R, e E) R

// ZeroCancelFunc returns the unique parameter value at which the given
// cycle's total weight under the distance function sums to exactly zero.
type ZeroCancelFunc[E any, R negcycle.Domain] func(c negcycle.Cycle[E]) R

// Options configures the outer loop of both solvers.
//
// MaxIterations — defensive cap on outer iterations; 0 (default) disables
// the cap and the loop terminates purely by its convergence fixpoint.
// PickOneOnly   — Minimize only: stop scanning a pass after the first
// improving cycle.
type Options struct {
	MaxIterations int
	PickOneOnly   bool
}

// Option is a functional option for the parametric solvers.
type Option func(*Options)

// WithMaxIterations caps the number of outer iterations as a safety valve
// for pathological or misconfigured inputs; the proven algorithm does not
// need it for finite graphs with well-behaved distance functions.
// Must be non-negative; 0 disables the cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithPickOneOnly makes Minimize abandon scanning further cycles within the
// current pass as soon as one improving cycle is found — faster per pass,
// but it can miss a better cycle occurring later in the same pass.
func WithPickOneOnly() Option {
	return func(o *Options) {
		o.PickOneOnly = true
	}
}

// DefaultOptions returns the default configuration: no iteration cap,
// exhaustive per-pass scanning.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 0,
		PickOneOnly:   false,
	}
}
