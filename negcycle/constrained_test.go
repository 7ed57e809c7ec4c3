package negcycle_test

import (
	"testing"

	"github.com/katalvlaran/digraphx/digraph"
	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allowAll is the constraint-free gate.
func allowAll(_, _ float64) bool { return true }

// TestScanPred_ConstraintFreeEquivalence verifies that an always-true gate
// reproduces the unconstrained detector's cycle set on the same graph and
// weights.
func TestScanPred_ConstraintFreeEquivalence(t *testing.T) {
	g := digraph.Map[string, float64]{
		"a0": {"a1": 1},
		"a1": {"a2": 1},
		"a2": {"a0": -4},
	}

	plain := collect(negcycle.FindNegCycles(g, map[string]float64{}, identity))
	gated := collect(negcycle.ScanPred(g, map[string]float64{}, identity, allowAll))

	require.Len(t, gated, len(plain))
	for i := range plain {
		assert.InDelta(t, total(plain[i]), total(gated[i]), 1e-9,
			"gated and ungated cycles must carry the same total weight")
		assert.Len(t, gated[i], len(plain[i]))
	}
}

// TestScanPred_GateBlocksUpdates verifies that a gate rejecting every
// update yields no relaxations and therefore no cycles, even in the
// presence of a negative cycle.
func TestScanPred_GateBlocksUpdates(t *testing.T) {
	g := digraph.Map[string, float64]{
		"a0": {"a1": 1},
		"a1": {"a2": 1},
		"a2": {"a0": -4},
	}
	dist := map[string]float64{"a0": 0, "a1": 0, "a2": 0}
	blockAll := func(_, _ float64) bool { return false }

	cycles := collect(negcycle.ScanPred(g, dist, identity, blockAll))
	assert.Empty(t, cycles)
	assert.Equal(t, map[string]float64{"a0": 0, "a1": 0, "a2": 0}, dist,
		"a blocking gate must leave the distance map untouched")
}

// TestScanSucc_FindsNegativeCycle verifies the successor-mode relaxation
// (dist[u] raised from dist[v]-weight) detects the same triangle.
func TestScanSucc_FindsNegativeCycle(t *testing.T) {
	g := digraph.Map[string, float64]{
		"a0": {"a1": 1},
		"a1": {"a2": 1},
		"a2": {"a0": -4},
	}
	dist := map[string]float64{"a0": 0, "a1": 0, "a2": 0}

	cycles := collect(negcycle.ScanSucc(g, dist, identity, allowAll))
	require.Len(t, cycles, 1)
	assert.Len(t, cycles[0], 3)
	assert.InDelta(t, -2.0, total(cycles[0]), 1e-9)
}

// TestScanSucc_SkipsVerification pins the deliberate asymmetry between the
// two constrained entry points: ScanPred verifies each candidate cycle is
// weight-negative and panics when the check fails; ScanSucc emits the
// structurally closed policy loop without verifying it.
//
// A weight function that changes its answer between the relaxation pass and
// the verification walk makes the difference observable: the predecessor
// path dies, the successor path yields the bogus cycle.
func TestScanSucc_SkipsVerification(t *testing.T) {
	g := digraph.Map[string, float64]{"a": {"a": 0}}

	flipAfterFirstCall := func() negcycle.WeightFunc[float64, float64] {
		calls := 0

		return func(_ float64) float64 {
			calls++
			if calls == 1 {
				return -1
			}

			return 1
		}
	}

	assert.Panics(t, func() {
		for range negcycle.ScanPred(g, map[string]float64{"a": 0}, flipAfterFirstCall(), allowAll) {
		}
	}, "ScanPred must reject a cycle that fails the negativity check")

	var cycles []negcycle.Cycle[float64]
	assert.NotPanics(t, func() {
		for c := range negcycle.ScanSucc(g, map[string]float64{"a": 0}, flipAfterFirstCall(), allowAll) {
			cycles = append(cycles, c)
		}
	}, "ScanSucc performs no such check")
	assert.Len(t, cycles, 1, "the unverified policy loop is emitted as-is")
}

// TestScanPred_MonotoneGate exercises a realistic gate: only accept updates
// that keep distances above a floor, blocking the relaxation chain that
// would otherwise close the negative cycle.
func TestScanPred_MonotoneGate(t *testing.T) {
	g := digraph.Map[string, float64]{
		"a0": {"a1": 1},
		"a1": {"a2": 1},
		"a2": {"a0": -4},
	}
	dist := map[string]float64{"a0": 0, "a1": 0, "a2": 0}
	aboveFloor := func(_, candidate float64) bool { return candidate > -3 }

	for c := range negcycle.ScanPred(g, dist, identity, aboveFloor) {
		// Any cycle that does get through must still be weight-negative.
		assert.Less(t, total(c), 0.0)
	}
	for _, d := range dist {
		assert.Greater(t, d, -3.0, "the gate bounds every accepted distance")
	}
}

// TestConstrained_NilArgs verifies the documented panics.
func TestConstrained_NilArgs(t *testing.T) {
	g := digraph.Map[string, float64]{"a": {"a": 1}}
	dist := map[string]float64{"a": 0}

	assert.Panics(t, func() {
		negcycle.ScanPred[string, float64, float64](g, dist, identity, nil)
	})
	assert.Panics(t, func() {
		negcycle.ScanSucc[string, float64, float64](nil, dist, identity, allowAll)
	})
}
