package parametric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/digraphx/digraph"
	"github.com/katalvlaran/digraphx/negcycle"
	"github.com/katalvlaran/digraphx/parametric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ctEdge carries the (cost, time) payload of the constrained fixtures.
type ctEdge struct {
	cost float64
	time float64
}

// ctGraph is the 3-node constrained fixture from the reference suite.
func ctGraph() digraph.Map[string, ctEdge] {
	return digraph.Map[string, ctEdge]{
		"a0": {"a1": {cost: 7, time: 1}, "a2": {cost: 5, time: 1}},
		"a1": {"a0": {cost: 0, time: 1}, "a2": {cost: 3, time: 1}},
		"a2": {"a1": {cost: 1, time: 1}, "a0": {cost: 2, time: 1}},
	}
}

// ctRatio is Σcost/Σtime over a cycle — the zero-cancel threshold for both
// parametrizations below.
func ctRatio(c negcycle.Cycle[ctEdge]) float64 {
	var cost, tim float64
	for _, e := range c {
		cost += e.cost
		tim += e.time
	}

	return cost / tim
}

// TestMinimize_InfinityBasisNoOp reproduces the reference fixture: with an
// all-infinite distance basis and a decrease-only gate, no relaxation can
// fire in either direction, so the initial r comes back untouched with no
// critical cycle.
func TestMinimize_InfinityBasisNoOp(t *testing.T) {
	g := ctGraph()
	dist := map[string]float64{
		"a0": math.Inf(1), "a1": math.Inf(1), "a2": math.Inf(1),
	}
	distance := func(r float64, e ctEdge) float64 { return e.cost - r*e.time }
	decreaseOnly := func(old, candidate float64) bool { return old > candidate }

	r, crit, err := parametric.Minimize(g, 0.0, distance, ctRatio, dist, decreaseOnly)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
	assert.Empty(t, crit)
}

// TestMinimize_RaisesToMaxRatio uses the increasing parametrization
// distance(r, e) = r·time − cost, under which feasibility requires r to be
// at least the maximum cycle ratio; Minimize climbs from 0 to that ratio.
func TestMinimize_RaisesToMaxRatio(t *testing.T) {
	g := digraph.Map[string, ctEdge]{
		"a0": {"a1": {cost: 1, time: 1}},
		"a1": {"a2": {cost: 2, time: 1}},
		"a2": {"a0": {cost: 3, time: 1}},
	}
	dist := map[string]float64{"a0": 0, "a1": 0, "a2": 0}
	distance := func(r float64, e ctEdge) float64 { return r*e.time - e.cost }
	allowAll := func(_, _ float64) bool { return true }

	r, crit, err := parametric.Minimize(g, 0.0, distance, ctRatio, dist, allowAll)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r, 1e-9, "the single cycle has ratio (1+2+3)/3 = 2")
	require.NotEmpty(t, crit)
	assert.Len(t, crit, 3)
}

// TestMinimize_PickOneOnly verifies the early-exit trade-off still reaches
// the fixture's optimum when each pass only ever finds one cycle anyway.
func TestMinimize_PickOneOnly(t *testing.T) {
	g := digraph.Map[string, ctEdge]{
		"a0": {"a1": {cost: 1, time: 1}},
		"a1": {"a2": {cost: 2, time: 1}},
		"a2": {"a0": {cost: 3, time: 1}},
	}
	dist := map[string]float64{"a0": 0, "a1": 0, "a2": 0}
	distance := func(r float64, e ctEdge) float64 { return r*e.time - e.cost }
	allowAll := func(_, _ float64) bool { return true }

	r, crit, err := parametric.Minimize(g, 0.0, distance, ctRatio, dist, allowAll,
		parametric.WithPickOneOnly())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r, 1e-9)
	assert.NotEmpty(t, crit)
}

// TestMinimize_Validation covers the extra updateOK precondition.
func TestMinimize_Validation(t *testing.T) {
	g := ctGraph()
	dist := map[string]float64{}
	distance := func(r float64, e ctEdge) float64 { return e.cost - r*e.time }

	_, _, err := parametric.Minimize(g, 0.0, distance, ctRatio, dist, nil)
	assert.ErrorIs(t, err, parametric.ErrNilUpdateOK)

	_, _, err = parametric.Minimize[string, ctEdge, float64](nil, 0.0, distance, ctRatio, dist,
		func(_, _ float64) bool { return true })
	assert.ErrorIs(t, err, parametric.ErrNilGraph)
}
