package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/heuristic"
)

// plainGraph satisfies core.Explorer but not core.Locator.
type plainGraph struct{}

func (plainGraph) HasVertex(string) bool                      { return true }
func (plainGraph) NeighborIDs(string) ([]string, error)       { return nil, nil }
func (plainGraph) EdgeWeight(string, string) (float64, error) { return 0, nil }

func positioned(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.SetPosition("O", core.Point{X: 0, Y: 0}))
	require.NoError(t, g.SetPosition("P", core.Point{X: 3, Y: 4}))
	require.NoError(t, g.AddVertex("N")) // no position

	return g
}

func TestNull(t *testing.T) {
	est, err := heuristic.Null(plainGraph{}, "A", "B")
	require.NoError(t, err)
	assert.Zero(t, est)
}

func TestEuclidean(t *testing.T) {
	g := positioned(t)
	est, err := heuristic.Euclidean(g, "O", "P")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, est, 1e-12)

	est, err = heuristic.Euclidean(g, "P", "P")
	require.NoError(t, err)
	assert.Zero(t, est)
}

func TestManhattan(t *testing.T) {
	g := positioned(t)
	est, err := heuristic.Manhattan(g, "P", "O")
	require.NoError(t, err)
	assert.InDelta(t, 7.0, est, 1e-12)
}

func TestMissingPosition(t *testing.T) {
	g := positioned(t)

	_, err := heuristic.Euclidean(g, "N", "P")
	assert.ErrorIs(t, err, heuristic.ErrMissingPosition)
	assert.ErrorIs(t, err, core.ErrNoPosition)

	_, err = heuristic.Euclidean(g, "O", "ghost")
	assert.ErrorIs(t, err, heuristic.ErrMissingPosition)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = heuristic.Manhattan(plainGraph{}, "A", "B")
	assert.ErrorIs(t, err, heuristic.ErrMissingPosition)
}

func TestScaled(t *testing.T) {
	g := positioned(t)
	half := heuristic.Scaled(heuristic.Euclidean, 0.5)
	est, err := half(g, "O", "P")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, est, 1e-12)

	_, err = half(g, "N", "P")
	assert.ErrorIs(t, err, heuristic.ErrMissingPosition)

	assert.Panics(t, func() { heuristic.Scaled(nil, 1) })
	assert.Panics(t, func() { heuristic.Scaled(heuristic.Null, 1.5) })
	assert.Panics(t, func() { heuristic.Scaled(heuristic.Null, math.NaN()) })
}

func TestEstimate_Validation(t *testing.T) {
	bad := func(v float64) heuristic.Func {
		return func(core.Explorer, string, string) (float64, error) { return v, nil }
	}
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := heuristic.Estimate(bad(v), plainGraph{}, "A", "B")
		assert.ErrorIs(t, err, heuristic.ErrBadEstimate, "estimate %v", v)
	}

	est, err := heuristic.Estimate(bad(2), plainGraph{}, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, est)
}

func TestByName(t *testing.T) {
	g := positioned(t)
	for name, want := range map[string]float64{"": 5, "Euclidean": 5, "manhattan": 7, "null": 0} {
		h, err := heuristic.ByName(name)
		require.NoError(t, err, name)
		est, err := h(g, "O", "P")
		require.NoError(t, err, name)
		assert.Equal(t, want, est, name)
	}

	_, err := heuristic.ByName("octile")
	assert.ErrorIs(t, err, heuristic.ErrUnknownHeuristic)
}
