// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/core"
)

// buildTriangle returns A—B (1), B—C (1), A—C (5).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 5)
	require.NoError(t, err)

	return g
}

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("B"))
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = g.AddEdge("A", "B", w)
		assert.ErrorIs(t, err, core.ErrBadWeight, "weight %v", w)
	}

	_, err = g.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 3)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAddEdge_Loops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	assert.True(t, g.Looped())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, ids)
}

func TestEdgeWeight_Symmetric(t *testing.T) {
	g := buildTriangle(t)

	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		wUV, err := g.EdgeWeight(pair[0], pair[1])
		require.NoError(t, err)
		wVU, err := g.EdgeWeight(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, wUV, wVU)
	}

	_, err := g.EdgeWeight("A", "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	require.NoError(t, g.AddVertex("D"))
	_, err = g.EdgeWeight("A", "D")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestNeighborIDs_SortedUnique(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"D", "B", "C", "A"} {
		_, err := g.AddEdge("X", v, 1)
		require.NoError(t, err)
	}
	ids, err := g.NeighborIDs("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)

	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.NeighborIDs("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	deg, err := g.Degree("X")
	require.NoError(t, err)
	assert.Equal(t, 4, deg)
}

func TestNeighbors_EdgeOrder(t *testing.T) {
	g := buildTriangle(t)
	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e3", edges[1].ID)
}

func TestRemoveEdgeAndVertex(t *testing.T) {
	g := buildTriangle(t)
	require.Equal(t, 3, g.EdgeCount())

	require.NoError(t, g.RemoveEdge("e3"))
	assert.False(t, g.HasEdge("A", "C"))
	assert.False(t, g.HasEdge("C", "A"))
	assert.ErrorIs(t, g.RemoveEdge("e3"), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, []string{"A", "C"}, g.Vertices())
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)

	// IDs are never reused.
	eid, err := g.AddEdge("A", "C", 1)
	require.NoError(t, err)
	assert.Equal(t, "e4", eid)
}

func TestPosition(t *testing.T) {
	g := buildTriangle(t)

	_, err := g.Position("A")
	assert.ErrorIs(t, err, core.ErrNoPosition)
	_, err = g.Position("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	require.NoError(t, g.SetPosition("A", core.Point{X: 3, Y: 4}))
	p, err := g.Position("A")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 3, Y: 4}, p)

	// SetPosition creates unknown vertices.
	require.NoError(t, g.SetPosition("Q", core.Point{}))
	assert.True(t, g.HasVertex("Q"))
	assert.ErrorIs(t, g.SetPosition("", core.Point{}), core.ErrEmptyVertexID)
}

func TestEdges_Sorted(t *testing.T) {
	g := buildTriangle(t)
	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{edges[0].ID, edges[1].ID, edges[2].ID})
	e, err := g.GetEdge("e2")
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Weight)
	_, err = g.GetEdge("e9")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}
