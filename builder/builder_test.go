// Package builder_test contains functional tests for the fixture
// constructors: counts, emission order, positions and error sentinels.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
)

// edgeLengthsFit reports whether every edge weight is ≥ the straight-line
// distance between its endpoints (tolerance 1e-9).
func edgeLengthsFit(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, e := range g.Edges() {
		a, err := g.Position(e.From)
		require.NoError(t, err)
		b, err := g.Position(e.To)
		require.NoError(t, err)
		d := math.Hypot(a.X-b.X, a.Y-b.Y)
		assert.GreaterOrEqual(t, e.Weight+1e-9, d, "edge %s–%s", e.From, e.To)
	}
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		opts      []builder.BuilderOption
		wantV     int
		wantE     int
		positions bool
	}{
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5, positions: true},
		{name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3, positions: true},
		{name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5, positions: true},
		{name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10},
		{name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 17, positions: true},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.ctor, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
			if tc.positions {
				edgeLengthsFit(t, g)
			}
		})
	}
}

func TestCycle_Topology(t *testing.T) {
	g, err := builder.Build(builder.Cycle(4), builder.WithSymbolIDs())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		assert.True(t, g.HasEdge(pair[0], pair[1]), "%v", pair)
	}
	assert.False(t, g.HasEdge("A", "C"))

	// unit sides
	a, _ := g.Position("A")
	b, _ := g.Position("B")
	assert.InDelta(t, 1.0, math.Hypot(a.X-b.X, a.Y-b.Y), 1e-9)
}

func TestStar_Center(t *testing.T) {
	g, err := builder.Build(builder.Star(4))
	require.NoError(t, err)

	deg, err := g.Degree(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
	p, err := g.Position(builder.CenterVertexID)
	require.NoError(t, err)
	assert.Equal(t, core.Point{}, p)
}

func TestGrid_Layout(t *testing.T) {
	g, err := builder.Build(builder.Grid(2, 3))
	require.NoError(t, err)

	p, err := g.Position(builder.GridID(1, 2))
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 2, Y: 1}, p)

	nbrs, err := g.NeighborIDs(builder.GridID(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "0,2", "1,1"}, nbrs)
}

func TestRandomGeometric(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.Build(builder.RandomGeometric(60, 0.25),
			builder.WithSeed(seed), builder.WithPaddedIDs("v", 2))
		require.NoError(t, err)
		return g
	}

	g1, g2 := build(7), build(7)
	assert.Equal(t, 60, g1.VertexCount())
	assert.Equal(t, g1.Vertices(), g2.Vertices())
	require.Equal(t, g1.EdgeCount(), g2.EdgeCount())
	e1, e2 := g1.Edges(), g2.Edges()
	for i := range e1 {
		assert.Equal(t, *e1[i], *e2[i])
	}
	assert.Positive(t, g1.EdgeCount())
	edgeLengthsFit(t, g1)

	for _, e := range g1.Edges() {
		a, _ := g1.Position(e.From)
		b, _ := g1.Position(e.To)
		d := math.Hypot(a.X-b.X, a.Y-b.Y)
		assert.LessOrEqual(t, d, 0.25)
		assert.LessOrEqual(t, e.Weight, 2*d+1e-12)
	}
}

func TestConstructorErrors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"RandomGeometric(0)", builder.RandomGeometric(0, 0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomGeometric radius 0", builder.RandomGeometric(5, 0), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidRadius},
		{"RandomGeometric radius NaN", builder.RandomGeometric(5, math.NaN()), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidRadius},
		{"RandomGeometric no rng", builder.RandomGeometric(5, 0.1), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.Build(tc.ctor, tc.opts...)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	// a negative weight surfaces as the core sentinel
	_, err := builder.Build(builder.Path(3), builder.WithWeightFn(func(*rand.Rand) float64 { return -1 }))
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestBuildGraph_Compose(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithPaddedIDs("p", 1)},
		builder.Path(3), builder.Star(3))
	require.NoError(t, err)
	// Path p0-p1-p2, Star Center-p1, Center-p2 (p1 and p2 shared)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "7", builder.DefaultIDFn(7))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "v007", builder.PaddedIDFn("v", 3)(7))

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.PaddedIDFn("v", 0) })
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))
	assert.Equal(t, 1.0, builder.UniformWeightFn(1, 3)(nil))

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(1, 3)(rng)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 3.0)
	}

	g, err := builder.Build(builder.Cycle(3), builder.WithConstantWeight(4))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, 4.0, e.Weight)
	}

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
