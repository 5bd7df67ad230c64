package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanning/builder"
	"github.com/katalvlaran/spanning/graph"
	"github.com/katalvlaran/spanning/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Topology checks order, size and the leading edges of each
// deterministic constructor.
func TestBuilders_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantN int
		wantM int
		head  []graph.Edge[int64]
	}{
		{"Path(4)", builder.Path(4), 4, 3, []graph.Edge[int64]{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}}},
		{"Cycle(4)", builder.Cycle(4), 4, 4, []graph.Edge[int64]{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1}}},
		{"Star(4)", builder.Star(4), 4, 3, []graph.Edge[int64]{{0, 1, 1}, {0, 2, 1}, {0, 3, 1}}},
		{"Complete(4)", builder.Complete(4), 4, 6, []graph.Edge[int64]{{0, 1, 1}, {0, 2, 1}, {0, 3, 1}, {1, 2, 1}}},
		{"Complete(1)", builder.Complete(1), 1, 0, nil},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 7, []graph.Edge[int64]{{0, 1, 1}, {0, 3, 1}, {1, 2, 1}, {1, 4, 1}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantN, g.Order())
			assert.Equal(t, tc.wantM, g.Size())
			for i, e := range tc.head {
				assert.Equal(t, e, g.Edge(i), "edge %d", i)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse p>1", builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"RandomTree no rng", builder.RandomTree(5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

// TestRandomSparse_Extremes: p = 0 and p = 1 need no RNG.
func TestRandomSparse_Extremes(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Size())

	g, err = builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, g.Size())
}

// TestRandomTree_Connected: a random tree spans, and equal seeds agree.
func TestRandomTree_Connected(t *testing.T) {
	t.Parallel()

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeights(1, 9)}
	g1, err := builder.BuildGraph(opts, builder.RandomTree(200), builder.RandomSparse(200, 0.02))
	require.NoError(t, err)

	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeights(1, 9)}
	g2, err := builder.BuildGraph(opts, builder.RandomTree(200), builder.RandomSparse(200, 0.02))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges())

	mst, err := prim_kruskal.Kruskal(g1)
	require.NoError(t, err)
	assert.Len(t, mst, 199)
	for _, e := range g1.Edges() {
		assert.NotEqual(t, e.U, e.V)
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(7)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge[int64]{{0, 1, 7}, {1, 2, 7}}, g.Edges())

	// Without an RNG the uniform generator falls back to its lower bound.
	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithUniformWeights(3, 5)}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), g.Edge(1).Weight)

	g, err = builder.BuildGraph(
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(1))), builder.WithUniformWeights(4, 4)},
		builder.Cycle(3))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, int64(4), e.Weight)
	}

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithUniformWeights(5, 4) })
}

// TestWithUniformWeights_FullRange: spans whose size overflows int64 are
// rejected up front; the widest valid span still draws in range.
func TestWithUniformWeights_FullRange(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithUniformWeights(math.MinInt64, math.MaxInt64) })
	assert.Panics(t, func() { builder.WithUniformWeights(0, math.MaxInt64) })
	assert.Panics(t, func() { builder.WithUniformWeights(-1, math.MaxInt64-1) })

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeights(1, math.MaxInt64)},
		builder.Path(50),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
	}
}
