package validate_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/spanning/graph"
	"github.com/katalvlaran/spanning/prim_kruskal"
	"github.com/katalvlaran/spanning/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossCheck_Agrees(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		n := 2 + r.Intn(50)
		g, err := graph.New(n, randomConnectedEdges(r, n, r.Intn(5*n), 1+r.Intn(6)))
		require.NoError(t, err)

		total, err := validate.CrossCheck(context.Background(), g)
		require.NoError(t, err)

		mst, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)
		want, err := g.TotalWeight(mst)
		require.NoError(t, err)
		assert.Equal(t, want, total)
	}
}

// TestCrossCheck_FloatTies uses weights whose sums depend on addition order.
func TestCrossCheck_FloatTies(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	weights := []float64{0.1, 0.2, 0.3, 1e16, -1e16}
	const n = 40
	edges := make([]graph.Edge[float64], 0, 4*n)
	for v := 1; v < n; v++ {
		edges = append(edges, graph.Edge[float64]{U: v - 1, V: v, Weight: weights[r.Intn(len(weights))]})
	}
	for i := 0; i < 3*n; i++ {
		edges = append(edges, graph.Edge[float64]{U: r.Intn(n), V: r.Intn(n), Weight: weights[r.Intn(len(weights))]})
	}
	g, err := graph.New(n, edges)
	require.NoError(t, err)

	_, err = validate.CrossCheck(context.Background(), g)
	assert.NoError(t, err)
}

func TestCrossCheck_Errors(t *testing.T) {
	_, err := validate.CrossCheck[int](context.Background(), nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	disc, err := graph.New(4, []graph.Edge[int]{{0, 1, 1}, {2, 3, 1}})
	require.NoError(t, err)
	_, err = validate.CrossCheck(context.Background(), disc)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := graph.New(2, []graph.Edge[int]{{0, 1, 1}})
	require.NoError(t, err)
	_, err = validate.CrossCheck(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCrossCheck_ConcurrentCallers runs independent certifications in parallel;
// no state is shared between calls.
func TestCrossCheck_ConcurrentCallers(t *testing.T) {
	const callers = 16
	graphs := make([]*graph.Graph[int], callers)
	r := rand.New(rand.NewSource(42))
	for i := range graphs {
		n := 10 + r.Intn(40)
		g, err := graph.New(n, randomConnectedEdges(r, n, 3*n, 9))
		require.NoError(t, err)
		graphs[i] = g
	}

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := range graphs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = validate.CrossCheck(context.Background(), graphs[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "caller %d", i)
	}
}
