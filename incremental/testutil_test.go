package incremental_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanning/graph"
	"github.com/stretchr/testify/require"
)

// randomConnected returns a shuffled random spanning path plus extra random
// edges on n vertices, weights in [1, span].
func randomConnected(t *testing.T, r *rand.Rand, n, extra, span int) *graph.Graph[int] {
	t.Helper()
	perm := r.Perm(n)
	edges := make([]graph.Edge[int], 0, n-1+extra)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge[int]{U: perm[i-1], V: perm[i], Weight: 1 + r.Intn(span)})
	}
	for i := 0; i < extra; i++ {
		edges = append(edges, graph.Edge[int]{U: r.Intn(n), V: r.Intn(n), Weight: 1 + r.Intn(span)})
	}
	r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	g, err := graph.New(n, edges)
	require.NoError(t, err)

	return g
}
