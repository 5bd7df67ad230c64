package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanning/graph"
	"github.com/stretchr/testify/require"
)

// randomConnected builds a connected graph on n vertices: a random spanning
// path first, then extra random edges (self-loops and parallels allowed).
// Weights are drawn from [lo, lo+span).
func randomConnected(t testing.TB, r *rand.Rand, n, extra, lo, span int) *graph.Graph[int] {
	t.Helper()
	perm := r.Perm(n)
	edges := make([]graph.Edge[int], 0, n-1+extra)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge[int]{U: perm[i-1], V: perm[i], Weight: lo + r.Intn(span)})
	}
	for i := 0; i < extra; i++ {
		edges = append(edges, graph.Edge[int]{U: r.Intn(n), V: r.Intn(n), Weight: lo + r.Intn(span)})
	}
	// Shuffle so the spanning path is not a prefix of the sequence.
	r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	g, err := graph.New(n, edges)
	require.NoError(t, err)

	return g
}

func mustGraph[W graph.Weight](t testing.TB, n int, edges []graph.Edge[W]) *graph.Graph[W] {
	t.Helper()
	g, err := graph.New(n, edges)
	require.NoError(t, err)

	return g
}

func totalOf[W graph.Weight](t testing.TB, g *graph.Graph[W], mst []int) W {
	t.Helper()
	w, err := g.TotalWeight(mst)
	require.NoError(t, err)

	return w
}

// spans reports whether mst joins all n vertices without a cycle.
func spans[W graph.Weight](g *graph.Graph[W], mst []int) bool {
	n := g.Order()
	if len(mst) != max(n-1, 0) {
		return false
	}
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	for _, i := range mst {
		e := g.Edge(i)
		a, b := label[e.U], label[e.V]
		if a == b {
			return false
		}
		for v := range label {
			if label[v] == b {
				label[v] = a
			}
		}
	}

	return true
}
