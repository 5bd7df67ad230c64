package validate_test

import (
	"math/rand"

	"github.com/katalvlaran/spanning/graph"
)

// randomConnectedEdges returns a random spanning path plus extra random edges
// (self-loops and parallels allowed) with weights in [1, span], shuffled.
func randomConnectedEdges(r *rand.Rand, n, extra, span int) []graph.Edge[int] {
	perm := r.Perm(n)
	edges := make([]graph.Edge[int], 0, n-1+extra)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge[int]{U: perm[i-1], V: perm[i], Weight: 1 + r.Intn(span)})
	}
	for i := 0; i < extra; i++ {
		edges = append(edges, graph.Edge[int]{U: r.Intn(n), V: r.Intn(n), Weight: 1 + r.Intn(span)})
	}
	r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })

	return edges
}

// subsets enumerates all k-element index subsets of [0, m) in lexicographic order.
func subsets(m, k int) [][]int {
	var out [][]int
	cur := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(cur) == k {
			out = append(out, append([]int{}, cur...))
			return
		}
		for i := start; i < m; i++ {
			cur = append(cur, i)
			rec(i + 1)
			cur = cur[:len(cur)-1]
		}
	}
	rec(0)

	return out
}

// bruteForce returns the minimum spanning-tree weight over all (n-1)-subsets
// and a classifier reporting (total, isSpanningTree) for any subset.
func bruteForce(n int, edges []graph.Edge[int]) (int, func([]int) (int, bool)) {
	classify := func(sub []int) (int, bool) {
		label := make([]int, n)
		for i := range label {
			label[i] = i
		}
		total := 0
		for _, i := range sub {
			e := edges[i]
			a, b := label[e.U], label[e.V]
			if a == b {
				return 0, false
			}
			for v := range label {
				if label[v] == b {
					label[v] = a
				}
			}
			total += e.Weight
		}

		return total, true
	}

	best, found := 0, false
	for _, sub := range subsets(len(edges), n-1) {
		if total, ok := classify(sub); ok && (!found || total < best) {
			best, found = total, true
		}
	}

	return best, classify
}
