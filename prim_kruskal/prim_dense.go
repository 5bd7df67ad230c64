package prim_kruskal

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/spanning/graph"
)

// PrimDense computes the MST of g with the O(n²) array-scan variant of Prim's
// algorithm, rooted at vertex 0.
//
// key[v] holds the lightest known edge weight joining v to the tree and
// conn[v] that edge's index. A vertex whose key is still +∞ is simply not in
// the reached set, so no sentinel weight is needed for integer kinds.
//
// Each of the n rounds scans for the unsettled reached vertex of minimum key,
// keeping the first minimum under a strict < (smallest index wins ties). If no
// reached vertex remains, the graph is disconnected.
//
// Complexity: O(n² + m) time, O(n + m) memory.
func PrimDense[W graph.Weight](g *graph.Graph[W], opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	o := resolve(opts)
	n := g.Order()
	if n <= 1 {
		return built(o, MethodPrimDense, n, g.Size(), []int{})
	}

	adj := g.Adjacency()
	key := make([]W, n)
	conn := make([]int, n)
	for v := range conn {
		conn[v] = noEdge
	}
	reached := bitset.New(uint(n))
	settled := bitset.New(uint(n))
	reached.Set(0)

	mst := make([]int, 0, n-1)
	for round := 0; round < n; round++ {
		// (a) Linear scan for the cheapest frontier vertex.
		u := -1
		for v := 0; v < n; v++ {
			if settled.Test(uint(v)) || !reached.Test(uint(v)) {
				continue
			}
			if u < 0 || key[v] < key[u] {
				u = v
			}
		}
		if u < 0 {
			return nil, disconnected(o, MethodPrimDense, n, len(mst))
		}

		// (b) Settle it.
		settled.Set(uint(u))
		if conn[u] != noEdge {
			mst = append(mst, conn[u])
		}

		// (c) Relax its incident edges.
		for _, a := range adj[u] {
			if settled.Test(uint(a.To)) {
				continue
			}
			if !reached.Test(uint(a.To)) || a.Weight < key[a.To] {
				reached.Set(uint(a.To))
				key[a.To] = a.Weight
				conn[a.To] = a.Index
			}
		}
	}

	return built(o, MethodPrimDense, n, g.Size(), mst)
}
