// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from vertex 0 using a min‐heap with lazy deletion.
package prim_kruskal

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/spanning/graph"
	"github.com/zyedidia/generic/heap"
)

// noEdge marks the sentinel queue entry that seeds the root.
const noEdge = -1

// candidate is one queue entry: vertex reachable through edge at the given weight.
type candidate[W graph.Weight] struct {
	weight W
	vertex int
	edge   int
}

// lessCandidate orders by weight, then by edge index so equal weights pop in
// input order. The root sentinel (edge -1) sorts first among its weight.
func lessCandidate[W graph.Weight](a, b candidate[W]) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}

	return a.edge < b.edge
}

// PrimSparse computes the MST of g by growing outwards from vertex 0 using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph : if g is nil.
//   - ErrDisconnected : if the queue empties before n-1 edges are collected.
//
// Steps:
//  1. n ≤ 1 → trivial MST (empty).
//  2. Project g onto adjacency lists of (neighbor, weight, edge index).
//  3. Seed the heap with the sentinel (0, root=0, no edge).
//  4. Pop the minimum. If its vertex is settled the entry is stale: drop it.
//     Otherwise settle the vertex, record its edge (unless sentinel) and push
//     every incident edge towards an unsettled neighbor, unconditionally.
//  5. Stop at n-1 edges; an empty queue before that means ErrDisconnected.
//
// Lazy deletion trades heap size (up to O(m) entries) for the absence of a
// decrease-key operation.
//
// Complexity: O(m log m) = O(m log n) time, O(n + m) memory.
func PrimSparse[W graph.Weight](g *graph.Graph[W], opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	o := resolve(opts)
	n := g.Order()
	if n <= 1 {
		return built(o, MethodPrimSparse, n, g.Size(), []int{})
	}

	adj := g.Adjacency()
	settled := bitset.New(uint(n))
	mst := make([]int, 0, n-1)

	pq := heap.New[candidate[W]](lessCandidate[W])
	pq.Push(candidate[W]{vertex: 0, edge: noEdge})

	for len(mst) < n-1 {
		c, ok := pq.Pop()
		if !ok {
			return nil, disconnected(o, MethodPrimSparse, n, len(mst))
		}
		if settled.Test(uint(c.vertex)) {
			continue
		}
		settled.Set(uint(c.vertex))
		if c.edge != noEdge {
			mst = append(mst, c.edge)
		}
		for _, a := range adj[c.vertex] {
			if !settled.Test(uint(a.To)) {
				pq.Push(candidate[W]{weight: a.Weight, vertex: a.To, edge: a.Index})
			}
		}
	}

	return built(o, MethodPrimSparse, n, g.Size(), mst)
}
