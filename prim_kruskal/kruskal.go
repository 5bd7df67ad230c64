// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It consumes an immutable *graph.Graph and produces the MST as edge indices.
package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/spanning/dsu"
	"github.com/katalvlaran/spanning/graph"
	"github.com/pkg/errors"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : if g is nil.
//   - ErrDisconnected : if n > 1 and fewer than n-1 edges can be joined.
//
// Steps:
//  1. n ≤ 1 → trivial MST (empty).
//  2. Order edge indices by (weight, index) ascending; the index tie-break makes
//     the chosen edge set reproducible when weights repeat.
//  3. Sweep in that order, recording every edge whose union succeeds.
//  4. Stop once n-1 edges are recorded; otherwise report ErrDisconnected.
//
// Complexity: O(m log m + α(n)·m). Memory: O(n + m).
func Kruskal[W graph.Weight](g *graph.Graph[W], opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	o := resolve(opts)
	if g.Order() <= 1 {
		return built(o, MethodKruskal, g.Order(), g.Size(), []int{})
	}

	order := make([]int, g.Size())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(g.Edge(a).Weight, g.Edge(b).Weight); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	return sweep(g, order, o, MethodKruskal)
}

// sweep runs the union loop over edge indices in the given order. It is shared
// by every Kruskal variant; only the ordering step differs.
func sweep[W graph.Weight](g *graph.Graph[W], order []int, o MSTOptions, method string) ([]int, error) {
	n := g.Order()
	set := dsu.New(n)
	mst := make([]int, 0, n-1)
	for _, i := range order {
		e := g.Edge(i)
		merged, err := set.Union(e.U, e.V)
		if err != nil {
			return nil, errors.WithMessagef(err, "%s: edge %d", method, i)
		}
		if !merged {
			// Self-loop or both endpoints already joined: this edge closes a cycle.
			continue
		}
		mst = append(mst, i)
		if len(mst) == n-1 {
			return built(o, method, n, g.Size(), mst)
		}
	}

	return nil, disconnected(o, method, n, len(mst))
}
