package graph

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
)

// Tree is the adjacency projection of a subset of a Graph's edges.
// It is normally built from a spanning tree, where the path between any two
// vertices is unique; on a forest, Path reports vertices in different
// components as unreachable.
type Tree[W Weight] struct {
	g   *Graph[W]
	adj [][]Arc[W]
}

// NewTree projects the edges named by indices.
// It returns ErrEdgeOutOfRange if an index lies outside [0, m).
// Complexity: O(n + len(indices)).
func NewTree[W Weight](g *Graph[W], indices []int) (*Tree[W], error) {
	for _, i := range indices {
		if i < 0 || i >= len(g.edges) {
			return nil, errors.Wrapf(ErrEdgeOutOfRange, "index %d, m=%d", i, len(g.edges))
		}
	}
	if indices == nil {
		indices = []int{}
	}

	return &Tree[W]{g: g, adj: project(g.n, g.edges, indices)}, nil
}

// Arcs returns the tree arcs leaving v. The slice must not be modified.
func (t *Tree[W]) Arcs(v int) []Arc[W] { return t.adj[v] }

// Path returns the edge indices on the tree path between u and v, listed from
// v back to u. ok is false if u or v is out of range or the two are not
// connected. The path from a vertex to itself is empty.
//
// Steps:
//  1. Depth-first search from u with an explicit stack, recording for each
//     discovered vertex the vertex and the edge it was reached through.
//  2. Stop as soon as v is popped.
//  3. Follow the parent pointers from v to u.
//
// Complexity: O(n) time and memory on a tree.
func (t *Tree[W]) Path(u, v int) ([]int, bool) {
	n := len(t.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return nil, false
	}
	if u == v {
		return []int{}, true
	}

	visited := bitset.New(uint(n))
	parent := make([]int, n)
	via := make([]int, n)
	visited.Set(uint(u))
	parent[u] = -1

	stack := arraystack.New()
	stack.Push(u)
	found := false
	for !stack.Empty() {
		top, _ := stack.Pop()
		x := top.(int)
		if x == v {
			found = true
			break
		}
		for _, a := range t.adj[x] {
			if visited.Test(uint(a.To)) {
				continue
			}
			visited.Set(uint(a.To))
			parent[a.To] = x
			via[a.To] = a.Index
			stack.Push(a.To)
		}
	}
	if !found {
		return nil, false
	}

	var path []int
	for x := v; x != u; x = parent[x] {
		path = append(path, via[x])
	}

	return path, true
}

// MaxOnPath returns the index of the heaviest edge on the tree path between u
// and v. When several edges share the maximum weight, the one closest to v
// wins. ok is false when the path is empty or does not exist.
func (t *Tree[W]) MaxOnPath(u, v int) (int, bool) {
	path, ok := t.Path(u, v)
	if !ok || len(path) == 0 {
		return -1, false
	}

	best := path[0]
	for _, i := range path[1:] {
		if t.g.edges[i].Weight > t.g.edges[best].Weight {
			best = i
		}
	}

	return best, true
}
