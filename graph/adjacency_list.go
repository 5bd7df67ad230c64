package graph

// Adjacency projects the edge sequence onto per-vertex arc lists.
//
// Every edge (u, v, w) at index i contributes Arc{v, w, i} to adj[u] and
// Arc{u, w, i} to adj[v]; a self-loop contributes a single arc. Arcs appear in
// edge-index order within each list.
//
// Complexity: O(n + m) time and memory.
func (g *Graph[W]) Adjacency() [][]Arc[W] {
	return project(g.n, g.edges, nil)
}

// project builds adjacency lists for the edges named by subset, or for all
// edges when subset is nil. Indices must already be in range.
func project[W Weight](n int, edges []Edge[W], subset []int) [][]Arc[W] {
	adj := make([][]Arc[W], n)
	add := func(i int) {
		e := edges[i]
		adj[e.U] = append(adj[e.U], Arc[W]{To: e.V, Weight: e.Weight, Index: i})
		if e.U != e.V {
			adj[e.V] = append(adj[e.V], Arc[W]{To: e.U, Weight: e.Weight, Index: i})
		}
	}

	if subset == nil {
		for i := range edges {
			add(i)
		}

		return adj
	}
	for _, i := range subset {
		add(i)
	}

	return adj
}
