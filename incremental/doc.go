// Package incremental updates a minimum spanning tree after a single insertion
// without rebuilding it.
//
// Both operations take a (Graph, MST) pair that has already been validated and
// return a new pair; neither input is modified, so the old pair stays usable.
//
// AddEdge(g, mst, e)
//
//	Appends e at index g.Size(). In the old tree, e's endpoints are joined by a
//	unique path; let e* be its heaviest edge. If weight(e) < weight(e*), e*
//	leaves the tree and e takes its slot. On equal weight the incumbent stays,
//	and a heavier e is redundant. O(n) for the path search.
//
// AddVertex(g, mst, id, incident)
//
//	Appends vertex id (which must equal g.Order()) and its incident edges, then
//	adds the lightest incident edge to the tree. With no incident edges the new
//	vertex cannot be spanned and ErrPartitionedGraph is returned.
//
// AddVertexOptimal(g, mst, id, incident)
//
//	AddVertex followed by an AddEdge-style exchange for every other incident edge.
//	A new vertex can offer a shortcut between two old vertices that is cheaper than
//	the old tree path; AddVertex alone keeps the old tree and therefore may stop
//	being minimal in that case, while AddVertexOptimal does not. O(k·n) for k
//	incident edges.
package incremental
