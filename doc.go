// Package spanning is an in-memory engine for minimum spanning trees of
// undirected weighted graphs: build them, verify them, and keep them minimal
// while the graph grows.
//
// The module is organized as small packages with one concern each:
//
//	dsu/          — disjoint-set union with path compression and union by rank
//	graph/        — immutable edge-sequence Graph, adjacency and tree projections
//	prim_kruskal/ — Kruskal, dense and sparse Prim, counting/bucket variants for integer weights
//	validate/     — spanning-tree and cut/cycle-property oracle, parallel cross-check
//	incremental/  — vertex and edge insertion without a rebuild
//	builder/      — deterministic and seeded graph fixtures
//
// A spanning tree is always a slice of edge indices into the graph's edge
// sequence; an edge's identity is its position, so parallel edges and
// self-loops are distinct and legal.
//
// Quick start:
//
//	g, _ := graph.New(4, []graph.Edge[int]{{0, 1, 1}, {1, 2, 10}, {2, 3, 1}})
//	mst, _ := prim_kruskal.Kruskal(g)                                  // [0 1 2]
//	g, mst, _ = incremental.AddEdge(g, mst, graph.Edge[int]{U: 0, V: 3, Weight: 5})
//	ok := validate.ValidateGraph(g, mst)                               // true, mst = [0 3 2]
//
// Every package accepts a *zap.Logger through WithLogger and stays silent
// by default. Errors are package-prefixed sentinels; match them with
// errors.Is.
package spanning
