// Package prim_kruskal provides the spanning-tree builders of this module:
// Kruskal’s algorithm and Prim’s algorithm in a dense and a sparse form, plus
// two integer-weight variants that trade the comparison sort or the heap for buckets.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why several builders?
//     They reach the same optimum along different routes. Under repeated weights they may choose
//     different edge sets, but the total weight is unique, which makes them cross-checks of one another
//     (see package validate).
//
// Algorithms Provided
//
//   - Kruskal(g) ([]int, error)
//     Sort edge indices by (weight, index), sweep with a union-find, stop at n-1 edges.
//     Time O(m log m). The index tie-break makes the output reproducible.
//
//   - PrimDense(g) ([]int, error)
//     Array-scan Prim from vertex 0. Time O(n²+m); the right choice when m ≈ n².
//
//   - PrimSparse(g) ([]int, error)
//     Heap Prim from vertex 0 with lazy deletion (stale entries are dropped on pop).
//     Time O(m log n).
//
//   - KruskalCounting(g), PrimBucket(g)
//     Integer weights only. Counting sort / bucket queue over [min, max].
//     Time O(m + W) for W = max-min+1 ≤ MaxBuckets.
//
// Output
//
//	Every builder returns the MST as indices into g's edge sequence: identity is position,
//	so parallel edges with the same endpoints and weight stay distinguishable. A graph with
//	at most one vertex yields an empty tree.
//
// Error Conditions
//
//   - ErrInvalidGraph  — g is nil.
//   - ErrDisconnected  — fewer than n-1 edges can be joined. No partial forest is ever returned;
//     callers decide whether to repair the input or try something else.
//   - ErrWeightRange   — integer builders only: the weight span exceeds MaxBuckets.
//   - ErrUnknownMethod — Compute with an unrecognized Method.
//
// Every call is a pure function of its graph: all working state (union-find, heap, key arrays)
// is allocated per call, so independent graphs may be processed from many goroutines at once.
package prim_kruskal
