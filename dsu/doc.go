// Package dsu implements a disjoint-set forest (union-find) over the dense
// integer universe [0, n).
//
// It is the leaf dependency of Kruskal's algorithm and of the spanning-tree
// validator: both replay unions over an edge list and read the outcome of each
// merge to decide whether an edge joins two components or closes a cycle.
//
// Operations
//
//   - New(n)          — n singleton sets, one per element.
//   - Find(x)         — representative of x's set, compressing the path it walked.
//   - Union(x, y)     — merge the sets of x and y; reports whether they were distinct.
//   - Connected(x, y) — whether x and y share a representative.
//
// Guarantees
//
//   - Find is idempotent and always returns an index in [0, n).
//   - Every Union that returns true decrements Components() by exactly one.
//   - Union by rank with path compression gives O(α(n)) amortized cost per call.
//   - Equal ranks attach root(y) under root(x), so merges are deterministic.
//
// Errors
//
//   - ErrInvalidIndex — an argument lies outside [0, n).
//
// A DisjointSet is not safe for concurrent use; builders create a fresh one
// per call and never share it.
package dsu
