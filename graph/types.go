package graph

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Sentinel errors for graph construction and growth.
var (
	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("graph: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrEdgeOutOfRange indicates an edge index outside [0, m).
	ErrEdgeOutOfRange = errors.New("graph: edge index out of range")
)

// Weight is the set of numeric kinds usable as edge weights.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Edge is an undirected weighted edge between vertices U and V.
// Its identity is its index in the owning Graph, not its value.
type Edge[W Weight] struct {
	U, V   int
	Weight W
}

// Arc is one direction of an edge as seen from an adjacency list.
// Index is the position of the underlying edge in the Graph.
type Arc[W Weight] struct {
	To     int
	Weight W
	Index  int
}

// Incident describes an edge from a vertex that is about to be added
// to an existing vertex To.
type Incident[W Weight] struct {
	To     int
	Weight W
}

// Graph is an immutable weighted undirected multigraph on vertices [0, n).
type Graph[W Weight] struct {
	n     int
	edges []Edge[W]
}

// New builds a Graph with n vertices and a private copy of edges.
//
// Errors:
//   - ErrNegativeOrder    if n < 0.
//   - ErrVertexOutOfRange if some endpoint lies outside [0, n).
//
// Complexity: O(m).
func New[W Weight](n int, edges []Edge[W]) (*Graph[W], error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeOrder, "n=%d", n)
	}
	for i, e := range edges {
		if err := checkEndpoints(n, e); err != nil {
			return nil, errors.WithMessagef(err, "edge %d", i)
		}
	}

	owned := make([]Edge[W], len(edges))
	copy(owned, edges)

	return &Graph[W]{n: n, edges: owned}, nil
}

func checkEndpoints[W Weight](n int, e Edge[W]) error {
	if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
		return errors.Wrapf(ErrVertexOutOfRange, "(%d,%d) with n=%d", e.U, e.V, n)
	}

	return nil
}
