package graph

import "github.com/pkg/errors"

// Order returns the number of vertices n.
func (g *Graph[W]) Order() int { return g.n }

// Size returns the number of edges m.
func (g *Graph[W]) Size() int { return len(g.edges) }

// Edge returns the edge with identity i. It panics if i is outside [0, m),
// like a slice index would.
func (g *Graph[W]) Edge(i int) Edge[W] { return g.edges[i] }

// Edges returns a copy of the edge sequence in identity order.
func (g *Graph[W]) Edges() []Edge[W] {
	out := make([]Edge[W], len(g.edges))
	copy(out, g.edges)

	return out
}

// TotalWeight sums the weights of the edges named by indices.
// It returns ErrEdgeOutOfRange for an index outside [0, m).
func (g *Graph[W]) TotalWeight(indices []int) (W, error) {
	var total W
	for _, i := range indices {
		if i < 0 || i >= len(g.edges) {
			return 0, errors.Wrapf(ErrEdgeOutOfRange, "index %d, m=%d", i, len(g.edges))
		}
		total += g.edges[i].Weight
	}

	return total, nil
}

// WithEdge returns a new Graph equal to g plus e appended at index g.Size().
// The receiver is not modified.
//
// Complexity: O(m) for the copy.
func (g *Graph[W]) WithEdge(e Edge[W]) (*Graph[W], int, error) {
	if err := checkEndpoints(g.n, e); err != nil {
		return nil, -1, err
	}

	edges := make([]Edge[W], len(g.edges), len(g.edges)+1)
	copy(edges, g.edges)
	edges = append(edges, e)

	return &Graph[W]{n: g.n, edges: edges}, len(g.edges), nil
}

// WithVertex returns a new Graph with one extra vertex, id g.Order(), joined
// to existing vertices by the given incident edges. The edges are appended in
// order; first is the index of the first of them.
//
// Every Incident.To must name an existing vertex, so a self-loop on the new
// vertex is rejected with ErrVertexOutOfRange.
func (g *Graph[W]) WithVertex(incident []Incident[W]) (grown *Graph[W], id, first int, err error) {
	id = g.n
	for _, in := range incident {
		if in.To < 0 || in.To >= g.n {
			return nil, -1, -1, errors.Wrapf(ErrVertexOutOfRange, "incident vertex %d, n=%d", in.To, g.n)
		}
	}

	edges := make([]Edge[W], len(g.edges), len(g.edges)+len(incident))
	copy(edges, g.edges)
	for _, in := range incident {
		edges = append(edges, Edge[W]{U: id, V: in.To, Weight: in.Weight})
	}

	return &Graph[W]{n: g.n + 1, edges: edges}, id, len(g.edges), nil
}
