package incremental

import (
	"github.com/katalvlaran/spanning/graph"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AddVertex appends vertex id with the given incident edges and extends mst by
// the lightest of them (the first one on equal weights).
//
// The incident edges are appended to the graph in order, each as
// Edge{U: id, V: in.To, Weight: in.Weight}.
//
// Error Conditions:
//   - ErrInvalidGraph           : g is nil.
//   - ErrVertexID               : id != g.Order().
//   - ErrPartitionedGraph       : incident is empty and g already has vertices.
//   - graph.ErrVertexOutOfRange : some in.To is not an existing vertex.
//
// Adding the first vertex of an empty graph needs no edge: the result is the
// one-vertex graph with an empty tree.
//
// Complexity: O(k) to choose plus O(m) to copy the edge sequence.
func AddVertex[W graph.Weight](
	g *graph.Graph[W], mst []int, id int, incident []graph.Incident[W], opts ...Option,
) (*graph.Graph[W], []int, error) {
	o := resolve(opts)
	grown, out, _, err := attach(g, mst, id, incident, o)

	return grown, out, err
}

// AddVertexOptimal is AddVertex followed by an exchange step for every other
// incident edge, so the returned tree is minimal even when the new vertex
// shortcuts heavy paths of the old tree.
//
// Complexity: O(k·n) for k incident edges.
func AddVertexOptimal[W graph.Weight](
	g *graph.Graph[W], mst []int, id int, incident []graph.Incident[W], opts ...Option,
) (*graph.Graph[W], []int, error) {
	o := resolve(opts)
	grown, out, first, err := attach(g, mst, id, incident, o)
	if err != nil || len(incident) == 0 {
		return grown, out, err
	}

	chosen := out[len(out)-1]
	for k := range incident {
		idx := first + k
		if idx == chosen {
			continue
		}
		if _, err = offer(grown, out, idx, o); err != nil {
			return nil, nil, err
		}
	}

	return grown, out, nil
}

// attach grows g by one vertex and appends its lightest incident edge to a
// copy of mst. first is the index of the first incident edge in grown.
func attach[W graph.Weight](
	g *graph.Graph[W], mst []int, id int, incident []graph.Incident[W], o Options,
) (grown *graph.Graph[W], out []int, first int, err error) {
	if g == nil {
		return nil, nil, -1, ErrInvalidGraph
	}
	if id != g.Order() {
		return nil, nil, -1, errors.Wrapf(ErrVertexID, "got %d, want %d", id, g.Order())
	}
	if len(incident) == 0 && g.Order() > 0 {
		o.Logger.Debug("vertex cannot be spanned", zap.Int("vertex", id))

		return nil, nil, -1, errors.Wrapf(ErrPartitionedGraph, "vertex %d", id)
	}

	grown, _, first, err = g.WithVertex(incident)
	if err != nil {
		return nil, nil, -1, err
	}

	out = make([]int, len(mst), len(mst)+1)
	copy(out, mst)
	if len(incident) == 0 {
		return grown, out, first, nil
	}

	best := 0
	for k := 1; k < len(incident); k++ {
		if incident[k].Weight < incident[best].Weight {
			best = k
		}
	}
	out = append(out, first+best)
	o.Logger.Debug("vertex attached to spanning tree",
		zap.Int("vertex", id),
		zap.Int("edge", first+best),
		zap.String("outcome", OutcomeAttached))

	return grown, out, first, nil
}
