package incremental

import (
	"github.com/katalvlaran/spanning/graph"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AddEdge inserts e into g and updates mst, a minimum spanning tree of g given
// as edge indices. The new edge receives index g.Size() in the returned graph.
//
// Error Conditions:
//   - ErrInvalidGraph           : g is nil.
//   - graph.ErrVertexOutOfRange : an endpoint of e is outside [0, n).
//   - graph.ErrEdgeOutOfRange   : mst names an edge g does not have.
//   - ErrNotSpanning            : mst does not connect e.U and e.V.
//
// Complexity: O(n) for the tree walk plus O(m) to copy the edge sequence.
func AddEdge[W graph.Weight](g *graph.Graph[W], mst []int, e graph.Edge[W], opts ...Option) (*graph.Graph[W], []int, error) {
	if g == nil {
		return nil, nil, ErrInvalidGraph
	}
	o := resolve(opts)
	for _, i := range mst {
		if i < 0 || i >= g.Size() {
			return nil, nil, errors.Wrapf(graph.ErrEdgeOutOfRange, "tree edge %d, m=%d", i, g.Size())
		}
	}

	grown, idx, err := g.WithEdge(e)
	if err != nil {
		return nil, nil, err
	}
	out := make([]int, len(mst))
	copy(out, mst)

	if _, err = offer(grown, out, idx, o); err != nil {
		return nil, nil, err
	}

	return grown, out, nil
}

// offer applies the cycle-property exchange for edge idx of g against the
// spanning tree mst (indices into g, idx not among them), rewriting mst in
// place when the edge enters the tree.
func offer[W graph.Weight](g *graph.Graph[W], mst []int, idx int, o Options) (string, error) {
	e := g.Edge(idx)
	if e.U == e.V {
		o.Logger.Debug("edge offered to spanning tree",
			zap.Int("edge", idx), zap.String("outcome", OutcomeRedundant))

		return OutcomeRedundant, nil
	}

	tree, err := graph.NewTree(g, mst)
	if err != nil {
		return "", err
	}
	heaviest, ok := tree.MaxOnPath(e.U, e.V)
	if !ok {
		return "", errors.Wrapf(ErrNotSpanning, "edge %d (%d,%d)", idx, e.U, e.V)
	}

	outcome := OutcomeRedundant
	switch w := g.Edge(heaviest).Weight; {
	case e.Weight < w:
		for k, i := range mst {
			if i == heaviest {
				mst[k] = idx
				break
			}
		}
		outcome = OutcomeExchanged
	case e.Weight == w:
		outcome = OutcomeTie
	}
	o.Logger.Debug("edge offered to spanning tree",
		zap.Int("edge", idx),
		zap.Int("pathMax", heaviest),
		zap.String("outcome", outcome))

	return outcome, nil
}
