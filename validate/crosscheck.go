package validate

import (
	"context"
	"slices"

	"github.com/katalvlaran/spanning/graph"
	"github.com/katalvlaran/spanning/prim_kruskal"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// crossMethods are the builders compared by CrossCheck.
var crossMethods = []string{
	prim_kruskal.MethodKruskal,
	prim_kruskal.MethodPrimDense,
	prim_kruskal.MethodPrimSparse,
}

// CrossCheck builds the MST of g with every generic builder concurrently,
// validates each result and returns the common total weight.
//
// The builders share nothing but the immutable graph. The first failure
// cancels the others through ctx.
//
// Errors:
//   - prim_kruskal.ErrInvalidGraph if g is nil.
//   - any builder error (typically prim_kruskal.ErrDisconnected).
//   - ErrRejected if the validator refuses a builder's tree.
//   - ErrWeightMismatch if two valid trees differ in total weight.
//   - ctx.Err() if ctx is done before a builder starts.
func CrossCheck[W graph.Weight](ctx context.Context, g *graph.Graph[W], opts ...Option) (W, error) {
	if g == nil {
		return 0, prim_kruskal.ErrInvalidGraph
	}
	o := resolve(opts)

	totals := make([]W, len(crossMethods))
	eg, ctx := errgroup.WithContext(ctx)
	for i, method := range crossMethods {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mst, err := prim_kruskal.Compute(g,
				prim_kruskal.WithMethod(method),
				prim_kruskal.WithLogger(o.Logger))
			if err != nil {
				return err
			}
			if r := inspect(g, mst, o); !r.Valid {
				return errors.Wrapf(ErrRejected, "%s: %s at edge %d", method, r.Reason, r.Edge)
			}
			totals[i] = canonicalTotal(g, mst)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	for i := 1; i < len(totals); i++ {
		if totals[i] != totals[0] {
			o.Logger.Debug("builders disagree",
				zap.String("method", crossMethods[i]),
				zap.Any("total", totals[i]),
				zap.Any("reference", totals[0]))

			return 0, errors.Wrapf(ErrWeightMismatch, "%s vs %s", crossMethods[i], crossMethods[0])
		}
	}

	return totals[0], nil
}

// canonicalTotal sums the tree weights in ascending order. Every MST of a
// graph has the same sorted weight list, so the float sum is bit-identical
// across builders regardless of the order they emitted edges in.
func canonicalTotal[W graph.Weight](g *graph.Graph[W], mst []int) W {
	ws := make([]W, len(mst))
	for k, i := range mst {
		ws[k] = g.Edge(i).Weight
	}
	slices.Sort(ws)

	var total W
	for _, w := range ws {
		total += w
	}

	return total
}
