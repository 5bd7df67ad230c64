package validate

import (
	"github.com/katalvlaran/spanning/dsu"
	"github.com/katalvlaran/spanning/graph"
	"go.uber.org/zap"
)

// Validate reports whether candidate, a list of indices into edges, is a
// minimum spanning tree of the graph on vertices [0, n).
// It never panics and never returns an error: malformed input is invalid.
func Validate[W graph.Weight](n int, edges []graph.Edge[W], candidate []int, opts ...Option) bool {
	return Inspect(n, edges, candidate, opts...).Valid
}

// ValidateGraph is Validate for an already constructed Graph. A nil graph is invalid.
func ValidateGraph[W graph.Weight](g *graph.Graph[W], candidate []int, opts ...Option) bool {
	if g == nil {
		return false
	}

	return inspect(g, candidate, resolve(opts)).Valid
}

// Inspect is Validate with the reason for a rejection.
func Inspect[W graph.Weight](n int, edges []graph.Edge[W], candidate []int, opts ...Option) Report {
	o := resolve(opts)
	g, err := graph.New(n, edges)
	if err != nil {
		// Negative n or an endpoint outside [0, n): nothing can span it.
		return reject(o, ReasonBounds, -1)
	}

	return inspect(g, candidate, o)
}

func inspect[W graph.Weight](g *graph.Graph[W], candidate []int, o Options) Report {
	n, m := g.Order(), g.Size()

	// 1. Bounds.
	for _, c := range candidate {
		if c < 0 || c >= m {
			return reject(o, ReasonBounds, c)
		}
	}

	// 2. Duplicates. The set doubles as the membership test of step 5.
	inTree := newIndexSet(m)
	for _, c := range candidate {
		if !inTree.CheckedAdd(c) {
			return reject(o, ReasonDuplicate, c)
		}
	}

	// 3. Size.
	if len(candidate) != max(n-1, 0) {
		return reject(o, ReasonSize, -1)
	}

	// 4. Spanning tree: no failed union, one component.
	set := dsu.New(n)
	for _, c := range candidate {
		e := g.Edge(c)
		merged, err := set.Union(e.U, e.V)
		if err != nil || !merged {
			return reject(o, ReasonCycle, c)
		}
	}
	if n > 0 && set.Components() != 1 {
		return reject(o, ReasonDisconnected, -1)
	}

	// 5. Cycle property over every non-candidate edge.
	tree, err := graph.NewTree(g, candidate)
	if err != nil {
		return reject(o, ReasonBounds, -1)
	}
	for i := 0; i < m; i++ {
		if inTree.Contains(i) {
			continue
		}
		e := g.Edge(i)
		heaviest, ok := tree.MaxOnPath(e.U, e.V)
		if !ok {
			// Self-loop: closes no cycle through the tree.
			continue
		}
		if e.Weight < g.Edge(heaviest).Weight {
			return reject(o, ReasonNotMinimal, i)
		}
	}

	return Report{Valid: true, Reason: ReasonNone, Edge: -1}
}

func reject(o Options, r Reason, edge int) Report {
	o.Logger.Debug("spanning tree rejected", zap.Stringer("reason", r), zap.Int("edge", edge))

	return Report{Valid: false, Reason: r, Edge: edge}
}
