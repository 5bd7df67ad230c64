package builder

import (
	"github.com/katalvlaran/spanning/graph"
)

// draft accumulates vertices and edges while constructors run.
type draft struct {
	n     int
	edges []graph.Edge[int64]
}

// grow raises the order to at least n.
func (d *draft) grow(n int) {
	if n > d.n {
		d.n = n
	}
}

// link appends u-v with a weight drawn from cfg.
func (d *draft) link(u, v int, cfg builderConfig) {
	d.edges = append(d.edges, graph.Edge[int64]{U: u, V: v, Weight: cfg.weightFn(cfg.rng)})
}

// Constructor adds vertices and edges to a draft. It validates its parameters
// first and returns sentinel errors; it never panics.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves bopts and applies cons in order, then freezes the result
// into a graph. A failing constructor aborts the build.
//
// Complexity: the sum of the constructors plus O(m) to copy the edges.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph[int64], error) {
	cfg := newBuilderConfig(bopts...)
	d := &draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf(ErrConstructFailed, "BuildGraph", "nil constructor at index %d", i)
		}
		if err := fn(d, cfg); err != nil {
			return nil, err
		}
	}

	g, err := graph.New(d.n, d.edges)
	if err != nil {
		return nil, builderErrorf(ErrConstructFailed, "BuildGraph", "%v", err)
	}

	return g, nil
}
