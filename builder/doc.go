// Package builder assembles deterministic graph fixtures for the spanning
// packages: paths, cycles, stars, complete graphs, grids and seeded random
// graphs, all as *graph.Graph[int64].
//
// Constructors are composed with BuildGraph and overlay one vertex set: every
// constructor grows the order to what it needs and appends its edges in a
// fixed, documented order, so edge indices are reproducible.
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeights(1, 100)},
//		builder.RandomTree(1000),
//		builder.RandomSparse(1000, 0.01),
//	)
//
// Determinism: equal options, seed and constructor order give identical
// graphs. Stochastic constructors return ErrNeedRandSource without a seed.
//
// Weights come from the configured weight function, DefaultEdgeWeight when
// none is set. Self-loops are never emitted.
package builder
