package builder

import "math/rand"

// DefaultEdgeWeight is used when no weight function is configured.
const DefaultEdgeWeight int64 = 1

// builderConfig holds every knob resolved from BuilderOption values.
// It is passed by value to constructors.
type builderConfig struct {
	// rng is nil unless WithSeed or WithRand was given.
	rng *rand.Rand
	// weightFn draws one edge weight.
	weightFn func(*rand.Rand) int64
}

// newBuilderConfig applies opts in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(*rand.Rand) int64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
