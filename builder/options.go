package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
// Option constructors panic on meaningless input; constructors never do.
type BuilderOption func(*builderConfig)

// WithRand provides the RNG for stochastic constructors and weight functions.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the configured RNG, which may be nil. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(func(*rand.Rand) int64 { return w })
}

// WithUniformWeights draws weights uniformly from [lo, hi]. Without an RNG it
// yields lo. Panics if hi < lo or if hi-lo+1 does not fit in an int64.
func WithUniformWeights(lo, hi int64) BuilderOption {
	if hi < lo || uint64(hi)-uint64(lo) >= math.MaxInt64 {
		panic(fmt.Sprintf("builder: WithUniformWeights(%d, %d)", lo, hi))
	}
	return WithWeightFn(func(r *rand.Rand) int64 {
		if r == nil {
			return lo
		}
		return lo + r.Int63n(hi-lo+1)
	})
}
