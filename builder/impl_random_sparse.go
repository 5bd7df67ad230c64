package builder

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse includes each pair (i, j), i < j, independently with
// probability p. Pairs are tried in lexicographic order, so the result is
// fixed for a given seed. The RNG is required only for 0 < p < 1.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return builderErrorf(ErrTooFewVertices, methodRandomSparse, "n=%d < min=%d", n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return builderErrorf(ErrInvalidProbability, methodRandomSparse, "p=%.6f not in [%.1f,%.1f]",
				p, probMin, probMax)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(ErrNeedRandSource, methodRandomSparse, "p=%.6f", p)
		}

		d.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax, cfg.rng.Float64() < p:
					d.link(i, j, cfg)
				}
			}
		}

		return nil
	}
}
