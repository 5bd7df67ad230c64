package builder

const (
	methodRandomTree   = "RandomTree"
	minRandomTreeNodes = 1
)

// RandomTree builds a uniformly shuffled random recursive tree on n vertices:
// vertices are visited in a random order and each one after the first links
// to a random earlier one. Layered under other constructors it guarantees a
// connected graph.
// Complexity: O(n).
func RandomTree(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomTreeNodes {
			return builderErrorf(ErrTooFewVertices, methodRandomTree, "n=%d < min=%d", n, minRandomTreeNodes)
		}
		if cfg.rng == nil {
			return builderErrorf(ErrNeedRandSource, methodRandomTree, "n=%d", n)
		}

		d.grow(n)
		order := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			d.link(order[cfg.rng.Intn(i)], order[i], cfg)
		}

		return nil
	}
}
