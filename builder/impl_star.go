package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds a star centered at vertex 0: edges (0, i) for i = 1..n-1.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return builderErrorf(ErrTooFewVertices, methodStar, "n=%d < min=%d", n, minStarNodes)
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.link(0, i, cfg)
		}

		return nil
	}
}
