package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds P_n: edges (i-1, i) for i = 1..n-1, in that order.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(ErrTooFewVertices, methodPath, "n=%d < min=%d", n, minPathNodes)
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.link(i-1, i, cfg)
		}

		return nil
	}
}
