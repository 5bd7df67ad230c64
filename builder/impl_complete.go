package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds K_n, emitting each pair (i, j) with i < j once in
// lexicographic order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return builderErrorf(ErrTooFewVertices, methodComplete, "n=%d < min=%d", n, minCompleteNodes)
		}
		d.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.link(i, j, cfg)
			}
		}

		return nil
	}
}
