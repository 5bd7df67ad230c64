package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds C_n: the path 0..n-1 followed by the closing edge (n-1, 0).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(ErrTooFewVertices, methodCycle, "n=%d < min=%d", n, minCycleNodes)
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.link(i-1, i, cfg)
		}
		d.link(n-1, 0, cfg)

		return nil
	}
}
