package builder

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols 4-neighborhood lattice. Cell (r, c) is vertex
// r*cols + c; for each cell in row-major order the right edge is emitted
// before the bottom edge.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(ErrTooFewVertices, methodGrid, "rows=%d, cols=%d (each must be ≥ %d)",
				rows, cols, minGridDim)
		}
		d.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					d.link(u, u+1, cfg)
				}
				if r+1 < rows {
					d.link(u, u+cols, cfg)
				}
			}
		}

		return nil
	}
}
