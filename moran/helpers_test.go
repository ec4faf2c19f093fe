package moran_test

// Test fixtures. The library consumes weights as supplied and never builds
// them, so the contiguity matrices used across the tests are constructed
// here: binary rook (up/down/left/right) and queen (rook + diagonals)
// neighborhoods over an R×C grid, row-major indexed, zero diagonal, no
// wraparound.

// rookWeights returns the N×N binary 4-neighbor contiguity matrix for an
// R×C grid, N = rows*cols.
func rookWeights(rows, cols int) [][]float64 {
	return contiguity(rows, cols, [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}})
}

// queenWeights returns the N×N binary 8-neighbor contiguity matrix for an
// R×C grid, N = rows*cols.
func queenWeights(rows, cols int) [][]float64 {
	return contiguity(rows, cols, [][2]int{
		{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	})
}

// contiguity materializes a binary contiguity matrix from neighbor offsets.
func contiguity(rows, cols int, offsets [][2]int) [][]float64 {
	n := rows * cols
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c // row-major cell index
			for _, d := range offsets {
				rr, cc := r+d[0], c+d[1]
				if rr < 0 || rr >= rows || cc < 0 || cc >= cols {
					continue
				}
				w[i][rr*cols+cc] = 1
			}
		}
	}

	return w
}

// checkerboard returns an R×C grid alternating between hi and lo.
func checkerboard(rows, cols int, hi, lo float64) [][]float64 {
	g := make([][]float64, rows)
	for r := range g {
		g[r] = make([]float64, cols)
		for c := range g[r] {
			if (r+c)%2 == 0 {
				g[r][c] = hi
			} else {
				g[r][c] = lo
			}
		}
	}

	return g
}

// rampGrid returns an R×C grid with a smooth deterministic value surface,
// distinct enough that no two reorderings of it are trivially symmetric.
func rampGrid(rows, cols int) [][]float64 {
	g := make([][]float64, rows)
	for r := range g {
		g[r] = make([]float64, cols)
		for c := range g[r] {
			i := r*cols + c
			g[r][c] = float64(i*i%13) + 0.25*float64(i)
		}
	}

	return g
}

// scaleGrid returns a copy of g with every cell multiplied by f.
func scaleGrid(g [][]float64, f float64) [][]float64 {
	out := make([][]float64, len(g))
	for r := range g {
		out[r] = make([]float64, len(g[r]))
		for c := range g[r] {
			out[r][c] = g[r][c] * f
		}
	}

	return out
}
