// Package moran computes global Moran's I, the classical measure of
// spatial autocorrelation, over a numeric observation matrix and a
// caller-supplied spatial-weights matrix.
//
// 🚀 What is Moran's I?
//
//	Moran's I asks one question about gridded data: do similar values sit
//	next to each other?  It is widely used in:
//	  • Spatial ecology & epidemiology (hot-spot / cluster detection)
//	  • Geostatistics & remote sensing (patchiness of rasters)
//	  • Economics & demography (regional spillover effects)
//	  • Image analysis (texture vs. noise discrimination)
//
//	Interpretation: I → +1 means clustering (highs near highs), I → −1
//	means alternation (highs near lows), and values near −1/(N−1) mean no
//	spatial structure.
//
// ✨ Key features:
//   - one call: MoransI(values, weights, opts) → scalar
//   - row-major flattening convention, documented and test-pinned
//   - weights used exactly as supplied — no standardization, no symmetry
//     requirement, no hidden contiguity construction
//   - explicit sentinel errors for every degenerate case — never a silent NaN
//   - optional multi-core accumulation for large grids (Parallel=true)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/spatial/matrix"
//	  "github.com/katalvlaran/spatial/moran"
//	)
//
//	values, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	weights, _ := matrix.NewDenseFromRows(rookContiguity) // 4×4, supplied by caller
//
//	opts := moran.DefaultOptions()
//	i, err := moran.MoransI(values, weights, &opts)
//	if err != nil {
//	  // ErrInsufficientData, ErrShapeMismatch, ErrDegenerate, ...
//	}
//
// The statistic for observations x_1..x_N (row-major flattening of the
// value grid, N = rows×cols) and weights w_ij (N×N) is
//
//	I = N · Σ_i Σ_j w_ij·(x_i−x̄)(x_j−x̄) / ( S0 · Σ_i (x_i−x̄)² )
//
// where S0 = Σ_i Σ_j w_ij.
//
// Performance:
//
//   - Time:   O(N²) in the weights traversal
//   - Memory: O(N) for the deviation vector
//   - Purity: inputs are never mutated; safe for concurrent callers
//
// Errors:
//
//   - ErrNilInput: values or weights matrix is nil.
//   - ErrInsufficientData: fewer than two observations.
//   - ErrShapeMismatch: weights are not N×N for N = rows×cols of values.
//   - ErrDegenerate: zero variance or zero total weight (within Epsilon).
//   - ErrBadOptions: negative Epsilon or Workers.
//   - matrix.ErrNaNInf: NaN or ±Inf in an input while ValidateInputs=true.
//
// See examples in example_test.go.
package moran
