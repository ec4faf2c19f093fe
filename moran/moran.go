package moran

import (
	"fmt"
	"runtime"

	"github.com/dgravesa/go-parallel/parallel"

	"github.com/katalvlaran/spatial/matrix"
)

// MoransI — global Moran's I
//
// Description:
//
//	Given an R×C observation matrix and an N×N spatial-weights matrix
//	(N = R×C), MoransI measures whether similar observation values occupy
//	neighboring spatial units. Weights are consumed exactly as supplied;
//	w_ij encodes the influence of unit j on unit i and is typically zero
//	on the diagonal.
//
// Algorithm Outline:
//  1. Flatten the observation matrix row-major into x_1..x_N.
//  2. Compute the mean x̄ and deviations d_i = x_i − x̄.
//  3. In one pass over the weights: S0 = Σ_i Σ_j w_ij and
//     cross = Σ_i Σ_j w_ij·d_i·d_j.
//  4. With ssd = Σ_i d_i², return I = N·cross / (S0·ssd).
//
// The flattening order (row-major) is the one convention shared between the
// observation indexing and the weights indexing; a weights matrix built for
// a different linearization produces a meaningless result, not an error.
//
// Complexity:
//
//	Time   = O(N²) (weights traversal dominates)
//	Memory = O(N)  (deviation vector)
//
// Errors:
//   - ErrBadOptions        — negative Epsilon or Workers.
//   - ErrNilInput          — values or weights is nil.
//   - ErrInsufficientData  — N < 2 (includes empty input).
//   - ErrShapeMismatch     — weights is not N×N.
//   - matrix.ErrNaNInf     — non-finite input while ValidateInputs=true.
//   - ErrDegenerate        — ssd ≤ Epsilon (constant surface) or
//     |S0| ≤ Epsilon (zero total weight).
//
// Pure function: inputs are never mutated, no shared state, safe to call
// from any number of goroutines.
func MoransI(values, weights matrix.Matrix, opts *Options) (float64, error) {
	// Apply options or defaults, then sanity-check them first: a malformed
	// configuration should fail before any input inspection.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return 0, err
	}

	// Presence checks precede every shape computation.
	if values == nil || weights == nil {
		return 0, ErrNilInput
	}

	// N is the flattened observation count; the statistic needs at least
	// two observations, and the weights must relate all N units pairwise.
	n := values.Rows() * values.Cols()
	if n < 2 {
		return 0, ErrInsufficientData
	}
	if weights.Rows() != n || weights.Cols() != n {
		return 0, ErrShapeMismatch
	}

	// Numeric policy: refuse NaN/±Inf up front rather than letting poison
	// propagate through the reductions into a finite-looking garbage value.
	if o.ValidateInputs {
		if err := matrix.ValidateFinite(values); err != nil {
			return 0, fmt.Errorf("MoransI: values: %w", err)
		}
		if err := matrix.ValidateFinite(weights); err != nil {
			return 0, fmt.Errorf("MoransI: weights: %w", err)
		}
	}

	// Stage 1: flatten row-major and center.
	xs, err := flattenRowMajor(values, n)
	if err != nil {
		return 0, fmt.Errorf("MoransI: values: %w", err)
	}

	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(n)

	d := xs // reuse the flattened copy in place for deviations
	var ssd float64
	for i, x := range xs {
		dev := x - mean
		d[i] = dev
		ssd += dev * dev
	}

	// Stage 2: single pass over the weights for S0 and the cross sum.
	var s0, cross float64
	if wd, ok := weights.(*matrix.Dense); ok {
		s0, cross = accumulateDense(wd.RawData(), d, o)
	} else {
		s0, cross, err = accumulateGeneric(weights, d)
		if err != nil {
			return 0, fmt.Errorf("MoransI: weights: %w", err)
		}
	}

	// Stage 3: degeneracy guards, then the ratio. Both denominator factors
	// must clear Epsilon or the statistic is undefined for this input.
	if ssd <= o.Epsilon {
		return 0, fmt.Errorf("MoransI: zero variance: %w", ErrDegenerate)
	}
	if abs(s0) <= o.Epsilon {
		return 0, fmt.Errorf("MoransI: zero total weight: %w", ErrDegenerate)
	}

	return float64(n) * cross / (s0 * ssd), nil
}

// MoransIGrid is the raw-slice convenience form of MoransI: it ingests the
// observation grid and the weights as rectangular [][]float64 via
// matrix.NewDenseFromRows and delegates. Ingestion failures surface
// unchanged (matrix.ErrEmptyGrid, matrix.ErrNonRectangular).
//
// Complexity: O(N²) time, O(N²) memory for the ingested weights copy.
func MoransIGrid(values, weights [][]float64, opts *Options) (float64, error) {
	vm, err := matrix.NewDenseFromRows(values)
	if err != nil {
		return 0, fmt.Errorf("MoransIGrid: values: %w", err)
	}
	wm, err := matrix.NewDenseFromRows(weights)
	if err != nil {
		return 0, fmt.Errorf("MoransIGrid: weights: %w", err)
	}

	return MoransI(vm, wm, opts)
}

// flattenRowMajor returns a fresh row-major vector of m's elements.
// *Dense short-circuits to a flat-buffer copy; other implementations are
// read element-wise with full error propagation.
func flattenRowMajor(m matrix.Matrix, n int) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Flatten(), nil
	}

	out := make([]float64, 0, n)
	rows, cols := m.Rows(), m.Cols()
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// accumulateDense computes S0 and Σ w_ij·d_i·d_j over the flat row-major
// weights buffer. Sequential by default; with o.Parallel the row loop fans
// out across goroutines with per-goroutine partials (each w_ij is still
// visited exactly once, summation order within a row is unchanged).
func accumulateDense(w, d []float64, o Options) (s0, cross float64) {
	n := len(d)

	if !o.Parallel {
		for i := 0; i < n; i++ { // deterministic i→j traversal
			base := i * n
			di := d[i]
			for j := 0; j < n; j++ {
				wij := w[base+j]
				s0 += wij
				cross += wij * di * d[j]
			}
		}

		return s0, cross
	}

	// Parallel path: partial sums indexed by goroutine ID, joined by the
	// library's own barrier. No locks, no shared accumulators.
	g := o.Workers
	if g <= 0 {
		g = runtime.GOMAXPROCS(0)
	}
	if g > n {
		g = n
	}
	s0Part := make([]float64, g)
	crossPart := make([]float64, g)

	parallel.WithNumGoroutines(g).For(n, func(i, grID int) {
		base := i * n
		di := d[i]
		var rowS0, rowCross float64
		for j := 0; j < n; j++ {
			wij := w[base+j]
			rowS0 += wij
			rowCross += wij * di * d[j]
		}
		s0Part[grID] += rowS0
		crossPart[grID] += rowCross
	})

	for k := 0; k < g; k++ {
		s0 += s0Part[k]
		cross += crossPart[k]
	}

	return s0, cross
}

// accumulateGeneric is the At-based fallback for foreign Matrix
// implementations. Always sequential: the Matrix interface does not promise
// concurrency-safe reads.
func accumulateGeneric(weights matrix.Matrix, d []float64) (s0, cross float64, err error) {
	n := len(d)
	var wij float64
	for i := 0; i < n; i++ {
		di := d[i]
		for j := 0; j < n; j++ {
			wij, err = weights.At(i, j)
			if err != nil {
				return 0, 0, err
			}
			s0 += wij
			cross += wij * di * d[j]
		}
	}

	return s0, cross, nil
}

// abs returns the absolute value of a float64.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
