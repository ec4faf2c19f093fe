// Package moran: computation options and documented defaults.
package moran

// Numeric policy defaults — single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the non-negative absolute tolerance used by the
	// degeneracy guards: the statistic is refused (ErrDegenerate) when the
	// deviation sum of squares Σ(x_i−x̄)² or the absolute total weight |S0|
	// does not exceed Epsilon. Absolute, not relative: rescaling the
	// observations by a very small factor can push Σd² under the guard.
	DefaultEpsilon = 1e-9

	// DefaultValidateInputs toggles strict finite-value validation of both
	// input matrices before any accumulation.
	DefaultValidateInputs = true
)

// Options configures a Moran's I computation.
//
// Fields:
//   - Epsilon        — absolute degeneracy tolerance (see DefaultEpsilon).
//     Negative values are rejected with ErrBadOptions.
//   - ValidateInputs — scan both matrices for NaN/±Inf up front and fail
//     with matrix.ErrNaNInf instead of propagating poison through the sums.
//   - Parallel       — split the O(N²) weights traversal across goroutines.
//     Off by default: the statistic is a single synchronous reduction and
//     small grids gain nothing from fan-out. Takes effect only on the
//     *matrix.Dense fast path; foreign Matrix implementations always use
//     the sequential fallback (their At is not assumed concurrency-safe).
//   - Workers        — goroutine count for the parallel path; 0 means
//     GOMAXPROCS. Negative values are rejected with ErrBadOptions.
//
// Example:
//
//	opts := moran.DefaultOptions()
//	opts.Parallel = true // large raster, let rows fan out
//
//	i, err := moran.MoransI(values, weights, &opts)
type Options struct {
	Epsilon        float64
	ValidateInputs bool
	Parallel       bool
	Workers        int
}

// DefaultOptions returns the documented default configuration:
// Epsilon=1e-9, ValidateInputs=true, sequential execution.
func DefaultOptions() Options {
	return Options{
		Epsilon:        DefaultEpsilon,
		ValidateInputs: DefaultValidateInputs,
	}
}

// validate checks option sanity. Returns ErrBadOptions on nonsensical
// values; never panics (user input, not programmer error).
func (o Options) validate() error {
	if o.Epsilon < 0 {
		return ErrBadOptions
	}
	if o.Workers < 0 {
		return ErrBadOptions
	}

	return nil
}
