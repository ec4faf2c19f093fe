package moran

import "errors"

// Sentinel errors for the moran package. All public entry points return
// these (possibly wrapped with call-site context via fmt.Errorf("...: %w"));
// callers and tests must match them with errors.Is. Degenerate inputs fail
// loudly — this package never returns NaN for a defined contract violation.
var (
	// ErrNilInput indicates a nil values or weights matrix.
	ErrNilInput = errors.New("moran: nil input matrix")

	// ErrInsufficientData indicates fewer than two observations
	// (the statistic is undefined for N < 2, including empty input).
	ErrInsufficientData = errors.New("moran: need at least two observations")

	// ErrShapeMismatch indicates the weights matrix is not N×N, where N is
	// the flattened observation count rows×cols of the values matrix.
	ErrShapeMismatch = errors.New("moran: weights dimensions must match flattened observation count")

	// ErrDegenerate indicates the statistic is undefined for the given
	// input: the deviation sum of squares or the total weight is zero
	// within Options.Epsilon (constant surface, or an all-zero weights
	// matrix).
	ErrDegenerate = errors.New("moran: degenerate input (zero variance or zero total weight)")

	// ErrBadOptions indicates nonsensical option values
	// (negative Epsilon or negative Workers).
	ErrBadOptions = errors.New("moran: invalid options")
)
