// Package matrix provides the minimal dense container layer used by the
// spatial statistics packages: a bounds-safe, row-major float64 matrix.
//
// What:
//
//   - Matrix — the small read/write interface every consumer accepts.
//   - Dense — the canonical implementation: flat row-major []float64
//     storage for cache friendliness and cheap flattening.
//   - NewDenseFromRows — deep-copy ingestion of a rectangular [][]float64.
//   - Central validators (ValidateNotNil, ValidateSquare, ValidateFinite)
//     returning plain sentinel errors for uniform wrapping at call sites.
//
// Why:
//
//   - Spatial statistics consume a value grid and an N×N weights matrix;
//     both want one storage convention (row-major) and one error contract.
//   - Flat storage gives kernels a fast path: a single []float64 pass
//     instead of At(i,j) calls.
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive dimension.
//   - ErrOutOfRange: row or column index outside valid bounds.
//   - ErrNilMatrix: nil Matrix receiver or argument.
//   - ErrNonSquare: square matrix required but input wasn't.
//   - ErrEmptyGrid: ingested 2D slice has no rows or no columns.
//   - ErrNonRectangular: ingested 2D slice has ragged rows.
//   - ErrNaNInf: NaN or ±Inf encountered where finite values are required.
//
// All errors are package-level sentinels matched via errors.Is; indexers
// return errors, they never panic.
package matrix
