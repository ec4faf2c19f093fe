// Package spatial is a small, focused toolkit for spatial statistics over
// gridded numeric data — measure whether similar values cluster together,
// spread apart, or scatter at random across space.
//
// 🚀 What is spatial?
//
//	A modern, pure-Go library built around two pieces:
//		• matrix/ — a minimal, bounds-safe dense matrix container
//		  (row-major float64 storage, sentinel errors, no panics)
//		• moran/  — global Moran's I, the classical spatial
//		  autocorrelation statistic, over an observation matrix and a
//		  caller-supplied spatial-weights matrix
//
// ✨ Why choose spatial?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – explicit sentinel errors, no silent NaN
//   - Pure Go – no cgo, no hidden heavy deps
//   - Fast – flat row-major storage, optional multi-core accumulation
//
// Quick ASCII example:
//
//	    ■ □ ■ □
//	    □ ■ □ ■        a checkerboard of two values under 4-neighbor
//	    ■ □ ■ □        (rook) contiguity weights is perfect spatial
//	    □ ■ □ ■        dispersion: Moran's I = −1
//
// Values near +1 mean similar values cluster, values near −1 mean they
// alternate, and values near −1/(N−1) mean no spatial structure at all.
//
// Dive into moran/doc.go for the statistic's contract and options, and
// matrix/doc.go for the container layer.
//
//	go get github.com/katalvlaran/spatial/moran
package spatial
