package moran_test

import (
	"testing"

	"github.com/katalvlaran/spatial/matrix"
	"github.com/katalvlaran/spatial/moran"
)

// benchmarkMoransI is a helper that runs MoransI over an rows×cols ramp
// surface with rook contiguity weights using opts. It resets the timer
// after fixture construction and fails on unexpected errors.
func benchmarkMoransI(b *testing.B, rows, cols int, opts moran.Options) {
	v, err := matrix.NewDenseFromRows(rampGrid(rows, cols))
	if err != nil {
		b.Fatalf("values fixture: %v", err)
	}
	w, err := matrix.NewDenseFromRows(rookWeights(rows, cols))
	if err != nil {
		b.Fatalf("weights fixture: %v", err)
	}

	b.ResetTimer() // ignore fixture setup time
	for i := 0; i < b.N; i++ {
		if _, err = moran.MoransI(v, w, &opts); err != nil {
			b.Fatalf("MoransI failed: %v", err)
		}
	}
}

// BenchmarkMoransI_Small benchmarks the sequential path on an 8×8 grid
// (N=64, 4096-entry weights traversal).
func BenchmarkMoransI_Small(b *testing.B) {
	benchmarkMoransI(b, 8, 8, moran.DefaultOptions())
}

// BenchmarkMoransI_Medium benchmarks the sequential path on a 32×32 grid
// (N=1024, ~1M-entry weights traversal).
func BenchmarkMoransI_Medium(b *testing.B) {
	benchmarkMoransI(b, 32, 32, moran.DefaultOptions())
}

// BenchmarkMoransI_MediumParallel benchmarks the parallel path on the same
// 32×32 grid with GOMAXPROCS workers.
func BenchmarkMoransI_MediumParallel(b *testing.B) {
	opts := moran.DefaultOptions()
	opts.Parallel = true
	benchmarkMoransI(b, 32, 32, opts)
}

// BenchmarkMoransI_NoValidation benchmarks the sequential path with the
// up-front finite scan disabled.
func BenchmarkMoransI_NoValidation(b *testing.B) {
	opts := moran.DefaultOptions()
	opts.ValidateInputs = false
	benchmarkMoransI(b, 32, 32, opts)
}
