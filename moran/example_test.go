package moran_test

import (
	"fmt"

	"github.com/katalvlaran/spatial/moran"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMoransI
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 4×4 checkerboard of two values under binary rook (4-neighbor)
//	contiguity: every neighbor of a high cell is a low cell, the textbook
//	picture of perfect spatial alternation.
//
// Expectation:
//
//	I = −1, the dispersion extreme of the statistic.
//
// Complexity: O(N²) over N = 16 units.
func ExampleMoransI() {
	values := [][]float64{
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
	}

	i, err := moran.MoransIGrid(values, rookWeights(4, 4), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("Moran's I = %.4f\n", i)
	// Output:
	// Moran's I = -1.0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMoransIGrid
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The raw-slice convenience form on a 2×2 gradient [[1,2],[3,4]] with
//	rook contiguity. Every neighbor product cancels pairwise here, so the
//	surface carries no net spatial signal.
//
// Expectation:
//
//	I = 0.
func ExampleMoransIGrid() {
	values := [][]float64{
		{1, 2},
		{3, 4},
	}
	weights := [][]float64{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	}

	i, err := moran.MoransIGrid(values, weights, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("Moran's I = %.4f\n", i)
	// Output:
	// Moran's I = 0.0000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMoransI_clustered
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 4×4 grid split into a low half and a high half — neighbors mostly
//	share their level, a strongly clustered surface.
//
// Expectation:
//
//	I clearly positive (2/3 for this exact pattern).
func ExampleMoransI_clustered() {
	values := [][]float64{
		{1, 1, 4, 4},
		{1, 1, 4, 4},
		{1, 1, 4, 4},
		{1, 1, 4, 4},
	}

	i, err := moran.MoransIGrid(values, rookWeights(4, 4), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("Moran's I = %.4f\n", i)
	// Output:
	// Moran's I = 0.6667
}
