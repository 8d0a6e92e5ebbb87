package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/array2d/dtw"
)

// ExampleDTW aligns a sequence against a copy with one repeated sample.
//
// Scenario:
//
//	a = [1, 2, 3]
//	b = [1, 2, 2, 3]
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleDTW() {
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	dist, path, err := dtw.DTW([]float64{1, 2, 3}, []float64{1, 2, 2, 3}, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)

	// Output:
	// distance=0
	// path=[{0 0} {1 1} {1 2} {2 3}]
}

// ExampleAccumulatedCost prints the DP table; rows follow a, columns follow b.
func ExampleAccumulatedCost() {
	d, _ := dtw.AccumulatedCost([]float64{0, 1}, []float64{0, 2}, nil)
	fmt.Print(d)

	// Output:
	//    0 +Inf +Inf
	// +Inf    0    2
	// +Inf    1    1
}
