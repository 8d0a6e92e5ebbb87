// Package array2d is a small toolkit built around a fixed-size, row-major
// two-dimensional array.
//
// What is inside?
//
//	grid/      — Grid[T]: one contiguous buffer, fixed width and height,
//	             checked and unchecked accessors, row views, iterators
//	gridgraph/ — islands on a grid.Grid[int]: components, labels, 0-1 BFS bridging
//	dtw/       — Dynamic Time Warping with its cost table stored in a grid
//	matconv/   — grid.Grid[float64] <-> gonum mat.Dense
//
// Quick example:
//
//	g, _ := grid.New[int](3, 3)
//	g.Set(1, 2, 7)
//	v, ok := g.Get(1, 2)      // 7, true
//	_ = g.Set(3, 0, 9)        // false: x out of range
//	g.Index(0)[2] = 5         // unchecked row indexing
//	fmt.Print(g)
//
// Each subpackage is pure Go and free of global state.
//
//	go get github.com/katalvlaran/array2d
package array2d
