// SPDX-License-Identifier: MIT

// Package grid provides Grid[T], a dense two-dimensional array whose width and
// height are fixed at construction and whose cells live in one contiguous,
// row-major buffer.
//
// What:
//
//   - One flat slice of length Width()*Height(); no per-row allocation.
//   - Cell (x, y) lives at flat offset y*Width()+x. Row y is the half-open
//     range [y*Width(), (y+1)*Width()).
//   - Width and height never change after construction.
//
// Access paths:
//
//   - Checked: Get, Ref, Set, Row. Out-of-range coordinates yield ok=false
//     (or false from Set); they never panic and never write.
//   - Unchecked: GetUnchecked, RefUnchecked, SetUnchecked, RowUnchecked and
//     the indexing helpers Index and At. The caller guarantees in-range
//     coordinates. An x ≥ Width() with a valid flat offset silently addresses
//     another cell; an offset past the buffer panics.
//
// Views and iteration:
//
//   - Row and RowUnchecked return slices aliasing the grid, clipped to the row
//     so append cannot spill into the next row.
//   - Values, Pointers, Cells, RowValues, RowPointers and Rows are range-over-func
//     iterators (iter.Seq / iter.Seq2). Each call starts a fresh traversal and
//     allocates nothing beyond its cursor.
//
// Errors:
//
//   - ErrBadShape: negative width or height.
//   - ErrLengthMismatch: element count differs from width*height.
//   - ErrNonRectangular: FromRows input rows differ in length.
//
// Concurrency:
//
//   - Grid has no internal locking. Any number of goroutines may read
//     concurrently; a writer must be exclusive. Synchronisation is the
//     caller's job.
//
// Example:
//
//	g, _ := grid.New[int](3, 3)
//	g.Set(1, 2, 7)
//	v, _ := g.Get(1, 2) // 7
//	g.Index(0)[2] = 5   // row 0, column 2
package grid
