// SPDX-License-Identifier: MIT

package grid

// InBounds reports whether 0 ≤ x < Width() and 0 ≤ y < Height().
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Offset returns the flat, row-major offset y*Width()+x. It performs no
// bounds check.
func (g *Grid[T]) Offset(x, y int) int {
	return y*g.w + x
}

// Coord is the inverse of Offset. offset must lie in [0, Len()).
func (g *Grid[T]) Coord(offset int) (x, y int) {
	return offset % g.w, offset / g.w
}

// ---------- Checked access ----------

// Get returns the value at (x, y) and true, or the zero value and false when
// (x, y) is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}

	return g.data[y*g.w+x], true
}

// Ref returns a pointer to cell (x, y) and true, or nil and false when
// (x, y) is out of bounds. Writes through the pointer mutate the grid.
// Complexity: O(1).
func (g *Grid[T]) Ref(x, y int) (*T, bool) {
	if !g.InBounds(x, y) {
		return nil, false
	}

	return &g.data[y*g.w+x], true
}

// Set stores value at (x, y) and reports true, or reports false and writes
// nothing when (x, y) is out of bounds.
// Complexity: O(1).
func (g *Grid[T]) Set(x, y int, value T) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[y*g.w+x] = value

	return true
}

// ---------- Unchecked access ----------
//
// The caller guarantees InBounds(x, y). No validation happens here: an
// out-of-range x with an in-range flat offset reads or writes a different
// cell, and an offset outside the buffer panics.

// GetUnchecked returns the value at (x, y) without a bounds check.
func (g *Grid[T]) GetUnchecked(x, y int) T {
	return g.data[y*g.w+x]
}

// RefUnchecked returns a pointer to cell (x, y) without a bounds check.
func (g *Grid[T]) RefUnchecked(x, y int) *T {
	return &g.data[y*g.w+x]
}

// SetUnchecked stores value at (x, y) without a bounds check.
func (g *Grid[T]) SetUnchecked(x, y int, value T) {
	g.data[y*g.w+x] = value
}

// At is coordinate indexing: the cell pointer for (x, y), read or written
// through the result. Same contract as RefUnchecked.
func (g *Grid[T]) At(x, y int) *T {
	return &g.data[y*g.w+x]
}
