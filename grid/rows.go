// SPDX-License-Identifier: MIT

package grid

// row returns the clipped view [y*w, (y+1)*w) with capacity w, so an append
// on the view reallocates instead of overwriting row y+1.
func (g *Grid[T]) row(y int) []T {
	lo, hi := y*g.w, (y+1)*g.w
	return g.data[lo:hi:hi]
}

// Row returns row y as a slice of exactly Width() elements and true, or nil
// and false when y is out of [0, Height()).
// The slice aliases the grid: element writes are writes to the grid.
// Complexity: O(1).
func (g *Grid[T]) Row(y int) ([]T, bool) {
	if y < 0 || y >= g.h {
		return nil, false
	}

	return g.row(y), true
}

// RowUnchecked returns row y without checking y against Height().
// y ≥ Height() panics once the range leaves the buffer.
func (g *Grid[T]) RowUnchecked(y int) []T {
	return g.row(y)
}

// Index is row indexing, the fast path for g.Index(y)[x] chains.
// Same contract as RowUnchecked.
func (g *Grid[T]) Index(y int) []T {
	return g.row(y)
}
