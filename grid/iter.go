// SPDX-License-Identifier: MIT

package grid

import "iter"

// Values yields every cell value in row-major order (y outer, x inner).
// Each call returns a fresh traversal.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers yields a pointer to every cell in row-major order. Writes
// through the pointers mutate the grid.
func (g *Grid[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range g.data {
			if !yield(&g.data[i]) {
				return
			}
		}
	}
}

// Cells yields each cell's coordinate together with its value, row-major.
func (g *Grid[T]) Cells() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		var x, y int
		for _, v := range g.data {
			if !yield(Point{X: x, Y: y}, v) {
				return
			}
			if x++; x == g.w {
				x = 0
				y++
			}
		}
	}
}

// RowValues yields the Width() values of row y, left to right.
// y must be in [0, Height()); it is not checked.
func (g *Grid[T]) RowValues(y int) iter.Seq[T] {
	row := g.row(y)
	return func(yield func(T) bool) {
		for _, v := range row {
			if !yield(v) {
				return
			}
		}
	}
}

// RowPointers yields a pointer to each cell of row y, left to right.
// y must be in [0, Height()); it is not checked.
func (g *Grid[T]) RowPointers(y int) iter.Seq[*T] {
	row := g.row(y)
	return func(yield func(*T) bool) {
		for i := range row {
			if !yield(&row[i]) {
				return
			}
		}
	}
}

// Rows yields (y, row) for y = 0..Height()-1. Each row is a clipped view of
// exactly Width() elements aliasing the grid.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.h; y++ {
			if !yield(y, g.row(y)) {
				return
			}
		}
	}
}
