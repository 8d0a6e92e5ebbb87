// SPDX-License-Identifier: MIT

package matconv

import (
	"github.com/katalvlaran/array2d/grid"
	"gonum.org/v1/gonum/mat"
)

// ToDense copies g into a new rows=Height(), cols=Width() *mat.Dense.
// Returns ErrNilGrid or ErrEmptyGrid.
// Complexity: O(W×H).
func ToDense(g *grid.Grid[float64]) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Width() == 0 || g.Height() == 0 {
		return nil, ErrEmptyGrid
	}
	raw := g.Raw()
	data := make([]float64, len(raw))
	copy(data, raw) // mat.NewDense adopts its slice

	return mat.NewDense(g.Height(), g.Width(), data), nil
}

// FromMatrix copies any gonum matrix into a grid with width = cols and
// height = rows.
// Complexity: O(rows×cols).
func FromMatrix(m mat.Matrix) (*grid.Grid[float64], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	g, err := grid.New[float64](c, r)
	if err != nil {
		return nil, err
	}
	for y, row := range g.Rows() {
		for x := range row {
			row[x] = m.At(y, x)
		}
	}

	return g, nil
}

// Apply runs a gonum operation over g and returns its result as a new grid.
// fn receives an empty destination and g as a mat.Matrix; gonum sizes a
// zero-value *mat.Dense receiver itself, so fn may produce any shape:
//
//	t, _ := matconv.Apply(g, func(dst *mat.Dense, src mat.Matrix) {
//		dst.CloneFrom(src.T())
//	})
func Apply(g *grid.Grid[float64], fn func(dst *mat.Dense, src mat.Matrix)) (*grid.Grid[float64], error) {
	src, err := ToDense(g)
	if err != nil {
		return nil, err
	}
	var dst mat.Dense
	fn(&dst, src)
	if dst.IsEmpty() {
		return nil, ErrEmptyGrid
	}

	return FromMatrix(&dst)
}
