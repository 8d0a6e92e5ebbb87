// Package gridgraph provides utilities to treat a grid of integer cell values
// as a graph. Cells with value < LandThreshold are "water"; cells with
// value ≥ LandThreshold are "land".
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/array2d/grid"
)

// NewGridGraph builds a GridGraph over a copy of cells.
// Returns ErrNilGrid for a nil grid and ErrEmptyGrid if the grid has no rows
// or no columns.
// Complexity: O(W×H) time and memory.
func NewGridGraph(cells *grid.Grid[int], opts ...Option) (*GridGraph, error) {
	if cells == nil {
		return nil, ErrNilGrid
	}
	if cells.Width() == 0 || cells.Height() == 0 {
		return nil, ErrEmptyGrid
	}
	o := gatherOptions(opts...)

	offsets := offsets4
	if o.conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		cells:         cells.Clone(), // private copy keeps the graph immutable
		conn:          o.conn,
		landThreshold: o.landThreshold,
		offsets:       offsets,
	}, nil
}

// From2D builds a GridGraph from a non-empty, rectangular 2D slice where
// values[y][x] is cell (x, y).
// Ragged input is ErrNonRectangular, even when a row is empty; a
// rectangular input with no rows or no columns is ErrEmptyGrid.
func From2D(values [][]int, opts ...Option) (*GridGraph, error) {
	cells, err := grid.FromRows(values)
	if errors.Is(err, grid.ErrNonRectangular) {
		return nil, ErrNonRectangular
	}
	if err != nil {
		return nil, err
	}
	if cells.Width() == 0 || cells.Height() == 0 {
		return nil, ErrEmptyGrid
	}

	return NewGridGraph(cells, opts...)
}

// Width returns the number of columns.
func (gg *GridGraph) Width() int { return gg.cells.Width() }

// Height returns the number of rows.
func (gg *GridGraph) Height() int { return gg.cells.Height() }

// Connectivity returns the neighbor mode the graph was built with.
func (gg *GridGraph) Connectivity() Connectivity { return gg.conn }

// LandThreshold returns the minimum value counted as land.
func (gg *GridGraph) LandThreshold() int { return gg.landThreshold }

// Cells returns a copy of the underlying cell values.
func (gg *GridGraph) Cells() *grid.Grid[int] {
	return gg.cells.Clone()
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return gg.cells.InBounds(x, y)
}

// IsLand reports whether (x,y) is in bounds and holds a land value.
func (gg *GridGraph) IsLand(x, y int) bool {
	v, ok := gg.cells.Get(x, y)
	return ok && v >= gg.landThreshold
}

// NeighborOffsets returns the neighbor deltas for the graph's connectivity.
// The slice is shared; callers must not modify it.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.offsets
}

// Coordinate converts a row-major cell index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return gg.cells.Coord(idx)
}

// Index maps (x,y) to its row-major cell index y*Width()+x.
func (gg *GridGraph) Index(x, y int) int {
	return gg.cells.Offset(x, y)
}

// landAt is the hot-path land test for coordinates already known in bounds.
func (gg *GridGraph) landAt(x, y int) bool {
	return gg.cells.GetUnchecked(x, y) >= gg.landThreshold
}
