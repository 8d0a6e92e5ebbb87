package gridgraph

import "github.com/katalvlaran/array2d/grid"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "Conn4" or "Conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "Conn8"
	}
	return "Conn4"
}

// Neighbor offsets in clockwise order starting at north.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// GridGraph treats a 2D integer grid as a graph. It is immutable once built:
// cells is a private clone of the caller's grid.
type GridGraph struct {
	cells         *grid.Grid[int] // cell values, row-major
	conn          Connectivity
	landThreshold int
	offsets       [][2]int // neighbor deltas for conn
}
