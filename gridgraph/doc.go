// Package gridgraph treats a fixed-size grid.Grid[int] as a graph of cells,
// enabling component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph wraps a private copy of a *grid.Grid[int] with a tunable
//     land threshold and 4- or 8-neighbour connectivity.
//   - Identifies connected components ("islands") of cells with
//     value ≥ LandThreshold.
//   - Labels every cell with its component index (-1 for water).
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Labels:              O(W×H×d), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - WithLandThreshold(n): minimum value considered "land" (default 1).
//   - WithConnectivity(c):  Conn4 (default) or Conn8.
//
// Errors:
//
//   - ErrNilGrid:        nil *grid.Grid passed to NewGridGraph.
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: From2D rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath:         no conversion path exists between two components.
package gridgraph
