package gridgraph

import "github.com/katalvlaran/array2d/grid"

// ConnectedComponents finds all contiguous regions ("islands") of land
// cells under the graph's connectivity.
// Components are ordered by their first cell in row-major order; cells
// within a component are in BFS discovery order. Each cell is a row-major
// index; use Coordinate to recover (x,y).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	comps, _ := gg.label()
	return comps
}

// Labels returns a grid of the same shape where each land cell holds its
// component index (as in ConnectedComponents) and each water cell holds -1.
func (gg *GridGraph) Labels() *grid.Grid[int] {
	_, labels := gg.label()
	return labels
}

// label runs one BFS flood fill per unseen land cell.
func (gg *GridGraph) label() ([][]int, *grid.Grid[int]) {
	w, h := gg.Width(), gg.Height()
	labels := grid.Must(grid.Filled(w, h, -1))
	var comps [][]int

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !gg.landAt(x, y) || labels.GetUnchecked(x, y) >= 0 {
				continue // water or already labelled
			}
			id := len(comps)
			labels.SetUnchecked(x, y, id)
			queue := []int{gg.Index(x, y)}

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsLand(vx, vy) {
						continue
					}
					if l := labels.At(vx, vy); *l < 0 {
						*l = id
						queue = append(queue, gg.Index(vx, vy))
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps, labels
}
