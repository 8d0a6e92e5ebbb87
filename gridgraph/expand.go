package gridgraph

import (
	"container/list"
	"math"

	"github.com/katalvlaran/array2d/grid"
)

// ExpandIsland finds a minimum-conversion path of water cells connecting
// any cell of component srcComp to any cell of component dstComp, as
// numbered by ConnectedComponents. Each water cell on the path costs 1.
// Returns the path as row-major cell indices (including the start and end
// land cells) and the total conversion cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • moving into a land cell  → cost 0
//     • moving into a water cell → cost 1
//  3. Stop when the first dstComp cell leaves the deque.
//  4. Reconstruct the path via predecessor links.
//
// srcComp == dstComp yields a single-cell path with cost 0.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps, labels := gg.label()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	w, h := gg.Width(), gg.Height()
	dist := grid.Must(grid.Filled(w, h, math.MaxInt))
	prev := grid.Must(grid.Filled(w, h, -1))

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back.
	dq := list.New()
	for _, i := range comps[srcComp] {
		x, y := gg.Coordinate(i)
		dist.SetUnchecked(x, y, 0)
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		ux, uy := gg.Coordinate(u)
		if labels.GetUnchecked(ux, uy) == dstComp {
			target = u
			break
		}
		du := dist.GetUnchecked(ux, uy)
		for _, d := range gg.offsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			step := 1
			if gg.landAt(vx, vy) {
				step = 0
			}
			if nd := du + step; nd < dist.GetUnchecked(vx, vy) {
				v := gg.Index(vx, vy)
				dist.SetUnchecked(vx, vy, nd)
				prev.SetUnchecked(vx, vy, u)
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; {
		path = append(path, at)
		x, y := gg.Coordinate(at)
		at = prev.GetUnchecked(x, y)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	tx, ty := gg.Coordinate(target)

	return path, dist.GetUnchecked(tx, ty), nil
}
