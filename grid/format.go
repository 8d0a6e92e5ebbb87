// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String renders the grid as Height() lines, one per row. Each cell is
// formatted with %v, right-aligned to the widest rendered cell of the whole
// grid, cells are separated by a single space, and every row ends in "\n".
// Strings render unquoted; types implementing fmt.Stringer use String.
//
//	 1  2
//	30  4
//
// Complexity: O(width*height) formatting calls.
func (g *Grid[T]) String() string {
	// Stage 1: render each cell once and find the widest.
	cells := make([]string, len(g.data))
	pad := 0
	for i, v := range g.data {
		cells[i] = fmt.Sprintf("%v", v)
		if n := utf8.RuneCountInString(cells[i]); n > pad {
			pad = n
		}
	}

	// Stage 2: emit rows.
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*s", pad, cells[y*g.w+x])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
