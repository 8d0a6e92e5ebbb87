package dtw

import (
	"math"

	"github.com/katalvlaran/array2d/grid"
)

// DTW computes the Dynamic Time Warping distance between a and b.
// A nil opts means DefaultOptions().
// If opts.ReturnPath is true, opts.MemoryMode must be FullMatrix.
//
// Recurrence (1-based i over a, j over b):
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//
// Cells outside the window are +Inf. distance = D[n][m].
func DTW(a, b []float64, opts *Options) (distance float64, path []Coord, err error) {
	o, err := validate(a, b, opts)
	if err != nil {
		return 0, nil, err
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}
	n, m := len(a), len(b)

	switch o.MemoryMode {
	case FullMatrix:
		d := accumulate(a, b, o)
		distance = d.GetUnchecked(m, n)
		if o.ReturnPath {
			path = backtrack(d, o.SlopePenalty)
		}
	case TwoRows:
		distance = twoRows(a, b, o)
	default:
		distance = oneRow(a, b, o)
	}

	return distance, path, nil
}

// AccumulatedCost returns the full DP table as a grid of width len(b)+1 and
// height len(a)+1; cell (j, i) is D[i][j]. ReturnPath is ignored and
// MemoryMode is only range-checked.
func AccumulatedCost(a, b []float64, opts *Options) (*grid.Grid[float64], error) {
	o, err := validate(a, b, opts)
	if err != nil {
		return nil, err
	}

	return accumulate(a, b, o), nil
}

// validate resolves opts (nil means defaults) and checks inputs and option ranges.
func validate(a, b []float64, opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(a) == 0 || len(b) == 0 {
		return o, ErrEmptyInput
	}
	if o.Window < -1 || o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return o, ErrBadInput
	}
	if o.MemoryMode < NoMemory || o.MemoryMode > FullMatrix {
		return o, ErrBadInput
	}

	return o, nil
}

func inBand(i, j, window int) bool {
	if window < 0 {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}
	return d <= window
}

// accumulate fills the whole (n+1)×(m+1) table.
func accumulate(a, b []float64, o Options) *grid.Grid[float64] {
	n, m := len(a), len(b)
	p := o.SlopePenalty
	d := grid.Must(grid.Filled(m+1, n+1, math.Inf(1)))
	d.SetUnchecked(0, 0, 0)

	for i := 1; i <= n; i++ {
		prev, cur := d.Index(i-1), d.Index(i)
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				continue // stays +Inf
			}
			cur[j] = math.Abs(a[i-1]-b[j-1]) + min(prev[j]+p, cur[j-1]+p, prev[j-1])
		}
	}

	return d
}

// twoRows keeps rows i-1 and i in a 2-row grid indexed by parity.
func twoRows(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	p := o.SlopePenalty
	rows := grid.Must(grid.Filled(m+1, 2, math.Inf(1)))
	rows.SetUnchecked(0, 0, 0)

	for i := 1; i <= n; i++ {
		prev, cur := rows.Index((i-1)%2), rows.Index(i%2)
		cur[0] = math.Inf(1)
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				cur[j] = math.Inf(1)
				continue
			}
			cur[j] = math.Abs(a[i-1]-b[j-1]) + min(prev[j]+p, cur[j-1]+p, prev[j-1])
		}
	}

	return rows.GetUnchecked(m, n%2)
}

// oneRow overwrites a single row in place, carrying D[i-1][j-1] in diag.
func oneRow(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	p := o.SlopePenalty
	line := grid.Must(grid.Filled(m+1, 1, math.Inf(1)))
	row := line.Index(0)
	row[0] = 0

	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = math.Inf(1)
		for j := 1; j <= m; j++ {
			up := row[j]
			if inBand(i, j, o.Window) {
				row[j] = math.Abs(a[i-1]-b[j-1]) + min(up+p, row[j-1]+p, diag)
			} else {
				row[j] = math.Inf(1)
			}
			diag = up
		}
	}

	return row[m]
}

// backtrack walks from (n, m) to (1, 1) choosing the predecessor that
// produced each cell; ties prefer the diagonal, then up, then left.
// Returns nil when D[n][m] is +Inf.
func backtrack(d *grid.Grid[float64], p float64) []Coord {
	i, j := d.Height()-1, d.Width()-1
	if math.IsInf(d.GetUnchecked(j, i), 1) {
		return nil
	}
	path := []Coord{{I: i - 1, J: j - 1}}
	for i > 1 || j > 1 {
		best, bi, bj := math.Inf(1), i, j
		if i > 1 && j > 1 {
			best, bi, bj = d.GetUnchecked(j-1, i-1), i-1, j-1
		}
		if i > 1 {
			if v := d.GetUnchecked(j, i-1) + p; v < best {
				best, bi, bj = v, i-1, j
			}
		}
		if j > 1 {
			if v := d.GetUnchecked(j-1, i) + p; v < best {
				bi, bj = i, j-1
			}
		}
		i, j = bi, bj
		path = append(path, Coord{I: i - 1, J: j - 1})
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
