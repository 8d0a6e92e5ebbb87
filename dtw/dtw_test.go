package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/array2d/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDTW_EmptyInput verifies that DTW returns ErrEmptyInput
// when either input sequence is empty.
func TestDTW_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	_, _, err := dtw.DTW([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

	_, _, err = dtw.DTW([]float64{1, 2, 3}, nil, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")
}

// TestDTW_BadOptions ensures out-of-range options trigger ErrBadInput.
func TestDTW_BadOptions(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*dtw.Options)
	}{
		{"WindowBelowMinusOne", func(o *dtw.Options) { o.Window = -2 }},
		{"NegativePenalty", func(o *dtw.Options) { o.SlopePenalty = -1 }},
		{"NaNPenalty", func(o *dtw.Options) { o.SlopePenalty = math.NaN() }},
		{"UnknownMode", func(o *dtw.Options) { o.MemoryMode = dtw.MemoryMode(9) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := dtw.DefaultOptions()
			tc.mod(&opts)
			_, _, err := dtw.DTW([]float64{1}, []float64{1}, &opts)
			assert.ErrorIs(t, err, dtw.ErrBadInput)
		})
	}
}

// TestDTW_PathNeedsMatrix ensures ReturnPath=true with non-FullMatrix mode errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	for _, mode := range []dtw.MemoryMode{dtw.TwoRows, dtw.NoMemory} {
		opts := dtw.DefaultOptions()
		opts.ReturnPath = true
		opts.MemoryMode = mode

		_, _, err := dtw.DTW([]float64{1, 2}, []float64{1, 2}, &opts)
		assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "mode %d", mode)
	}
}

// TestDTW_BasicDistance verifies that identical sequences have zero distance
// and no path is returned by default.
func TestDTW_BasicDistance(t *testing.T) {
	a := []float64{0, 1, 2}

	dist, path, err := dtw.DTW(a, a, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, dist, "identical sequences must have zero distance")
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")
}

// TestDTW_SyntheticDistanceAndPath checks a perfect match with one repeat.
func TestDTW_SyntheticDistanceAndPath(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	dist, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist, "perfect match with a repeat yields zero cost")
	assert.Equal(t, []dtw.Coord{{I: 0, J: 0}, {I: 1, J: 1}, {I: 1, J: 2}, {I: 2, J: 3}}, path)
}

// TestDTW_PathIsMonotone checks step shape on a noisier pair.
func TestDTW_PathIsMonotone(t *testing.T) {
	a := []float64{0, 3, 1, 4, 1, 5, 9}
	b := []float64{0, 1, 3, 4, 1, 5, 2, 9}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	dist, path, err := dtw.DTW(a, b, &opts)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, dtw.Coord{I: len(a) - 1, J: len(b) - 1}, path[len(path)-1])

	sum := math.Abs(a[0] - b[0])
	for k := 1; k < len(path); k++ {
		di, dj := path[k].I-path[k-1].I, path[k].J-path[k-1].J
		assert.True(t, (di == 1 || di == 0) && (dj == 1 || dj == 0) && di+dj > 0,
			"step %v -> %v", path[k-1], path[k])
		sum += math.Abs(a[path[k].I] - b[path[k].J])
	}
	assert.InDelta(t, dist, sum, 1e-12, "path cost must equal distance with zero penalty")
}

// TestDTW_WindowConstraint verifies that a strict window = 0
// with a length mismatch yields +Inf distance and no path.
func TestDTW_WindowConstraint(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3, 4}
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.MemoryMode = dtw.FullMatrix
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(a, b, &opts)
	assert.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1), "window=0 with length mismatch should yield +Inf")
	assert.Nil(t, path)
}

// TestDTW_SlopePenaltyAffectsDistance ensures the single forced
// non-diagonal step costs exactly the penalty.
func TestDTW_SlopePenaltyAffectsDistance(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1, 2, 3}

	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	dist0, _, err := dtw.DTW(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, dist0, "zero penalty allows perfect cost")

	opts.SlopePenalty = 1.0
	dist1, _, err := dtw.DTW(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, dist1, "penalty=1.0 adds exactly one unit to distance")
}

// TestDTW_ModesAgree confirms all memory modes produce the same distance.
func TestDTW_ModesAgree(t *testing.T) {
	a := []float64{0, 1, 2, 3, 2.5, 1}
	b := []float64{0, 1, 1, 2, 3, 1}

	for _, window := range []int{-1, 0, 1, 3} {
		for _, penalty := range []float64{0, 0.5} {
			opts := dtw.DefaultOptions()
			opts.Window = window
			opts.SlopePenalty = penalty

			opts.MemoryMode = dtw.FullMatrix
			ref, _, err := dtw.DTW(a, b, &opts)
			require.NoError(t, err)

			for _, mode := range []dtw.MemoryMode{dtw.TwoRows, dtw.NoMemory} {
				opts.MemoryMode = mode
				dist, path, err := dtw.DTW(a, b, &opts)
				require.NoError(t, err)
				assert.Equal(t, ref, dist, "window=%d penalty=%v mode=%d", window, penalty, mode)
				assert.Nil(t, path)
			}
		}
	}
}

// TestDTW_NegativeWindowUnlimited verifies Window=-1 disables the band.
func TestDTW_NegativeWindowUnlimited(t *testing.T) {
	opts := dtw.DefaultOptions()
	opts.Window = -1

	dist, _, err := dtw.DTW([]float64{1, 2, 3, 4}, []float64{1, 2, 3}, &opts)
	assert.NoError(t, err)
	assert.False(t, math.IsInf(dist, 1), "Window=-1 must allow alignment")
}

// TestAccumulatedCost checks table shape and border cells.
func TestAccumulatedCost(t *testing.T) {
	d, err := dtw.AccumulatedCost([]float64{0, 1}, []float64{0, 2}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, d.Width())
	require.Equal(t, 3, d.Height())

	v, ok := d.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
	for k := 1; k < 3; k++ {
		assert.True(t, math.IsInf(d.GetUnchecked(k, 0), 1))
		assert.True(t, math.IsInf(d.GetUnchecked(0, k), 1))
	}
	assert.Equal(t, 1.0, d.GetUnchecked(2, 2))

	_, err = dtw.AccumulatedCost(nil, []float64{1}, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)
}
