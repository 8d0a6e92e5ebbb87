package dtw

import "errors"

// Sentinel errors.
var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates invalid options: Window < -1, a negative or NaN
	// SlopePenalty, or an unknown MemoryMode.
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath was requested without FullMatrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its accumulated-cost table.
type MemoryMode int

const (
	// NoMemory keeps a single row; distance only.
	NoMemory MemoryMode = iota
	// TwoRows keeps the current and previous row; distance only.
	TwoRows
	// FullMatrix keeps the whole (n+1)×(m+1) table; supports path recovery.
	FullMatrix
)

// Options configures Dynamic Time Warping.
type Options struct {
	Window       int     // Sakoe–Chiba half-width; -1 = unlimited
	SlopePenalty float64 // cost added to non-diagonal steps
	ReturnPath   bool    // backtrack the warping path (FullMatrix only)
	MemoryMode   MemoryMode
}

// DefaultOptions returns unlimited window, no penalty, no path, TwoRows.
func DefaultOptions() Options {
	return Options{
		Window:     -1,
		MemoryMode: TwoRows,
	}
}

// Coord is one step of a warping path: a[I] is aligned with b[J].
type Coord struct {
	I, J int
}
