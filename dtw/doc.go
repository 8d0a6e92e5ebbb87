// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with an optional alignment path and memory modes.
//
// What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. It is used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Time-series clustering & anomaly detection
//
// Storage:
//
//	The accumulated-cost table D is a grid.Grid[float64] of width m+1 and
//	height n+1 (n = len(a), m = len(b)); cell (j, i) holds D[i][j].
//	  • FullMatrix — whole table, supports ReturnPath and AccumulatedCost.
//	  • TwoRows    — a 2-row grid, rows alternate by i parity.
//	  • NoMemory   — a single row plus one carried diagonal value.
//
// Options:
//
//   - Window:       Sakoe–Chiba band |i−j| ≤ Window; -1 disables it.
//   - SlopePenalty: added to every insertion/deletion step.
//   - ReturnPath:   backtrack the optimal path (FullMatrix only).
//
// Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	opts.MemoryMode = dtw.FullMatrix
//	dist, path, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
package dtw
