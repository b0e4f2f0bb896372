// SPDX-License-Identifier: MIT

// Package matrix - Gauss–Jordan elimination over a column prefix.
//
// Purpose:
//   - Reduce an augmented system [A | b] to reduced row-echelon form while
//     never pivoting on the trailing target columns.
//   - Report the pivot column of every pivot row so callers can tell
//     determined (pivot) columns from under-determined (free) ones.
//
// Determinism:
//   - Columns are processed left to right, candidate rows top to bottom;
//     the first non-zero candidate wins. No partial pivoting by magnitude.

package matrix

import "math"

// ZeroPivot is the sentinel for detecting an empty pivot candidate.
const ZeroPivot = 0.0

const opEliminate = "Eliminate"

// Eliminate reduces m in place to reduced row-echelon form, restricted to the
// first maxCols columns, and returns the pivot column of each pivot row.
//
// Implementation (per column col, tracking the current pivot row):
//   - Stage 1: find the first row at or below the pivot row whose entry in col
//     is non-zero (exact test). If none, col is free and the pivot row stays.
//   - Stage 2: swap that row into the pivot position.
//   - Stage 3: divide the pivot row from col rightward by the pivot value so
//     the pivot entry becomes exactly 1.
//   - Stage 4: subtract (row's col entry) × pivot row from every other row,
//     snapping results within Epsilon of zero to exact zero.
//   - Stage 5: record col as a pivot and advance the pivot row.
//
// Columns at index ≥ maxCols are transformed along with their rows but are
// never used as pivots. len(result) is the rank of the leading block; rows at
// index ≥ len(result) are zero across the first maxCols columns.
//
// Re-running Eliminate on its own output leaves the matrix unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (maxCols outside [0, Cols()]).
//
// Complexity:
//   - Time O(r*c*min(r, maxCols)), Space O(min(r, maxCols)) for the pivot list.
func Eliminate(m *Dense, maxCols int, opts ...Option) ([]int, error) {
	if m == nil {
		return nil, matrixErrorf(opEliminate, ErrNilMatrix)
	}
	if err := ValidateColumnPrefix(m, maxCols); err != nil {
		return nil, matrixErrorf(opEliminate, err)
	}
	eps := gatherOptions(opts...).eps

	var (
		row, col, i, j int
		sel            int
		base, off      int
		leader, factor float64
		pivots         = make([]int, 0, min(m.r, maxCols))
	)
	for col = 0; row < m.r && col < maxCols; col++ {
		// Stage 1: first non-zero candidate at or below the pivot row.
		sel = -1
		for i = row; i < m.r; i++ {
			if m.data[i*m.c+col] != ZeroPivot {
				sel = i
				break
			}
		}
		if sel < 0 {
			continue // free column; pivot row does not advance
		}

		// Stage 2: bring it into position.
		if sel != row {
			if err := m.SwapRows(row, sel); err != nil {
				return nil, matrixErrorf(opEliminate, err)
			}
		}

		// Stage 3: normalize; entries left of col are already zero.
		base = row * m.c
		leader = m.data[base+col]
		for j = col; j < m.c; j++ {
			m.data[base+j] /= leader
		}
		m.data[base+col] = 1

		// Stage 4: clear col from every other row.
		for i = 0; i < m.r; i++ {
			if i == row {
				continue
			}
			off = i * m.c
			factor = m.data[off+col]
			if factor == ZeroPivot {
				continue
			}
			for j = col; j < m.c; j++ {
				m.data[off+j] = snap(m.data[off+j]-factor*m.data[base+j], eps)
			}
			m.data[off+col] = 0
		}

		// Stage 5: advance.
		pivots = append(pivots, col)
		row++
	}

	return pivots, nil
}

// snap returns 0 when |v| < eps, else v.
func snap(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}

	return v
}
