// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used by the
// joltage solver: a row-major float64 matrix and an in-place Gauss–Jordan
// reduction that reports which columns became pivots.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with bounds-checked At/Set and deep Clone.
//   - Eliminate, reduced row-echelon form restricted to a column prefix so an
//     augmented target column is carried along but never pivoted on.
//   - Validators (ValidateNotNil, ValidateColumnPrefix, IsReduced) shared by
//     kernels and tests.
//
// Numeric policy:
//
//	Pivot search uses an exact non-zero test because inputs are small integers.
//	After every elimination step entries within Epsilon of zero are snapped to
//	exact zero, which keeps that test meaningful and makes Eliminate idempotent.
//
// Complexity:
//
//	NewDense O(r*c); At/Set O(1); Clone O(r*c); Eliminate O(r*c*min(r,k)).
package matrix
