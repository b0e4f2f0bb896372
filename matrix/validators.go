// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/echelon checks here.
//  - Return sentinel errors wrapped with a validator tag.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateColumnPrefix ensures k selects a prefix [0,k) of m's columns.
// Assumes m is non-nil.
// Complexity: O(1).
func ValidateColumnPrefix(m Matrix, k int) error {
	if k < 0 || k > m.Cols() {
		return validatorErrorf("ValidateColumnPrefix", ErrOutOfRange)
	}

	return nil
}

// IsReduced reports whether m is in reduced row-echelon form with respect to
// pivots, where pivots[i] is the pivot column of row i:
//   - pivot columns strictly increase,
//   - each pivot entry is exactly 1 and its column is zero in every other row,
//   - row i has no non-zero entry left of its pivot,
//   - rows past len(pivots) are zero within the first maxCols columns.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad maxCols or pivot index).
//
// Complexity: O(r*maxCols).
func IsReduced(m Matrix, pivots []int, maxCols int) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, err
	}
	if err := ValidateColumnPrefix(m, maxCols); err != nil {
		return false, err
	}
	if len(pivots) > m.Rows() {
		return false, validatorErrorf("IsReduced", ErrOutOfRange)
	}

	var (
		i, j, r int
		v       float64
		err     error
	)
	prev := -1
	for i = 0; i < len(pivots); i++ {
		p := pivots[i]
		if p <= prev || p >= maxCols {
			return false, nil
		}
		prev = p
		for r = 0; r < m.Rows(); r++ {
			if v, err = m.At(r, p); err != nil {
				return false, err
			}
			if (r == i && v != 1) || (r != i && v != 0) {
				return false, nil
			}
		}
		for j = 0; j < p; j++ {
			if v, err = m.At(i, j); err != nil {
				return false, err
			}
			if v != 0 {
				return false, nil
			}
		}
	}
	for i = len(pivots); i < m.Rows(); i++ {
		for j = 0; j < maxCols; j++ {
			if v, err = m.At(i, j); err != nil {
				return false, err
			}
			if v != 0 {
				return false, nil
			}
		}
	}

	return true, nil
}

// RequireReduced is IsReduced as an error: ErrNotReduced when m does not match pivots.
func RequireReduced(m Matrix, pivots []int, maxCols int) error {
	ok, err := IsReduced(m, pivots, maxCols)
	if err != nil {
		return err
	}
	if !ok {
		return validatorErrorf("RequireReduced", ErrNotReduced)
	}

	return nil
}
