// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and Eliminate tests.

package matrix_test

import (
	"testing"

	"github.com/djkoloski/aoc-2025/matrix"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// DenseOf builds a *Dense from a row literal or fails the test.
func DenseOf(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// augmented builds the lights × (buttons+1) system for button bitmasks and targets.
func augmented(t testing.TB, buttons []uint32, targets []float64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, len(targets), len(buttons)+1)
	for i := range targets {
		for j, b := range buttons {
			if b&(1<<i) != 0 {
				_ = m.Set(i, j, 1)
			}
		}
		_ = m.Set(i, len(buttons), targets[i])
	}

	return m
}
