// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/djkoloski/aoc-2025/matrix"
	"github.com/stretchr/testify/require"
)

// TestEliminate_SampleMachine reduces the first sample machine
// [.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7} by hand-checked steps.
func TestEliminate_SampleMachine(t *testing.T) {
	m := augmented(t, []uint32{0b1000, 0b1010, 0b0100, 0b1100, 0b0101, 0b0011}, []float64{3, 5, 4, 7})

	pivots, err := matrix.Eliminate(m, 6)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 4}, pivots)

	want := DenseOf(t, [][]float64{
		{1, 0, 0, 1, 0, -1, 2},
		{0, 1, 0, 0, 0, 1, 5},
		{0, 0, 1, 1, 0, -1, 1},
		{0, 0, 0, 0, 1, 1, 3},
	})
	require.Truef(t, want.Equal(m), "got\n%s", m)

	ok, err := matrix.IsReduced(m, pivots, 6)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestEliminate_NormalizesLeader checks division by a non-unit pivot.
func TestEliminate_NormalizesLeader(t *testing.T) {
	m := DenseOf(t, [][]float64{
		{2, 4, 6},
		{1, 3, 5},
	})

	pivots, err := matrix.Eliminate(m, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, pivots)
	require.Equal(t, "[1, 0, -1]\n[0, 1, 2]\n", m.String())
}

// TestEliminate_ZeroColumnIsFree keeps an all-zero column out of the pivot list
// without advancing the pivot row.
func TestEliminate_ZeroColumnIsFree(t *testing.T) {
	m := DenseOf(t, [][]float64{
		{0, 1, 2},
		{0, 1, 2},
	})

	pivots, err := matrix.Eliminate(m, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1}, pivots)
	require.Equal(t, "[0, 1, 2]\n[0, 0, 0]\n", m.String())
}

// TestEliminate_TargetColumnNeverPivots ensures the augmented column is carried
// but not eliminated against, even when it is the only non-zero entry.
func TestEliminate_TargetColumnNeverPivots(t *testing.T) {
	m := DenseOf(t, [][]float64{
		{1, 1, 2},
		{1, 1, 3},
	})

	pivots, err := matrix.Eliminate(m, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0}, pivots)
	require.Equal(t, "[1, 1, 2]\n[0, 0, 1]\n", m.String())
}

// TestEliminate_SnapsDrift shows that the default epsilon removes rounding
// residue that would otherwise become a spurious pivot.
func TestEliminate_SnapsDrift(t *testing.T) {
	rows := [][]float64{
		{0.1, 0.3, 0},
		{0.3, 0.9, 0},
	}

	snapped := DenseOf(t, rows)
	pivots, err := matrix.Eliminate(snapped, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0}, pivots)

	raw := DenseOf(t, rows)
	pivots, err = matrix.Eliminate(raw, 2, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, pivots)
}

// TestEliminate_Idempotent re-runs elimination on reduced output.
func TestEliminate_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		lights := 1 + rng.Intn(6)
		buttons := make([]uint32, 1+rng.Intn(8))
		for j := range buttons {
			buttons[j] = uint32(rng.Intn(1 << lights))
		}
		targets := make([]float64, lights)
		for i := range targets {
			targets[i] = float64(rng.Intn(20))
		}

		m := augmented(t, buttons, targets)
		first, err := matrix.Eliminate(m, len(buttons))
		require.NoError(t, err)
		once := m.Clone().(*matrix.Dense)

		second, err := matrix.Eliminate(m, len(buttons))
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.Truef(t, once.Equal(m), "trial %d changed on second pass:\n%s\n%s", trial, once, m)

		ok, err := matrix.IsReduced(m, first, len(buttons))
		require.NoError(t, err)
		require.Truef(t, ok, "trial %d not reduced:\n%s", trial, m)
	}
}

// TestEliminate_PreservesSolutions checks that a known solution of A·x = b
// still satisfies the reduced system.
func TestEliminate_PreservesSolutions(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		lights := 1 + rng.Intn(6)
		buttons := make([]uint32, 1+rng.Intn(7))
		x := make([]float64, len(buttons))
		for j := range buttons {
			buttons[j] = uint32(rng.Intn(1 << lights))
			x[j] = float64(rng.Intn(6))
		}
		targets := make([]float64, lights)
		for i := range targets {
			for j, b := range buttons {
				if b&(1<<i) != 0 {
					targets[i] += x[j]
				}
			}
		}

		m := augmented(t, buttons, targets)
		_, err := matrix.Eliminate(m, len(buttons))
		require.NoError(t, err)

		for i := 0; i < m.Rows(); i++ {
			row, err := m.Row(i)
			require.NoError(t, err)
			lhs := 0.0
			for j := range buttons {
				lhs += row[j] * x[j]
			}
			require.LessOrEqualf(t, math.Abs(lhs-row[len(buttons)]), 1e-9, "trial %d row %d", trial, i)
		}
	}
}

// TestEliminate_Errors covers nil and bad column prefixes.
func TestEliminate_Errors(t *testing.T) {
	_, err := matrix.Eliminate(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m := MustDense(t, 2, 3)
	_, err = matrix.Eliminate(m, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Eliminate(m, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	pivots, err := matrix.Eliminate(m, 0)
	require.NoError(t, err)
	require.Empty(t, pivots)
}
