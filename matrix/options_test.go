// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/djkoloski/aoc-2025/matrix"
	"github.com/stretchr/testify/require"
)

// TestOptionsDefaults verifies the documented defaults.
func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestOptionsLastWriterWins applies setters in order.
func TestOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(
		matrix.WithEpsilon(1e-3),
		matrix.WithNoValidateNaNInf(),
		matrix.WithEpsilon(0),
		matrix.WithValidateNaNInf(),
	)
	require.Equal(t, 0.0, o.Epsilon())
	require.True(t, o.ValidateNaNInf())
}

// TestWithEpsilonPanics rejects nonsensical tolerances.
func TestWithEpsilonPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
}
