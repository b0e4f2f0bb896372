// SPDX-License-Identifier: MIT
package joltage_test

import (
	"math/rand"
	"testing"

	"github.com/djkoloski/aoc-2025/joltage"
	"github.com/stretchr/testify/require"
)

// sample1 is [.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}.
var (
	sample1Buttons = []uint32{0b1000, 0b1010, 0b0100, 0b1100, 0b0101, 0b0011}
	sample1Targets = []int{3, 5, 4, 7}
)

func TestNewSystem_SampleMachine(t *testing.T) {
	sys, err := joltage.NewSystem(sample1Buttons, sample1Targets)
	require.NoError(t, err)

	require.Equal(t, 6, sys.Buttons)
	require.Equal(t, []int{0, 1, 2, 4}, sys.Pivots)
	require.Equal(t, []joltage.FreeVariable{
		{Index: 3, Base: 1, Range: 8}, // (2,3): max(4, 7) + 1
		{Index: 5, Base: 8, Range: 6}, // (0,1): max(3, 5) + 1
	}, sys.Free)
	require.Equal(t, []uint64{8, 6}, sys.Ranges())

	total, err := sys.Combinations()
	require.NoError(t, err)
	require.Equal(t, uint64(48), total)
}

func TestNewSystem_FullyDetermined(t *testing.T) {
	sys, err := joltage.NewSystem([]uint32{0b01, 0b10}, []int{3, 4})
	require.NoError(t, err)
	require.Empty(t, sys.Free)

	total, err := sys.Combinations()
	require.NoError(t, err)
	require.Equal(t, uint64(1), total)
}

func TestNewSystem_UntouchedButtonHasUnitRange(t *testing.T) {
	sys, err := joltage.NewSystem([]uint32{0, 0b1}, []int{2})
	require.NoError(t, err)
	require.Equal(t, []int{1}, sys.Pivots)
	require.Equal(t, []joltage.FreeVariable{{Index: 0, Base: 1, Range: 1}}, sys.Free)
}

func TestNewSystem_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		buttons []uint32
		targets []int
	}{
		{"no lights", []uint32{0b1}, nil},
		{"too many lights", nil, make([]int, 33)},
		{"negative target", []uint32{0b1}, []int{-1}},
		{"button past last light", []uint32{0b100}, []int{1, 1}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := joltage.NewSystem(tc.buttons, tc.targets)
			require.ErrorIs(t, err, joltage.ErrInvalidSystem)
		})
	}
}

func TestNewSystem_ThirtyTwoLights(t *testing.T) {
	targets := make([]int, 32)
	targets[31] = 4
	sys, err := joltage.NewSystem([]uint32{1 << 31}, targets)
	require.NoError(t, err)
	require.Equal(t, []int{0}, sys.Pivots)
}

// TestNewSystem_FreeColumnsMatchLeaderRule cross-checks the pivot-based
// classification against the bottom-up leader scan: a column is free when its
// lowest non-zero row already has a non-zero entry further left, or when the
// column is entirely zero.
func TestNewSystem_FreeColumnsMatchLeaderRule(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 300; trial++ {
		lights := 1 + rng.Intn(6)
		buttons := make([]uint32, 1+rng.Intn(9))
		for j := range buttons {
			buttons[j] = uint32(rng.Intn(1 << lights))
		}
		targets := make([]int, lights)
		for i := range targets {
			targets[i] = rng.Intn(10)
		}

		sys, err := joltage.NewSystem(buttons, targets)
		require.NoError(t, err)

		isFree := make(map[int]bool)
		for _, v := range sys.Free {
			isFree[v.Index] = true
		}
		for j := range buttons {
			leader := -1
			for i := sys.Matrix.Rows() - 1; i >= 0; i-- {
				if v, _ := sys.Matrix.At(i, j); v != 0 {
					leader = i
					break
				}
			}
			want := leader < 0
			for left := 0; leader >= 0 && left < j; left++ {
				if v, _ := sys.Matrix.At(leader, left); v != 0 {
					want = true
				}
			}
			require.Equalf(t, want, isFree[j], "trial %d column %d\n%s", trial, j, sys.Matrix)
		}
	}
}

func TestCombinations_Overflow(t *testing.T) {
	sys := &joltage.System{Free: []joltage.FreeVariable{
		{Index: 0, Base: 1, Range: 1 << 40},
		{Index: 1, Base: 1 << 40, Range: 1 << 40},
	}}
	_, err := sys.Combinations()
	require.ErrorIs(t, err, joltage.ErrSearchSpaceTooLarge)
}
