// SPDX-License-Identifier: MIT

package joltage

import (
	"fmt"
	"math/bits"

	"github.com/djkoloski/aoc-2025/matrix"
)

// NewSystem builds and reduces the joltage system for buttons and targets.
//
// Implementation:
//   - Stage 1: validate targets (non-empty, ≤ 32 lights, non-negative) and
//     that no button touches a light past len(targets).
//   - Stage 2: fill the augmented matrix; cell (i, j) is 1 when button j
//     touches light i, the last column holds targets[i].
//   - Stage 3: reduce with matrix.Eliminate over the button columns.
//   - Stage 4: every non-pivot button column becomes a FreeVariable, in
//     column order, with the running Base product.
//
// A button that touches no light gets Range 1: pressing it never helps.
//
// Errors:
//   - ErrInvalidSystem for bad inputs; matrix errors wrapped as-is.
func NewSystem(buttons []uint32, targets []int, opts ...Option) (*System, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate.
	if len(targets) == 0 || len(targets) > 32 {
		return nil, fmt.Errorf("%w: %d lights", ErrInvalidSystem, len(targets))
	}
	for i, t := range targets {
		if t < 0 {
			return nil, fmt.Errorf("%w: light %d has negative target %d", ErrInvalidSystem, i, t)
		}
	}
	width := uint32(1)<<len(targets) - 1 // wraps to all ones at 32 lights
	for j, b := range buttons {
		if b&^width != 0 {
			return nil, fmt.Errorf("%w: button %d touches light %d of %d",
				ErrInvalidSystem, j, bits.Len32(b)-1, len(targets))
		}
	}

	// Stage 2: augmented matrix.
	m, err := matrix.NewDense(len(targets), len(buttons)+1, o.Matrix...)
	if err != nil {
		return nil, fmt.Errorf("NewSystem: %w", err)
	}
	for i, t := range targets {
		for j, b := range buttons {
			if b&(1<<i) != 0 {
				if err = m.Set(i, j, 1); err != nil {
					return nil, fmt.Errorf("NewSystem: %w", err)
				}
			}
		}
		if err = m.Set(i, len(buttons), float64(t)); err != nil {
			return nil, fmt.Errorf("NewSystem: %w", err)
		}
	}

	// Stage 3: reduce.
	pivots, err := matrix.Eliminate(m, len(buttons), o.Matrix...)
	if err != nil {
		return nil, fmt.Errorf("NewSystem: %w", err)
	}

	// Stage 4: free variables.
	isPivot := make([]bool, len(buttons))
	for _, p := range pivots {
		isPivot[p] = true
	}
	var (
		free = make([]FreeVariable, 0, len(buttons)-len(pivots))
		base = uint64(1)
	)
	for j, b := range buttons {
		if isPivot[j] {
			continue
		}
		r := uint64(maxTouched(b, targets)) + 1
		free = append(free, FreeVariable{Index: j, Base: base, Range: r})
		base = saturatingMul(base, r)
	}

	return &System{
		Matrix:  m,
		Buttons: len(buttons),
		Pivots:  pivots,
		Free:    free,
	}, nil
}

// Combinations returns Π Range over the free variables (1 when there are none).
//
// Errors:
//   - ErrSearchSpaceTooLarge if the product overflows uint64.
func (s *System) Combinations() (uint64, error) {
	total := uint64(1)
	for _, v := range s.Free {
		hi, lo := bits.Mul64(total, v.Range)
		if hi != 0 {
			return 0, fmt.Errorf("%w: product overflows uint64", ErrSearchSpaceTooLarge)
		}
		total = lo
	}

	return total, nil
}

// Ranges returns the free variables' ranges in enumeration order.
func (s *System) Ranges() []uint64 {
	out := make([]uint64, len(s.Free))
	for k, v := range s.Free {
		out[k] = v.Range
	}

	return out
}

// validate checks the structural invariants Enumerate relies on.
func (s *System) validate() error {
	if s == nil || s.Matrix == nil {
		return fmt.Errorf("%w: nil system", ErrInvalidSystem)
	}
	if s.Matrix.Cols() != s.Buttons+1 {
		return fmt.Errorf("%w: %d columns for %d buttons", ErrInvalidSystem, s.Matrix.Cols(), s.Buttons)
	}
	if len(s.Pivots) > s.Matrix.Rows() || len(s.Pivots)+len(s.Free) != s.Buttons {
		return fmt.Errorf("%w: %d pivots and %d free variables for %d buttons",
			ErrInvalidSystem, len(s.Pivots), len(s.Free), s.Buttons)
	}
	seen := make([]bool, s.Buttons)
	mark := func(j int) error {
		if j < 0 || j >= s.Buttons || seen[j] {
			return fmt.Errorf("%w: column %d reused or out of range", ErrInvalidSystem, j)
		}
		seen[j] = true
		return nil
	}
	for _, p := range s.Pivots {
		if err := mark(p); err != nil {
			return err
		}
	}
	base := uint64(1)
	for _, v := range s.Free {
		if err := mark(v.Index); err != nil {
			return err
		}
		if v.Range == 0 || v.Base != base {
			return fmt.Errorf("%w: free column %d has base %d range %d, want base %d",
				ErrInvalidSystem, v.Index, v.Base, v.Range, base)
		}
		base = saturatingMul(base, v.Range)
	}
	if err := matrix.RequireReduced(s.Matrix, s.Pivots, s.Buttons); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSystem, err)
	}

	return nil
}

// maxTouched returns the largest target among the lights button b touches.
func maxTouched(b uint32, targets []int) int {
	best := 0
	for i, t := range targets {
		if b&(1<<i) != 0 && t > best {
			best = t
		}
	}

	return best
}

func saturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return ^uint64(0)
	}

	return lo
}
