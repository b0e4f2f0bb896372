// SPDX-License-Identifier: MIT

package joltage

import "iter"

// Odometer is a mixed-radix counter over the cartesian product
// [0,ranges[0]) × [0,ranges[1]) × …, least significant digit first.
// Digit k at iteration n equals n / (Π ranges[:k]) % ranges[k], the same
// decoding as FreeVariable.Value.
type Odometer struct {
	ranges []uint64
	digits []uint64
}

// NewOdometer returns an odometer positioned at iteration 0.
func NewOdometer(ranges []uint64) *Odometer {
	return &Odometer{
		ranges: append([]uint64(nil), ranges...),
		digits: make([]uint64, len(ranges)),
	}
}

// Seek positions the odometer at the given iteration.
func (o *Odometer) Seek(iteration uint64) {
	for k, r := range o.ranges {
		if r == 0 {
			o.digits[k] = 0
			continue
		}
		o.digits[k] = iteration % r
		iteration /= r
	}
}

// Digits returns the current digits. The slice is reused by Next and Seek.
func (o *Odometer) Digits() []uint64 { return o.digits }

// Next advances by one. It returns false when the counter wraps back to zero.
func (o *Odometer) Next() bool {
	for k := range o.digits {
		o.digits[k]++
		if o.digits[k] < o.ranges[k] {
			return true
		}
		o.digits[k] = 0
	}

	return false
}

// All yields (iteration, digits) for every point of the product in order,
// starting from zero. digits is reused between steps.
// An empty range list yields exactly one empty tuple.
func (o *Odometer) All() iter.Seq2[uint64, []uint64] {
	return func(yield func(uint64, []uint64) bool) {
		for _, r := range o.ranges {
			if r == 0 {
				return
			}
		}
		o.Seek(0)
		for n := uint64(0); ; n++ {
			if !yield(n, o.digits) || !o.Next() {
				return
			}
		}
	}
}
