// SPDX-License-Identifier: MIT

package cover

import (
	"fmt"
	"math/bits"
)

// MinPresses returns the minimum number of buttons, each pressed at most once,
// whose bitmasks XOR to lights.
//
// Selections are visited in increasing numeric order; any selection whose
// popcount is not below the best found so far is skipped without folding.
//
// Errors:
//   - ErrTooManyButtons if len(buttons) exceeds the configured MaxButtons.
//   - ErrNoCover if no selection matches.
func MinPresses(lights uint32, buttons []uint32, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	if len(buttons) > o.MaxButtons {
		return 0, fmt.Errorf("%w: %d buttons, limit %d", ErrTooManyButtons, len(buttons), o.MaxButtons)
	}

	var (
		limit = uint64(1) << len(buttons)
		best  = len(buttons) + 1 // sentinel: nothing found yet
		p     uint64
		n     int
	)
	for p = 0; p < limit; p++ {
		n = bits.OnesCount64(p)
		if n >= best {
			continue
		}
		if Fold(p, buttons) == lights {
			best = n
		}
	}
	if best > len(buttons) {
		return 0, ErrNoCover
	}

	return best, nil
}

// Fold XORs together the buttons selected by the bits of selection.
// Bits past len(buttons) are ignored.
func Fold(selection uint64, buttons []uint32) uint32 {
	var acc uint32
	for i, b := range buttons {
		if selection&(1<<i) != 0 {
			acc ^= b
		}
	}

	return acc
}
