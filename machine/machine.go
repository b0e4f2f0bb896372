// SPDX-License-Identifier: MIT

// Package machine models one factory machine: a row of indicator lights,
// the buttons wired to them, and the joltage each light's counter must reach.
//
// A machine is written on a single line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// The bracket group is the desired light pattern ('#' on, '.' off, light 0
// leftmost), each parenthesized group lists the lights one button touches, and
// the braced group lists the joltage targets, one per light.
//
// Solve answers both questions for a machine: the fewest presses that toggle
// the lights into the pattern (package cover), and the fewest presses that
// drive every counter to its target (package joltage).
package machine

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// MaxLights is the widest machine a 32-bit light mask can describe.
const MaxLights = 32

var (
	// ErrMalformed is returned by Parse for text that is not a machine line.
	ErrMalformed = errors.New("machine: malformed line")

	// ErrInvalidMachine is returned by Validate for a structurally unsound machine.
	ErrInvalidMachine = errors.New("machine: invalid machine")
)

// Machine is one parsed input line.
// Bit i of Lights and of each button mask refers to light i.
type Machine struct {
	Lights   uint32
	Buttons  []uint32
	Joltages []int
}

// Width returns the number of lights (equal to the number of joltage targets).
func (m Machine) Width() int { return len(m.Joltages) }

// Validate checks the invariants both solvers rely on.
func (m Machine) Validate() error {
	w := m.Width()
	if w == 0 || w > MaxLights {
		return fmt.Errorf("%w: %d lights", ErrInvalidMachine, w)
	}
	mask := uint32(1)<<w - 1 // all ones at 32 lights
	if m.Lights&^mask != 0 {
		return fmt.Errorf("%w: light %d is outside %d lights", ErrInvalidMachine, bits.Len32(m.Lights)-1, w)
	}
	for j, b := range m.Buttons {
		if b&^mask != 0 {
			return fmt.Errorf("%w: button %d touches light %d of %d", ErrInvalidMachine, j, bits.Len32(b)-1, w)
		}
	}
	for i, t := range m.Joltages {
		if t < 0 {
			return fmt.Errorf("%w: light %d has negative joltage %d", ErrInvalidMachine, i, t)
		}
	}

	return nil
}

// String renders m in the line format accepted by Parse.
func (m Machine) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < m.Width(); i++ {
		if m.Lights&(1<<i) != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte(']')
	for _, b := range m.Buttons {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(lo.Map(lightsOf(b), func(i int, _ int) string {
			return strconv.Itoa(i)
		}), ","))
		sb.WriteByte(')')
	}
	sb.WriteString(" {")
	sb.WriteString(strings.Join(lo.Map(m.Joltages, func(t int, _ int) string {
		return strconv.Itoa(t)
	}), ","))
	sb.WriteByte('}')

	return sb.String()
}

// lightsOf lists the set bits of b in ascending order.
func lightsOf(b uint32) []int {
	out := make([]int, 0, bits.OnesCount32(b))
	for b != 0 {
		i := bits.TrailingZeros32(b)
		out = append(out, i)
		b &^= 1 << i
	}

	return out
}
