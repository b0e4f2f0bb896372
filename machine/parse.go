// SPDX-License-Identifier: MIT

package machine

import (
	"fmt"
	"io"
	"strings"

	"github.com/djkoloski/aoc-2025/input"
)

// Parse reads one machine line.
//
// Pieces are separated by whitespace: the first must be the light pattern,
// the last the joltage list, and everything between a button. A button with
// an empty list or a light index past MaxLights is rejected, as is a joltage
// list whose length differs from the pattern's.
func Parse(line string) (Machine, error) {
	pieces := strings.Fields(line)
	if len(pieces) < 2 {
		return Machine{}, fmt.Errorf("%w: want at least a light pattern and joltages, got %q", ErrMalformed, line)
	}

	var (
		m     Machine
		width int
		err   error
	)
	if m.Lights, width, err = parseLights(pieces[0]); err != nil {
		return Machine{}, err
	}
	if m.Joltages, err = parseJoltages(pieces[len(pieces)-1]); err != nil {
		return Machine{}, err
	}
	if len(m.Joltages) != width {
		return Machine{}, fmt.Errorf("%w: %d lights but %d joltages", ErrMalformed, width, len(m.Joltages))
	}
	m.Buttons = make([]uint32, 0, len(pieces)-2)
	for _, p := range pieces[1 : len(pieces)-1] {
		b, err := parseButton(p)
		if err != nil {
			return Machine{}, err
		}
		m.Buttons = append(m.Buttons, b)
	}

	return m, nil
}

// ParseAll reads one machine per non-blank line of r.
func ParseAll(r io.Reader) ([]Machine, error) {
	return input.Lines(r, Parse)
}

func parseLights(s string) (uint32, int, error) {
	body, ok := enclosed(s, '[', ']')
	if !ok {
		return 0, 0, fmt.Errorf("%w: light pattern %q is not bracketed", ErrMalformed, s)
	}
	if len(body) == 0 || len(body) > MaxLights {
		return 0, 0, fmt.Errorf("%w: light pattern %q has %d lights", ErrMalformed, s, len(body))
	}
	var mask uint32
	for i, c := range body {
		switch c {
		case '#':
			mask |= 1 << i
		case '.':
		default:
			return 0, 0, fmt.Errorf("%w: light pattern %q has %q at %d", ErrMalformed, s, c, i)
		}
	}

	return mask, len(body), nil
}

func parseButton(s string) (uint32, error) {
	body, ok := enclosed(s, '(', ')')
	if !ok {
		return 0, fmt.Errorf("%w: button %q is not parenthesized", ErrMalformed, s)
	}
	idx, err := input.ParseIntList[uint8](body, ",")
	if err != nil {
		return 0, fmt.Errorf("%w: button %q: %w", ErrMalformed, s, err)
	}
	var mask uint32
	for _, i := range idx {
		if i >= MaxLights {
			return 0, fmt.Errorf("%w: button %q touches light %d", ErrMalformed, s, i)
		}
		mask |= 1 << i
	}

	return mask, nil
}

func parseJoltages(s string) ([]int, error) {
	body, ok := enclosed(s, '{', '}')
	if !ok {
		return nil, fmt.Errorf("%w: joltages %q are not braced", ErrMalformed, s)
	}
	out, err := input.ParseIntList[int](body, ",")
	if err != nil {
		return nil, fmt.Errorf("%w: joltages %q: %w", ErrMalformed, s, err)
	}
	for i, t := range out {
		if t < 0 {
			return nil, fmt.Errorf("%w: joltage %d is negative (%d)", ErrMalformed, i, t)
		}
	}

	return out, nil
}

// enclosed strips a single left/right delimiter pair from s.
func enclosed(s string, left, right byte) (string, bool) {
	if len(s) < 2 || s[0] != left || s[len(s)-1] != right {
		return "", false
	}

	return s[1 : len(s)-1], true
}
