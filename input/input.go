// SPDX-License-Identifier: MIT

// Package input holds the small line-oriented readers shared by puzzle
// programs: one record per line, comma-separated integer lists.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrIntRange is returned when a parsed integer does not fit the target type.
var ErrIntRange = errors.New("input: integer out of range")

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Lines parses every non-blank line of r with parse, in order.
// Errors are annotated with the 1-based line number.
func Lines[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	var (
		sc   = bufio.NewScanner(r)
		out  []T
		line int
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		v, err := parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}

	return out, nil
}

// ParseIntList splits s on sep and parses each item as a base-10 integer of type T.
// Surrounding whitespace around items is ignored; empty items are errors.
func ParseIntList[T constraints.Integer](s, sep string) ([]T, error) {
	parts := strings.Split(s, sep)
	out := make([]T, len(parts))
	var zero T
	unsigned := zero-1 > zero
	for i, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("item %d %q: %w", i, p, err)
		}
		if (unsigned && v < 0) || int64(T(v)) != v {
			return nil, fmt.Errorf("item %d %q: %w", i, p, ErrIntRange)
		}
		out[i] = T(v)
	}

	return out, nil
}
