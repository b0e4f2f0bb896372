// SPDX-License-Identifier: MIT

package joltage

import (
	"errors"
	"math"

	"github.com/djkoloski/aoc-2025/matrix"
)

var (
	// ErrNoSolution is returned when no non-negative integer press assignment
	// reaches the targets.
	ErrNoSolution = errors.New("joltage: no feasible press assignment")

	// ErrSearchSpaceTooLarge is returned before enumerating when the number of
	// free-variable combinations overflows or exceeds MaxCombinations.
	ErrSearchSpaceTooLarge = errors.New("joltage: free-variable search space too large")

	// ErrInvalidSystem reports inconsistent inputs (no lights, negative targets,
	// button bits outside the light range, or a malformed System).
	ErrInvalidSystem = errors.New("joltage: invalid system")
)

const (
	// DefaultTolerance is the largest distance between a back-substituted
	// pivot value and its rounded integer that still counts as integral.
	DefaultTolerance = 0.01

	// DefaultMaxCombinations caps Π Range before enumeration starts.
	DefaultMaxCombinations uint64 = 1 << 32

	// DefaultWorkers runs the enumeration on the calling goroutine.
	DefaultWorkers = 1
)

const (
	panicToleranceInvalid = "joltage: WithTolerance: tol must be finite, in [0, 0.5)"
	panicMaxCombInvalid   = "joltage: WithMaxCombinations: n must be > 0"
	panicWorkersInvalid   = "joltage: WithWorkers: n must be >= 1"
)

// FreeVariable is a button column left under-determined by elimination.
type FreeVariable struct {
	Index int    // button column in the system
	Base  uint64 // mixed-radix place value: product of earlier ranges
	Range uint64 // exclusive upper bound on this button's presses
}

// Value decodes this variable's digit from a mixed-radix iteration counter.
func (v FreeVariable) Value(iteration uint64) uint64 {
	return iteration / v.Base % v.Range
}

// System is a reduced joltage system.
// Row i < len(Pivots) determines button Pivots[i]; Free lists the remaining buttons.
type System struct {
	Matrix  *matrix.Dense // reduced [A | b], Buttons+1 columns
	Buttons int
	Pivots  []int
	Free    []FreeVariable
}

// Solution is an optimal press assignment.
type Solution struct {
	Presses   []int  // per button, len == System.Buttons
	Total     int    // Σ Presses
	Iteration uint64 // mixed-radix index of the free-variable assignment
}

// Option configures NewSystem / Enumerate.
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	Tolerance       float64
	MaxCombinations uint64
	Workers         int
	Matrix          []matrix.Option
}

// WithTolerance overrides DefaultTolerance.
func WithTolerance(tol float64) Option {
	if tol < 0 || tol >= 0.5 || math.IsNaN(tol) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxCombinations overrides DefaultMaxCombinations.
func WithMaxCombinations(n uint64) Option {
	if n == 0 {
		panic(panicMaxCombInvalid)
	}

	return func(o *Options) { o.MaxCombinations = n }
}

// WithWorkers splits enumeration across n goroutines.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.Workers = n }
}

// WithMatrixOptions forwards options to matrix.Eliminate (e.g. matrix.WithEpsilon).
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.Matrix = append(o.Matrix, opts...) }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:       DefaultTolerance,
		MaxCombinations: DefaultMaxCombinations,
		Workers:         DefaultWorkers,
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
