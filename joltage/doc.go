// SPDX-License-Identifier: MIT

// Package joltage solves the counter half of a button machine: press buttons
// a non-negative integer number of times so every light's counter reaches its
// target joltage, using as few presses as possible.
//
// The solver works in two phases:
//
//   - NewSystem builds the augmented lights × (buttons+1) matrix, reduces it
//     with matrix.Eliminate, and classifies every non-pivot button column as a
//     FreeVariable. Each free variable gets an exclusive bound
//     Range = 1 + max target over the lights it touches (a press adds one to
//     each of those lights, so it can never be pressed more often) and a
//     mixed-radix Base equal to the product of earlier ranges.
//
//   - Enumerate walks all Π Range assignments of the free variables with an
//     Odometer, back-substitutes each pivot row, accepts a row only when its
//     value rounds to a non-negative integer within Tolerance, and keeps the
//     assignment with the fewest total presses.
//
// Complexity:
//
//	NewSystem O(L·B·min(L,B)); Enumerate O(Π Range · rank · |free|).
//
// Enumerate fails fast with ErrSearchSpaceTooLarge when the product exceeds
// MaxCombinations, and returns ErrNoSolution when no assignment is feasible.
// WithWorkers splits the iteration range across goroutines; the result is
// identical to the single-worker run.
package joltage
