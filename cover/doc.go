// SPDX-License-Identifier: MIT

// Package cover solves the indicator-light half of a button machine: find the
// fewest buttons, each pressed at most once, whose XOR equals the target lights.
//
// MinPresses enumerates every selection of buttons as a bitmask and keeps the
// smallest popcount whose XOR-fold equals the target.
//
//   - Complexity: O(2ᴮ · B) for B buttons.
//   - Memory:     O(1).
//
// The exponential search is a hard limit of the algorithm: MinPresses refuses
// inputs with more than MaxButtons buttons (DefaultMaxButtons unless
// overridden with WithMaxButtons) and returns ErrTooManyButtons instead of
// running for hours.
//
// If no selection reproduces the target, MinPresses returns ErrNoCover.
package cover
