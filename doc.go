// Package aoc2025 solves the factory button machines: for every machine, find
// the fewest button presses that set its indicator lights and the fewest that
// charge its joltage counters.
//
// What's inside?
//
//	matrix/   dense float64 matrices and Gauss–Jordan elimination over a column prefix
//	cover/    minimum XOR subset cover for the indicator lights
//	joltage/  reduced linear systems, free variables and the integer press search
//	machine/  the machine record, its line parser and batch solving
//	input/    line-oriented input helpers
//	cmd/day10 the command-line driver
//
// Quick start:
//
//	ms, err := machine.ParseAll(f)
//	if err != nil { ... }
//	ans, err := machine.SolveAll(ctx, ms, machine.WithParallelism(4))
//	fmt.Println(ans.Lights, ans.Joltage)
//
// Every solver is deterministic: the same input and options give the same
// answer regardless of worker counts.
package aoc2025
