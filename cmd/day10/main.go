// SPDX-License-Identifier: MIT

// Command day10 reads a file of machine descriptions and prints the fewest
// total button presses that (1) set every machine's indicator lights and
// (2) charge every machine's joltage counters.
//
// Usage:
//
//	day10 [-config file.yaml] [-workers n] [-parallel n] [-max-buttons n]
//	      [-max-combinations n] [-tolerance x] [-v] <input>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
