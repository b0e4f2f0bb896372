// SPDX-License-Identifier: MIT

package machine

import (
	"context"
	"fmt"

	"github.com/djkoloski/aoc-2025/cover"
	"github.com/djkoloski/aoc-2025/joltage"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Part selects which of a machine's two questions to answer.
type Part int

const (
	// PartLights asks for the fewest presses that produce the light pattern.
	PartLights Part = iota + 1
	// PartJoltage asks for the fewest presses that reach every joltage target.
	PartJoltage
)

func (p Part) String() string {
	switch p {
	case PartLights:
		return "lights"
	case PartJoltage:
		return "joltage"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// DefaultParallelism is the number of machines SolveAll works on at once.
const DefaultParallelism = 1

const panicParallelismInvalid = "machine: WithParallelism: n must be >= 1"

// Answer holds both minimal press counts for one machine (or a batch sum).
type Answer struct {
	Lights  int
	Joltage int
}

// Option configures Solve and SolveAll.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	Parallelism int
	Cover       []cover.Option
	Joltage     []joltage.Option
	// OnSolved, when set, is called after each machine's part is solved.
	// SolveAll may call it from several goroutines at once.
	OnSolved func(index int, part Part, presses int)
}

// WithParallelism bounds how many machines SolveAll solves concurrently.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.Parallelism = n }
}

// WithCoverOptions forwards options to cover.MinPresses.
func WithCoverOptions(opts ...cover.Option) Option {
	return func(o *Options) { o.Cover = append(o.Cover, opts...) }
}

// WithJoltageOptions forwards options to joltage.Solve.
func WithJoltageOptions(opts ...joltage.Option) Option {
	return func(o *Options) { o.Joltage = append(o.Joltage, opts...) }
}

// WithOnSolved installs a per-machine completion hook.
func WithOnSolved(fn func(index int, part Part, presses int)) Option {
	return func(o *Options) { o.OnSolved = fn }
}

func gatherOptions(opts ...Option) Options {
	o := Options{Parallelism: DefaultParallelism}
	for _, set := range opts {
		set(&o)
	}

	return o
}

// Solve answers both questions for m.
func Solve(ctx context.Context, m Machine, opts ...Option) (Answer, error) {
	o := gatherOptions(opts...)

	var (
		ans Answer
		err error
	)
	if ans.Lights, err = solvePart(ctx, m, PartLights, o); err != nil {
		return Answer{}, err
	}
	if ans.Joltage, err = solvePart(ctx, m, PartJoltage, o); err != nil {
		return Answer{}, err
	}

	return ans, nil
}

// SolvePart answers one question for m.
func SolvePart(ctx context.Context, m Machine, part Part, opts ...Option) (int, error) {
	return solvePart(ctx, m, part, gatherOptions(opts...))
}

// SumPart solves part for every machine and returns the sum of the minimal
// press counts.
//
// Machines are solved by up to Options.Parallelism goroutines. The first
// failure cancels the rest and is returned annotated with the machine's index.
func SumPart(ctx context.Context, machines []Machine, part Part, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	presses := make([]int, len(machines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallelism)
	for i := range machines {
		i := i
		g.Go(func() error {
			n, err := solvePart(gctx, machines[i], part, o)
			if err != nil {
				return fmt.Errorf("machine %d: %w", i, err)
			}
			presses[i] = n
			if o.OnSolved != nil {
				o.OnSolved(i, part, n)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return lo.Sum(presses), nil
}

// SolveAll sums both answers over machines, lights first.
func SolveAll(ctx context.Context, machines []Machine, opts ...Option) (Answer, error) {
	var (
		ans Answer
		err error
	)
	if ans.Lights, err = SumPart(ctx, machines, PartLights, opts...); err != nil {
		return Answer{}, err
	}
	if ans.Joltage, err = SumPart(ctx, machines, PartJoltage, opts...); err != nil {
		return Answer{}, err
	}

	return ans, nil
}

func solvePart(ctx context.Context, m Machine, part Part, o Options) (int, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	switch part {
	case PartLights:
		n, err := cover.MinPresses(m.Lights, m.Buttons, o.Cover...)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", part, err)
		}
		return n, nil
	case PartJoltage:
		sol, err := joltage.Solve(ctx, m.Buttons, m.Joltages, o.Joltage...)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", part, err)
		}
		return sol.Total, nil
	default:
		return 0, fmt.Errorf("machine: unknown %s", part)
	}
}
