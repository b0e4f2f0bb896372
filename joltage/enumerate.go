// SPDX-License-Identifier: MIT

package joltage

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// ctxCheckMask sets how often (in iterations) a worker polls its context.
const ctxCheckMask = 1<<14 - 1

// Solve builds the system for buttons and targets and returns its optimal
// press assignment. See NewSystem and Enumerate.
func Solve(ctx context.Context, buttons []uint32, targets []int, opts ...Option) (Solution, error) {
	sys, err := NewSystem(buttons, targets, opts...)
	if err != nil {
		return Solution{}, err
	}

	return Enumerate(ctx, sys, opts...)
}

// Enumerate finds the free-variable assignment with the fewest total presses.
//
// Implementation:
//   - Stage 1: validate the system; reject it outright when a row past the rank
//     has a target that is not within Tolerance of zero (inconsistent).
//   - Stage 2: total = Π Range; fail with ErrSearchSpaceTooLarge above the cap.
//   - Stage 3: split [0,total) into contiguous chunks, one per worker. Each
//     worker decodes free values with an Odometer, computes every pivot value
//     p = target − Σ coef·free, and abandons the iteration on the first row
//     where round(p) < 0 or |round(p) − p| > Tolerance.
//   - Stage 4: reduce worker results by (total presses, iteration) and
//     rebuild the per-button presses of the winner.
//
// Ties are broken by the lowest iteration, so the result does not depend on
// the worker count.
//
// Errors:
//   - ErrInvalidSystem, ErrSearchSpaceTooLarge, ErrNoSolution, ctx.Err().
func Enumerate(ctx context.Context, sys *System, opts ...Option) (Solution, error) {
	o := gatherOptions(opts...)

	// Stage 1: structure and consistency.
	if err := sys.validate(); err != nil {
		return Solution{}, err
	}
	ev, err := newEvaluator(sys, o.Tolerance)
	if err != nil {
		return Solution{}, err
	}
	if row, ok := ev.consistent(); !ok {
		return Solution{}, fmt.Errorf("%w: row %d reduces to 0 = %g", ErrNoSolution, row, ev.residual[row])
	}

	// Stage 2: bound the search.
	total, err := sys.Combinations()
	if err != nil {
		return Solution{}, err
	}
	if total > o.MaxCombinations {
		return Solution{}, fmt.Errorf("%w: %d combinations, limit %d", ErrSearchSpaceTooLarge, total, o.MaxCombinations)
	}

	// Stage 3: scan chunks.
	workers := uint64(o.Workers)
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers
	results := make([]best, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := uint64(0); w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, total)
		slot := &results[w]
		g.Go(func() error {
			var err error
			*slot, err = ev.scan(gctx, sys.Ranges(), lo, hi)
			return err
		})
	}
	if err = g.Wait(); err != nil {
		return Solution{}, err
	}

	// Stage 4: reduce and rebuild.
	winner := best{}
	for _, r := range results {
		if r.better(winner) {
			winner = r
		}
	}
	if !winner.found {
		return Solution{}, fmt.Errorf("%w: none of %d combinations is integral and non-negative", ErrNoSolution, total)
	}

	return ev.rebuild(winner.iteration)
}

// best is a worker's running minimum.
type best struct {
	found     bool
	total     int
	iteration uint64
}

func (b best) better(than best) bool {
	if !b.found {
		return false
	}
	if !than.found {
		return true
	}

	return b.total < than.total || (b.total == than.total && b.iteration < than.iteration)
}

// evaluator is a read-only snapshot of the reduced rows, shared by workers.
type evaluator struct {
	sys      *System
	tol      float64
	target   []float64   // reduced target of each pivot row
	coef     [][]float64 // coef[i][k]: free variable k's coefficient in pivot row i
	residual []float64   // reduced target of every row (for the consistency check)
}

func newEvaluator(sys *System, tol float64) (*evaluator, error) {
	var (
		rows   = sys.Matrix.Rows()
		rank   = len(sys.Pivots)
		ev     = &evaluator{sys: sys, tol: tol}
		i, k   int
		v      float64
		rowErr error
	)
	ev.residual = make([]float64, rows)
	for i = 0; i < rows; i++ {
		if v, rowErr = sys.Matrix.At(i, sys.Buttons); rowErr != nil {
			return nil, rowErr
		}
		ev.residual[i] = v
	}
	ev.target = ev.residual[:rank]
	ev.coef = make([][]float64, rank)
	for i = 0; i < rank; i++ {
		ev.coef[i] = make([]float64, len(sys.Free))
		for k = 0; k < len(sys.Free); k++ {
			if v, rowErr = sys.Matrix.At(i, sys.Free[k].Index); rowErr != nil {
				return nil, rowErr
			}
			ev.coef[i][k] = v
		}
	}

	return ev, nil
}

// consistent reports the first row past the rank whose target is not ~0.
func (ev *evaluator) consistent() (int, bool) {
	for i := len(ev.sys.Pivots); i < len(ev.residual); i++ {
		if math.Abs(ev.residual[i]) > ev.tol {
			return i, false
		}
	}

	return 0, true
}

// eval back-substitutes one free assignment. When pivots is non-nil the
// rounded pivot values are written to it in pivot-row order.
func (ev *evaluator) eval(free []uint64, pivots []int) (int, bool) {
	var (
		total = 0
		p, c  float64
		i, k  int
	)
	for k = range free {
		total += int(free[k])
	}
	for i = range ev.target {
		p = ev.target[i]
		for k = range free {
			p -= ev.coef[i][k] * float64(free[k])
		}
		c = math.Round(p)
		if c < 0 || math.Abs(c-p) > ev.tol {
			return 0, false
		}
		total += int(c)
		if pivots != nil {
			pivots[i] = int(c)
		}
	}

	return total, true
}

// scan evaluates iterations [lo, hi).
func (ev *evaluator) scan(ctx context.Context, ranges []uint64, lo, hi uint64) (best, error) {
	var (
		res   best
		od    = NewOdometer(ranges)
		n     uint64
		total int
		ok    bool
	)
	od.Seek(lo)
	for n = lo; n < hi; n++ {
		if n&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return best{}, err
			}
		}
		if total, ok = ev.eval(od.Digits(), nil); ok && (!res.found || total < res.total) {
			res = best{found: true, total: total, iteration: n}
		}
		od.Next()
	}

	return res, nil
}

// rebuild expands a winning iteration into per-button presses.
func (ev *evaluator) rebuild(iteration uint64) (Solution, error) {
	var (
		free   = make([]uint64, len(ev.sys.Free))
		pivots = make([]int, len(ev.sys.Pivots))
		out    = Solution{Presses: make([]int, ev.sys.Buttons), Iteration: iteration}
		ok     bool
	)
	for k, v := range ev.sys.Free {
		free[k] = v.Value(iteration)
		out.Presses[v.Index] = int(free[k])
	}
	if out.Total, ok = ev.eval(free, pivots); !ok {
		return Solution{}, fmt.Errorf("%w: iteration %d no longer feasible", ErrNoSolution, iteration)
	}
	for i, col := range ev.sys.Pivots {
		out.Presses[col] = pivots[i]
	}

	return out, nil
}
