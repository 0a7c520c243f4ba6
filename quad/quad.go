// Copyright 2026 The quadpi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad estimates pi by composite quadrature of d/dx arctan(x)
// over [0,1], evaluated in fixed-precision decimal arithmetic and
// partitioned across parallel workers.
//
// Each worker accumulates a trapezoid-rule and a midpoint-rule partial
// sum over its slice of the iteration space; the two totals are then
// combined into a Simpson's-Rule estimate (2*mid + trap)/3, scaled by 4
// since the integral itself converges to pi/4.
package quad

import (
	"context"
	"fmt"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"quadpi/decimal"
)

// A Task describes one worker's slice of the iteration space.
type Task struct {
	Worker int   // identity; owns result slot Worker
	Start  int64 // first iteration index, inclusive
	End    int64 // last iteration index, exclusive
	Total  int64 // global iteration count
	Prec   int   // digit capacity for all decimal scratch values
}

// Partition splits total iterations over the given number of workers.
// Worker i covers [i*(total/workers), (i+1)*(total/workers)), except
// the last worker, whose range extends to total: when the division is
// inexact the final worker absorbs up to workers-1 extra iterations.
func Partition(total int64, workers, prec int) []Task {
	per := total / int64(workers)
	tasks := make([]Task, workers)
	for i := range tasks {
		end := int64(i+1) * per
		if i == workers-1 {
			end = total
		}
		tasks[i] = Task{
			Worker: i,
			Start:  int64(i) * per,
			End:    end,
			Total:  total,
			Prec:   prec,
		}
	}
	return tasks
}

// ctxCheckMask: workers poll for cancellation every 4096 iterations.
const ctxCheckMask = 1<<12 - 1

// integrate runs the quadrature fold over t's index range and returns
// the trapezoid and midpoint partial sums. All arithmetic is done in
// decimal scratch registers of t.Prec digits; the operation order
// matches the reference computation exactly, as truncation makes the
// result order-sensitive.
func (t Task) integrate(ctx context.Context) (trap, mid *decimal.Dec, err error) {
	trap = decimal.New(t.Prec)
	mid = decimal.New(t.Prec)

	// h = 1/total, computed once
	h := decimal.New(t.Prec)
	tmp := decimal.New(t.Prec)
	tmp.SetUint64(uint64(t.Total))
	h.Uint64Quo(1, tmp)

	// running midpoint coordinate, starting at (start + 1/2) * h
	inc := decimal.New(t.Prec)
	half := decimal.New(t.Prec).QuoUint64(h, 2)
	inc.SetUint64(uint64(t.Start))
	inc.Mul(inc, h)
	inc.Add(inc, half)

	left := decimal.New(t.Prec)
	right := decimal.New(t.Prec)
	for k := t.Start; k < t.End; k++ {
		if k&ctxCheckMask == 0 {
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			default:
			}
		}

		// trapezoid: average the edges k*h and (k+1)*h, then
		// h / (1 + avg^2)
		left.SetUint64(uint64(k))
		left.Mul(left, h)
		right.SetUint64(uint64(k + 1))
		right.Mul(right, h)
		tmp.Add(left, right)
		tmp.QuoUint64(tmp, 2)
		tmp.Mul(tmp, tmp)
		tmp.AddUint64(tmp, 1)
		tmp.Uint64Quo(1, tmp)
		tmp.Mul(tmp, h)
		trap.Add(trap, tmp)

		// midpoint: h / (1 + inc^2), then advance inc by h
		tmp.Mul(inc, inc)
		tmp.AddUint64(tmp, 1)
		tmp.Uint64Quo(1, tmp)
		tmp.Mul(tmp, h)
		mid.Add(mid, tmp)
		inc.Add(inc, h)
	}
	return trap, mid, nil
}

// Config holds the inputs of an estimation run.
type Config struct {
	Iterations int64 // quadrature subdivisions of [0,1]
	Workers    int   // parallel workers
	Prec       int   // decimal digits carried through the arithmetic
}

func (cfg Config) validate() error {
	if cfg.Iterations < 1 {
		return fmt.Errorf("quad: iterations must be >= 1, got %d", cfg.Iterations)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("quad: workers must be >= 1, got %d", cfg.Workers)
	}
	if cfg.Prec < 1 {
		return fmt.Errorf("quad: precision must be >= 1, got %d", cfg.Prec)
	}
	// the largest integer loaded into a decimal register is Iterations
	// itself; reject configurations that would overflow it
	if n := len(fmt.Sprint(cfg.Iterations)); n > cfg.Prec {
		return fmt.Errorf("quad: %d iterations need at least %d digits of precision, got %d",
			cfg.Iterations, n, cfg.Prec)
	}
	return nil
}

// sums is one worker's result slot. Each slot is written exactly once
// by its owning worker and read only after the errgroup barrier.
type sums struct {
	trap, mid *decimal.Dec
}

// Estimate computes pi with cfg.Iterations quadrature steps spread over
// cfg.Workers parallel workers, carrying cfg.Prec decimal digits. Any
// worker failure aborts the whole run.
func Estimate(ctx context.Context, cfg Config) (*decimal.Dec, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tasks := Partition(cfg.Iterations, cfg.Workers, cfg.Prec)
	slots := make([]sums, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			glog.V(2).Infof("worker %d: range [%d, %d)", t.Worker, t.Start, t.End)
			trap, mid, err := t.integrate(ctx)
			if err != nil {
				return fmt.Errorf("quad: worker %d: %w", t.Worker, err)
			}
			slots[t.Worker] = sums{trap: trap, mid: mid}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// reduce the per-worker partial sums
	trap := decimal.New(cfg.Prec)
	mid := decimal.New(cfg.Prec)
	for _, s := range slots {
		trap.Add(trap, s.trap)
		mid.Add(mid, s.mid)
	}

	// Simpson's Rule: ((2*mid + trap) / 3) * 4, in exactly this order
	pi := decimal.New(cfg.Prec)
	pi.MulUint64(mid, 2)
	pi.Add(pi, trap)
	pi.QuoUint64(pi, 3)
	pi.MulUint64(pi, 4)
	return pi, nil
}

// EstimateFloat64 is the native floating-point rendition of Estimate:
// identical partitioning, workers and reduction, with each arithmetic
// step a single hardware operation.
func EstimateFloat64(ctx context.Context, iterations int64, workers int) (float64, error) {
	if iterations < 1 {
		return 0, fmt.Errorf("quad: iterations must be >= 1, got %d", iterations)
	}
	if workers < 1 {
		return 0, fmt.Errorf("quad: workers must be >= 1, got %d", workers)
	}
	tasks := Partition(iterations, workers, 0)
	traps := make([]float64, len(tasks))
	mids := make([]float64, len(tasks))

	g, ctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			h := 1 / float64(t.Total)
			inc := (float64(t.Start) + 0.5) * h
			var trap, mid float64
			for k := t.Start; k < t.End; k++ {
				if k&ctxCheckMask == 0 {
					select {
					case <-ctx.Done():
						return fmt.Errorf("quad: worker %d: %w", t.Worker, ctx.Err())
					default:
					}
				}
				avg := (float64(k)*h + float64(k+1)*h) / 2
				trap += h / (1 + avg*avg)
				mid += h / (1 + inc*inc)
				inc += h
			}
			traps[t.Worker] = trap
			mids[t.Worker] = mid
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var trap, mid float64
	for i := range traps {
		trap += traps[i]
		mid += mids[i]
	}
	return (2*mid + trap) / 3 * 4, nil
}
