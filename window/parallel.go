// SPDX-License-Identifier: MIT

package window

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ndwindow/ndarray"
	"github.com/katalvlaran/ndwindow/numconv"
	"github.com/katalvlaran/ndwindow/reduce"
)

// ApplyParallel computes the same array as Apply, splitting the work across
// goroutines.
// Implementation:
//   - Stage 1: validate inputs exactly like Apply and resolve the worker count
//     from opts (override, optional SET_THREADS, platform, fallback 12).
//   - Stage 2: partition the longest axis with NewSplitter and copy every
//     chunk out of a, so each worker owns its data.
//   - Stage 3: run one goroutine per chunk in an errgroup and wait for all.
//   - Stage 4: Restack the results in boundary order.
//
// Behavior highlights:
//   - The partition is fixed up front; there is no rebalancing.
//   - A panicking reduction fails the whole call with a *WorkerError
//     (errors.Is(err, ErrWorkerFailed)); no partial output is returned.
//   - There is no cancellation: every started worker runs to completion.
//
// Errors are those of Apply; in particular win must already have a's rank
// (see ndarray.PadWindow).
//
// The result is element-for-element equal to Apply(a, win, fn) for any
// worker count, provided fn is a pure function of its window.
func ApplyParallel[T numconv.Integer](a *ndarray.Array[T], win ndarray.Shape, fn reduce.Func[T], opts ...Option) (*ndarray.Array[T], error) {
	o := gatherOptions(opts...)
	if err := validateInput(a, win, fn); err != nil {
		return nil, fmt.Errorf("%s: %w", opApplyParallel, err)
	}

	workers := o.resolveWorkers()
	sp, err := NewSplitter(a.Shape(), win, workers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opApplyParallel, err)
	}
	bounds := sp.Boundaries()
	o.logger.Debug("split plan",
		"shape", a.Shape().String(), "window", win.String(),
		"axis", sp.Axis(), "workers", workers, "chunks", len(bounds))

	chunks := make([]*ndarray.Array[T], len(bounds))
	for k, b := range bounds {
		v, err := a.Slice(b.Start, b.End, b.Axis)
		if err != nil {
			return nil, fmt.Errorf("%s: chunk %d: %w", opApplyParallel, k, err)
		}
		chunks[k] = v.Clone()
	}

	results := make([]*ndarray.Array[T], len(chunks))
	var g errgroup.Group
	for k := range chunks {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerError{Chunk: k, Boundary: bounds[k], Value: r}
				}
			}()
			out, err := apply(chunks[k].View(), win, fn)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", k, err)
			}
			results[k] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opApplyParallel, err)
	}

	out, err := Restack(sp, results)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opApplyParallel, err)
	}
	o.logger.Debug("restacked", "axis", sp.Axis(), "chunks", len(results), "shape", out.Shape().String())

	return out, nil
}
