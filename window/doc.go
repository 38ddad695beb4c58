// SPDX-License-Identifier: MIT

// Package window runs a reduction over every fixed-shape window of an
// N-dimensional integer array (rank 1..5), sequentially or in parallel.
//
// 🚀 Entry points:
//
//	out, err := window.Apply(a, ndarray.Shape{3, 3}, reduce.FastStd[uint8])
//	out, err := window.ApplyParallel(a, ndarray.Shape{3, 3}, reduce.FastStd[uint8],
//		window.WithWorkers(8))
//
// The output shape is a.Shape().Reduced(win): max(dim - (win-1), 0) per axis.
// Window shapes must have the array's rank; ndarray.PadWindow builds one
// from a shorter or longer list.
//
// ✨ Parallel engine:
//   - NewSplitter cuts the longest axis into chunks overlapping by win-1.
//   - Each chunk is copied and reduced by Apply's body on its own goroutine
//     (golang.org/x/sync/errgroup); the coordinator waits for all of them.
//   - Restack concatenates the chunk results in boundary order, so the
//     output equals Apply's for any worker count.
//
// ⚙️ Worker count (resolved per call, never cached):
//
//	WithWorkers(n) in [1,99]  →  SET_THREADS (only with WithWorkersFromEnv)
//	→  runtime.GOMAXPROCS(0)  →  12
//
// Invalid configuration is logged at debug level (WithLogger) and skipped.
//
// ⚠️ Errors:
//
//	Shape, window and nil-argument problems, as well as a panicking reduction
//	(*WorkerError, ErrWorkerFailed), fail the whole call. Partial results are
//	never returned.
package window
