// SPDX-License-Identifier: MIT

// Package window: functional configuration of the parallel engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Nothing here is process-wide: every ApplyParallel call resolves its own
// worker count from the options it was given.

package window

import "log/slog"

// ---------- Defaults (single source of truth) ----------

const (
	// MinWorkers and MaxWorkers bound an accepted worker override.
	MinWorkers = 1
	MaxWorkers = 99

	// DefaultWorkerFallback is used when the platform reports no parallelism.
	DefaultWorkerFallback = 12

	// EnvWorkers is the environment variable consulted by WithWorkersFromEnv.
	EnvWorkers = "SET_THREADS"
)

const panicNilLogger = "window: WithLogger: logger must be non-nil"

// discard is the default logger: structured, but silent.
var discard = slog.New(slog.DiscardHandler)

// ---------- Public option type (functional) ----------

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers    int  // explicit override; validated at resolution time
	hasWorkers bool // WithWorkers was applied
	fromEnv    bool // consult EnvWorkers when no explicit override is set
	logger     *slog.Logger
}

// WithWorkers sets an explicit worker count. Values outside
// [MinWorkers, MaxWorkers] are not an error: they are logged at debug level
// and resolution falls back to the platform parallelism.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.workers = n
		o.hasWorkers = true
	}
}

// WithWorkersFromEnv reads EnvWorkers when the call starts. An explicit
// WithWorkers takes precedence. Unset, unparsable or out-of-range values fall
// back to the platform parallelism.
func WithWorkersFromEnv() Option {
	return func(o *Options) { o.fromEnv = true }
}

// WithLogger routes debug events (worker resolution, split plan, restack) to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{logger: discard}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
