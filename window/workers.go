// SPDX-License-Identifier: MIT

package window

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// platformParallelism reports the usable CPU count; replaced in tests.
var platformParallelism = func() int { return runtime.GOMAXPROCS(0) }

// validWorkers reports whether n lies in [MinWorkers, MaxWorkers].
func validWorkers(n int) bool {
	return n >= MinWorkers && n <= MaxWorkers
}

// ResolveWorkers returns override when it lies in [MinWorkers, MaxWorkers].
// Otherwise it returns the platform parallelism, or DefaultWorkerFallback when
// the platform reports none. Pass 0 for "no override". The result is never 0.
// A nil logger discards.
func ResolveWorkers(override int, logger *slog.Logger) int {
	if logger == nil {
		logger = discard
	}
	if override == 0 {
		return platformWorkers(logger)
	}

	return overrideWorkers(override, logger)
}

// overrideWorkers accepts n when valid and falls back to the platform otherwise.
func overrideWorkers(n int, logger *slog.Logger) int {
	if validWorkers(n) {
		logger.Debug("worker count resolved", "source", "override", "workers", n)
		return n
	}
	logger.Debug("worker override rejected",
		"override", n, "min", MinWorkers, "max", MaxWorkers)

	return platformWorkers(logger)
}

// platformWorkers is the fallback tail of the resolution chain.
func platformWorkers(logger *slog.Logger) int {
	if n := platformParallelism(); n >= 1 {
		logger.Debug("worker count resolved", "source", "platform", "workers", n)
		return n
	}
	logger.Debug("worker count resolved", "source", "fallback", "workers", DefaultWorkerFallback)

	return DefaultWorkerFallback
}

// envWorkers reads EnvWorkers; ok is false when it is unset or unusable.
func envWorkers(logger *slog.Logger) (n int, ok bool) {
	raw, set := os.LookupEnv(EnvWorkers)
	if !set {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logger.Debug("worker env ignored", "env", EnvWorkers, "value", raw, "err", err)
		return 0, false
	}
	if !validWorkers(n) {
		logger.Debug("worker env ignored", "env", EnvWorkers, "value", n,
			"min", MinWorkers, "max", MaxWorkers)
		return 0, false
	}

	return n, true
}

// resolveWorkers applies the option chain: explicit override, then the
// environment (when enabled), then the platform, then the fixed fallback.
func (o Options) resolveWorkers() int {
	if o.hasWorkers {
		return overrideWorkers(o.workers, o.logger)
	}
	if o.fromEnv {
		if n, ok := envWorkers(o.logger); ok {
			o.logger.Debug("worker count resolved", "source", "env", "workers", n)
			return n
		}
	}

	return platformWorkers(o.logger)
}
