// SPDX-License-Identifier: MIT

package window

// SetPlatformParallelism swaps the platform probe and returns a restore func.
// Compiled only into the test binary.
func SetPlatformParallelism(fn func() int) (restore func()) {
	prev := platformParallelism
	platformParallelism = fn

	return func() { platformParallelism = prev }
}
