// SPDX-License-Identifier: MIT

package reduce

import "errors"

// ErrUnknownReduction indicates a registry id or name with no entry.
var ErrUnknownReduction = errors.New("reduce: no reduction found for value")
