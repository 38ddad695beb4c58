// SPDX-License-Identifier: MIT

package reduce

import (
	"github.com/katalvlaran/ndwindow/ndarray"
	"github.com/katalvlaran/ndwindow/numconv"
)

// Func reduces one window to a single element.
type Func[T numconv.Integer] func(w ndarray.View[T]) T

// ID identifies a reduction in the registry. Ids are dense and start at 0.
type ID int

// Registry ids. The numeric values are part of the public contract.
const (
	IDWindowMax ID = iota
	IDWindowMin
	IDStdevDDOF0
	IDStdevDDOF1
	IDAreaContrast
	IDFastStd
	IDFastStdClamp
	IDFastPopulationStd
	IDFastSampleStd
	IDRMS
)

// Entry is one registry row: the reduction instantiated for T plus its metadata.
type Entry[T numconv.Integer] struct {
	ID          ID
	Name        string
	Description string
	Func        Func[T]
}
