// SPDX-License-Identifier: MIT

// Package reduce: id registry used by binding layers that dispatch reductions
// by numeric code instead of by function reference.
//
// Contract:
//   - Ids are dense, start at 0 and never change meaning.
//   - Enumeration walks ids upward from 0 and stops at the first unknown id,
//     so a binding can list reductions without being recompiled.

package reduce

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/ndwindow/numconv"
)

// meta holds the type-independent part of a registry row.
type meta struct {
	name string
	desc string
}

// catalog is indexed by ID.
var catalog = [...]meta{
	IDWindowMax: {
		name: "func_window_max",
		desc: "return the maximum value of the window",
	},
	IDWindowMin: {
		name: "func_window_min",
		desc: "return the minimum value of the window",
	},
	IDStdevDDOF0: {
		name: "func_stdev_ddof_0",
		desc: "population standard deviation (ddof=0) over the window using float64 values, then rounded to the input dtype",
	},
	IDStdevDDOF1: {
		name: "func_stdev_ddof_1",
		desc: "sample standard deviation (ddof=1) over the window using float64 values, then rounded to the input dtype",
	},
	IDAreaContrast: {
		name: "func_area_contrast",
		desc: "contrast metric sqrt(sum(x_i^i - running_sum_i))/len over the window; formula kept as-is for compatibility",
	},
	IDFastStd: {
		name: "func_fast_std",
		desc: "similar to standard deviation, trades precision for speed: integer addition for the mean, " +
			"float64 for the deviations, then rounded to the input dtype",
	},
	IDFastStdClamp: {
		name: "func_fast_std_clamp",
		desc: "run func_fast_std then double before converting back into the input dtype",
	},
	IDFastPopulationStd: {
		name: "func_fast_population_std",
		desc: "population standard deviation with an integer-accumulated mean; close to func_stdev_ddof_0",
	},
	IDFastSampleStd: {
		name: "func_fast_sample_std",
		desc: "sample standard deviation (divides by len-1) with an integer-accumulated mean; squares |x|-mean",
	},
	IDRMS: {
		name: "func_rms",
		desc: "root mean square sqrt(sum(x^2)/len) of the window",
	},
}

// String returns the registry name of id, or "ID(n)" when unknown.
func (id ID) String() string {
	if m, ok := lookupMeta(id); ok {
		return m.name
	}

	return fmt.Sprintf("ID(%d)", int(id))
}

// lookupMeta returns the catalog row for id.
func lookupMeta(id ID) (meta, bool) {
	if id < 0 || int(id) >= len(catalog) {
		return meta{}, false
	}

	return catalog[id], true
}

// funcFor instantiates the reduction registered under id for T.
func funcFor[T numconv.Integer](id ID) (Func[T], bool) {
	switch id {
	case IDWindowMax:
		return WindowMax[T], true
	case IDWindowMin:
		return WindowMin[T], true
	case IDStdevDDOF0:
		return StdevDDOF0[T], true
	case IDStdevDDOF1:
		return StdevDDOF1[T], true
	case IDAreaContrast:
		return AreaContrast[T], true
	case IDFastStd:
		return FastStd[T], true
	case IDFastStdClamp:
		return FastStdClamp[T], true
	case IDFastPopulationStd:
		return FastPopulationStd[T], true
	case IDFastSampleStd:
		return FastSampleStd[T], true
	case IDRMS:
		return RMS[T], true
	default:
		return nil, false
	}
}

// Lookup returns the registry entry for id instantiated for element type T.
// Errors: ErrUnknownReduction.
func Lookup[T numconv.Integer](id ID) (Entry[T], error) {
	m, ok := lookupMeta(id)
	if !ok {
		return Entry[T]{}, fmt.Errorf("Lookup(%d): %w", int(id), ErrUnknownReduction)
	}
	fn, ok := funcFor[T](id)
	if !ok {
		return Entry[T]{}, fmt.Errorf("Lookup(%d): %w", int(id), ErrUnknownReduction)
	}

	return Entry[T]{ID: id, Name: m.name, Description: m.desc, Func: fn}, nil
}

// Name returns the registry name of id.
func Name(id ID) (string, error) {
	m, ok := lookupMeta(id)
	if !ok {
		return "", fmt.Errorf("Name(%d): %w", int(id), ErrUnknownReduction)
	}

	return m.name, nil
}

// Description returns the human-readable description of id.
func Description(id ID) (string, error) {
	m, ok := lookupMeta(id)
	if !ok {
		return "", fmt.Errorf("Description(%d): %w", int(id), ErrUnknownReduction)
	}

	return m.desc, nil
}

// ByName resolves a registry name such as "func_fast_std" to its id.
func ByName(name string) (ID, error) {
	_, idx, ok := lo.FindIndexOf(catalog[:], func(m meta) bool { return m.name == name })
	if !ok {
		return 0, fmt.Errorf("ByName(%q): %w", name, ErrUnknownReduction)
	}

	return ID(idx), nil
}

// Entries enumerates the registry for T: ids 0, 1, 2, ... until the first
// id without an entry.
func Entries[T numconv.Integer]() []Entry[T] {
	var out []Entry[T]
	for id := ID(0); ; id++ {
		e, err := Lookup[T](id)
		if err != nil {
			return out
		}
		out = append(out, e)
	}
}

// Count returns the number of registered reductions.
func Count() int {
	n := 0
	for {
		if _, ok := lookupMeta(ID(n)); !ok {
			return n
		}
		n++
	}
}
