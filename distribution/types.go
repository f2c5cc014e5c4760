// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Parameter specifications and family descriptors.

package distribution

import "math/rand/v2"

// NumericKind tells a presentation layer how a parameter value should be
// entered and displayed.
type NumericKind int

const (
	// Real parameters take any float value within bounds.
	Real NumericKind = iota
	// Integer parameters are whole numbers; Sample truncates them.
	Integer
)

// String implements fmt.Stringer.
func (k NumericKind) String() string {
	if k == Integer {
		return "integer"
	}

	return "real"
}

// ParamSpec declares a single family parameter.
//
// Min and Max are hard bounds and never change. SliderMin and SliderMax is
// the initial UI-adjustable sub-range, always inside [Min, Max] and always
// containing Default.
type ParamSpec struct {
	Name      string
	Min       float64
	Max       float64
	Default   float64
	Step      float64
	SliderMin float64
	SliderMax float64
	Kind      NumericKind
}

// samplerFunc builds a draw function for already validated parameter values.
type samplerFunc func(p map[string]float64, src rand.Source) func() float64

// Family describes one registered noise family.
type Family struct {
	// Name is the catalog key, e.g. "normal".
	Name string

	// Params lists parameters in display order.
	Params []ParamSpec

	// Discrete reports whether drawn values are always whole numbers.
	Discrete bool

	// check, if non-nil, enforces cross-parameter constraints (e.g. low ≤ high).
	check func(p map[string]float64) error

	sampler samplerFunc
}

// Param returns the spec of the named parameter.
func (f Family) Param(name string) (ParamSpec, bool) {
	for _, ps := range f.Params {
		if ps.Name == name {
			return ps, true
		}
	}

	return ParamSpec{}, false
}

// Defaults returns a fresh map of parameter name → default value.
func (f Family) Defaults() map[string]float64 {
	out := make(map[string]float64, len(f.Params))
	for _, ps := range f.Params {
		out[ps.Name] = ps.Default
	}

	return out
}
