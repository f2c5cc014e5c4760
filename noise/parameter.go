// SPDX-License-Identifier: MIT
//
// File: parameter.go
// Role: A single tunable family parameter with hard bounds and a slider range.

package noise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scmforge/distribution"
)

// Parameter is one tunable value of a sub-distribution.
type Parameter struct {
	Name      string
	Min       float64
	Max       float64
	SliderMin float64
	SliderMax float64
	Value     float64
	Step      float64
	Kind      distribution.NumericKind
}

// newParameter starts a parameter at its catalog default.
func newParameter(ps distribution.ParamSpec) Parameter {
	return Parameter{
		Name:      ps.Name,
		Min:       ps.Min,
		Max:       ps.Max,
		SliderMin: ps.SliderMin,
		SliderMax: ps.SliderMax,
		Value:     ps.Default,
		Step:      ps.Step,
		Kind:      ps.Kind,
	}
}

// SetValue assigns v clamped to [Min, Max]. If the clamped value lies outside
// the slider range, the range is widened just enough to show it.
func (p *Parameter) SetValue(v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("%w: %s=NaN", ErrInvalidRange, p.Name)
	}
	v = clamp(v, p.Min, p.Max)
	if v < p.SliderMin {
		p.SliderMin = v
	}
	if v > p.SliderMax {
		p.SliderMax = v
	}
	p.Value = v

	return nil
}

// SetSliderRange sets the adjustable sub-range. Both ends are clamped to
// [Min, Max]; the current value is then clamped into the new range.
func (p *Parameter) SetSliderRange(lo, hi float64) error {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return fmt.Errorf("%w: %s slider [%g, %g]", ErrInvalidRange, p.Name, lo, hi)
	}
	p.SliderMin = clamp(lo, p.Min, p.Max)
	p.SliderMax = clamp(hi, p.Min, p.Max)
	p.Value = clamp(p.Value, p.SliderMin, p.SliderMax)

	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
