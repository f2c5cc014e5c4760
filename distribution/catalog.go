// SPDX-License-Identifier: MIT
//
// File: catalog.go
// Role: The registry of supported families and its read-only lookups.
// Determinism:
//   - Names() is sorted ascending.
//   - Family.Params keeps the declared display order.

package distribution

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Family names.
const (
	Normal          = "normal"
	LogNormal       = "lognormal"
	Uniform         = "uniform"
	Laplace         = "laplace"
	Poisson         = "poisson"
	Binomial        = "binomial"
	Bernoulli       = "bernoulli"
	DiscreteUniform = "discrete_uniform"
)

// DefaultFamily is the family assigned to a freshly created sub-distribution.
const DefaultFamily = Normal

// Shared parameter shapes.
var (
	locSpec = ParamSpec{Name: "loc", Min: -1000, Max: 1000, Default: 0, Step: 0.1, SliderMin: -10, SliderMax: 10}

	scaleSpec = ParamSpec{Name: "scale", Min: 0, Max: 1000, Default: 1, Step: 0.1, SliderMin: 0, SliderMax: 10}

	probSpec = ParamSpec{Name: "p", Min: 0, Max: 1, Default: 0.5, Step: 0.01, SliderMin: 0, SliderMax: 1}
)

var catalog = map[string]Family{
	Normal: {
		Name:   Normal,
		Params: []ParamSpec{locSpec, scaleSpec},
		sampler: func(p map[string]float64, src rand.Source) func() float64 {
			return distuv.Normal{Mu: p["loc"], Sigma: p["scale"], Src: src}.Rand
		},
	},
	LogNormal: {
		Name: LogNormal,
		Params: []ParamSpec{
			{Name: "mean", Min: -100, Max: 100, Default: 0, Step: 0.1, SliderMin: -5, SliderMax: 5},
			{Name: "sigma", Min: 0, Max: 100, Default: 1, Step: 0.1, SliderMin: 0, SliderMax: 5},
		},
		sampler: func(p map[string]float64, src rand.Source) func() float64 {
			return distuv.LogNormal{Mu: p["mean"], Sigma: p["sigma"], Src: src}.Rand
		},
	},
	Uniform: {
		Name: Uniform,
		Params: []ParamSpec{
			{Name: "low", Min: -1000, Max: 1000, Default: 0, Step: 0.1, SliderMin: -10, SliderMax: 10},
			{Name: "high", Min: -1000, Max: 1000, Default: 1, Step: 0.1, SliderMin: -10, SliderMax: 10},
		},
		check: lowNotAboveHigh,
		sampler: func(p map[string]float64, src rand.Source) func() float64 {
			if p["low"] == p["high"] {
				return constant(p["low"])
			}
			return distuv.Uniform{Min: p["low"], Max: p["high"], Src: src}.Rand
		},
	},
	Laplace: {
		Name:   Laplace,
		Params: []ParamSpec{locSpec, scaleSpec},
		sampler: func(p map[string]float64, src rand.Source) func() float64 {
			return distuv.Laplace{Mu: p["loc"], Scale: p["scale"], Src: src}.Rand
		},
	},
	Poisson: {
		Name:     Poisson,
		Discrete: true,
		Params: []ParamSpec{
			{Name: "lam", Min: 0, Max: 1000, Default: 1, Step: 0.1, SliderMin: 0, SliderMax: 20},
		},
		sampler: func(p map[string]float64, src rand.Source) func() float64 {
			return distuv.Poisson{Lambda: p["lam"], Src: src}.Rand
		},
	},
	Binomial: {
		Name:     Binomial,
		Discrete: true,
		Params: []ParamSpec{
			{Name: "n", Min: 0, Max: 1000, Default: 10, Step: 1, SliderMin: 0, SliderMax: 100, Kind: Integer},
			probSpec,
		},
		sampler: func(p map[string]float64, src rand.Source) func() float64 {
			return distuv.Binomial{N: p["n"], P: p["p"], Src: src}.Rand
		},
	},
	Bernoulli: {
		Name:     Bernoulli,
		Discrete: true,
		Params:   []ParamSpec{probSpec},
		sampler: func(p map[string]float64, src rand.Source) func() float64 {
			return distuv.Bernoulli{P: p["p"], Src: src}.Rand
		},
	},
	DiscreteUniform: {
		Name:     DiscreteUniform,
		Discrete: true,
		Params: []ParamSpec{
			{Name: "low", Min: -1000, Max: 1000, Default: 0, Step: 1, SliderMin: -10, SliderMax: 10, Kind: Integer},
			{Name: "high", Min: -1000, Max: 1000, Default: 10, Step: 1, SliderMin: -10, SliderMax: 10, Kind: Integer},
		},
		check: lowNotAboveHigh,
		sampler: func(p map[string]float64, src rand.Source) func() float64 {
			// Draw on [low, high+1) and floor, so both ends are reachable.
			u := distuv.Uniform{Min: p["low"], Max: p["high"] + 1, Src: src}
			high := p["high"]
			return func() float64 {
				return math.Min(math.Floor(u.Rand()), high)
			}
		},
	},
}

func lowNotAboveHigh(p map[string]float64) error {
	if p["low"] > p["high"] {
		return fmt.Errorf("%w: low %g > high %g", ErrInvalidParameters, p["low"], p["high"])
	}

	return nil
}

func constant(v float64) func() float64 {
	return func() float64 { return v }
}

// Names returns every registered family name, sorted ascending.
// Complexity: O(F log F).
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Lookup returns the family registered under name.
func Lookup(name string) (Family, error) {
	f, ok := catalog[name]
	if !ok {
		return Family{}, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}

	return f, nil
}

// Describe returns the parameter specs of a family keyed by parameter name.
func Describe(name string) (map[string]ParamSpec, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]ParamSpec, len(f.Params))
	for _, ps := range f.Params {
		out[ps.Name] = ps
	}

	return out, nil
}

// Defaults returns the default parameter values of a family.
func Defaults(name string) (map[string]float64, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return f.Defaults(), nil
}

// Validate checks that params carries every parameter of the family, that
// each value lies inside its hard bounds, and that cross-parameter
// constraints hold. Unknown extra keys are rejected as well.
func Validate(name string, params map[string]float64) error {
	// 1) Resolve family
	f, err := Lookup(name)
	if err != nil {
		return err
	}
	// 2) Every declared parameter must be present and in bounds
	for _, ps := range f.Params {
		v, ok := params[ps.Name]
		if !ok {
			return fmt.Errorf("%w: %s: missing %q", ErrInvalidParameters, name, ps.Name)
		}
		if math.IsNaN(v) || v < ps.Min || v > ps.Max {
			return fmt.Errorf("%w: %s: %s=%g outside [%g, %g]",
				ErrInvalidParameters, name, ps.Name, v, ps.Min, ps.Max)
		}
	}
	// 3) No stray parameters
	if len(params) != len(f.Params) {
		for key := range params {
			if _, ok := f.Param(key); !ok {
				return fmt.Errorf("%w: %s: unexpected %q", ErrInvalidParameters, name, key)
			}
		}
	}
	// 4) Cross-parameter constraints
	if f.check != nil {
		return f.check(params)
	}

	return nil
}
