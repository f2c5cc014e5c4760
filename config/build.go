// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Replays a ModelFile onto a fresh scm.Model.

package config

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/scmforge/distribution"
	"github.com/katalvlaran/scmforge/mechanism"
	"github.com/katalvlaran/scmforge/scm"
)

// Options returns the scm options the file itself asks for.
func (mf *ModelFile) Options() []scm.Option {
	var opts []scm.Option
	if mf.SampleSize > 0 {
		opts = append(opts, scm.WithSampleSize(mf.SampleSize))
	}
	if mf.Seed > 0 {
		opts = append(opts, scm.WithSeed(mf.Seed))
	}

	return opts
}

// Build creates an Unlocked model from the file. opts are applied after the
// file's own options, so callers can override sample size and seed.
//
// Implementation:
//   - Stage 1: Claim every listed slot; drop the default "a" if unlisted.
//   - Stage 2: Names, then edges (cause → variable).
//   - Stage 3: Noise mixtures and mechanisms.
func Build(mf *ModelFile, opts ...scm.Option) (*scm.Model, error) {
	if err := mf.Validate(); err != nil {
		return nil, err
	}
	m := scm.New(append(mf.Options(), opts...)...)

	// 1) Slots
	keepDefault := false
	for _, v := range mf.Variables {
		if v.ID == "a" {
			keepDefault = true
			continue
		}
		if err := m.InsertVariable(v.ID); err != nil {
			return nil, fmt.Errorf("variable %s: %w", v.ID, err)
		}
	}
	if !keepDefault {
		if err := m.RemoveVariable("a"); err != nil {
			return nil, err
		}
	}

	// 2) Names and edges
	for _, v := range mf.Variables {
		if v.Name != "" {
			if err := m.Rename(v.ID, v.Name); err != nil {
				return nil, fmt.Errorf("variable %s: %w", v.ID, err)
			}
		}
	}
	for _, v := range mf.Variables {
		for _, c := range v.Causes {
			if err := m.AddEdge(c, v.ID); err != nil {
				return nil, fmt.Errorf("variable %s: cause %s: %w", v.ID, c, err)
			}
		}
	}

	// 3) Noise and mechanisms
	for _, v := range mf.Variables {
		if err := applyNoise(m, v); err != nil {
			return nil, fmt.Errorf("variable %s: %w", v.ID, err)
		}
		if err := applyMechanism(m, v); err != nil {
			return nil, fmt.Errorf("variable %s: %w", v.ID, err)
		}
	}

	return m, nil
}

func applyNoise(m *scm.Model, v VariableSpec) error {
	for i, ns := range v.Noise {
		sub := 0
		if i > 0 {
			var err error
			if sub, err = m.AddSubDistribution(v.ID); err != nil {
				return err
			}
		}
		family := ns.Family
		if family == "" {
			family = distribution.DefaultFamily
		}
		fam, err := distribution.Lookup(family)
		if err != nil {
			return err
		}
		if err = m.ChangeFamily(v.ID, sub, family); err != nil {
			return err
		}

		names := make([]string, 0, len(ns.Params))
		for name := range ns.Params {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			val := ns.Params[name]
			spec, ok := fam.Param(name)
			if !ok {
				return fmt.Errorf("%w: %s has no parameter %q", distribution.ErrInvalidParameters, family, name)
			}
			if val < spec.Min || val > spec.Max {
				return fmt.Errorf("%w: %s.%s = %g outside [%g, %g]",
					distribution.ErrInvalidParameters, family, name, val, spec.Min, spec.Max)
			}
			if err = m.SetParameter(v.ID, sub, name, val); err != nil {
				return err
			}
		}

		s, err := m.SubDistribution(v.ID, sub)
		if err != nil {
			return err
		}
		if err = distribution.Validate(family, s.Values()); err != nil {
			return err
		}
	}

	return nil
}

func applyMechanism(m *scm.Model, v VariableSpec) error {
	spec := v.Mechanism
	typ := mechanism.Regression
	if spec.Type != "" {
		var err error
		if typ, err = mechanism.ParseType(spec.Type); err != nil {
			return err
		}
	}
	if typ == mechanism.Regression {
		if len(spec.Classes) > 0 {
			return fmt.Errorf("%w: regression takes formula, not classes", ErrInvalidModel)
		}
		if spec.Formula == "" {
			return nil
		}
		return m.SetFormula(v.ID, 0, spec.Formula)
	}

	if spec.Formula != "" {
		return fmt.Errorf("%w: classification takes classes, not formula", ErrInvalidModel)
	}
	if err := m.SetMechanismType(v.ID, typ); err != nil {
		return err
	}
	for i, src := range spec.Classes {
		class := 0
		if i > 0 {
			var err error
			if class, err = m.AddClass(v.ID); err != nil {
				return err
			}
		}
		if err := m.SetFormula(v.ID, class, src); err != nil {
			return err
		}
	}

	return nil
}
