// SPDX-License-Identifier: MIT
//
// File: noise.go
// Role: Per-variable noise queries and mutations.

package scm

import (
	"github.com/katalvlaran/scmforge/core"
	"github.com/katalvlaran/scmforge/noise"
)

// SubDistributions returns copies of a variable's noise components in id order.
func (m *Model) SubDistributions(id string) ([]noise.SubDistribution, error) {
	var out []noise.SubDistribution
	err := m.view(func(g *core.Graph) error {
		v, err := g.Variable(id)
		if err != nil {
			return err
		}
		out = v.Noise.Subs()
		return nil
	})

	return out, err
}

// SubDistribution returns a copy of one noise component.
func (m *Model) SubDistribution(id string, sub int) (noise.SubDistribution, error) {
	var out noise.SubDistribution
	err := m.view(func(g *core.Graph) error {
		v, err := g.Variable(id)
		if err != nil {
			return err
		}
		out, err = v.Noise.Sub(sub)
		return err
	})

	return out, err
}

// AddSubDistribution adds a default-family component to a variable's noise.
func (m *Model) AddSubDistribution(id string) (int, error) {
	var sub int
	err := m.withNoise("add sub-distribution", id, func(n *noise.Model) error {
		var err error
		sub, err = n.AddSubDistribution()
		return err
	})

	return sub, err
}

// RemoveSubDistribution removes a noise component; the last one stays.
func (m *Model) RemoveSubDistribution(id string, sub int) error {
	return m.withNoise("remove sub-distribution", id, func(n *noise.Model) error {
		return n.RemoveSubDistribution(sub)
	})
}

// ChangeFamily retypes a noise component, resetting its parameters to the
// new family's defaults.
func (m *Model) ChangeFamily(id string, sub int, family string) error {
	return m.withNoise("change family", id, func(n *noise.Model) error {
		return n.ChangeFamily(sub, family)
	})
}

// SetParameter sets a parameter's current value (clamped to its bounds).
func (m *Model) SetParameter(id string, sub int, name string, value float64) error {
	return m.withNoise("set parameter", id, func(n *noise.Model) error {
		return n.SetParameter(sub, name, value)
	})
}

// SetSliderRange sets a parameter's adjustable sub-range.
func (m *Model) SetSliderRange(id string, sub int, name string, lo, hi float64) error {
	return m.withNoise("set slider range", id, func(n *noise.Model) error {
		return n.SetSliderRange(sub, name, lo, hi)
	})
}

func (m *Model) withNoise(op, id string, fn func(*noise.Model) error) error {
	return m.mutate(op, func(g *core.Graph) error {
		v, err := g.Variable(id)
		if err != nil {
			return err
		}
		return fn(v.Noise)
	})
}
