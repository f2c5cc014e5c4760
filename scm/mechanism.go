// SPDX-License-Identifier: MIT
//
// File: mechanism.go
// Role: Per-variable mechanism queries and mutations.

package scm

import (
	"github.com/katalvlaran/scmforge/core"
	"github.com/katalvlaran/scmforge/mechanism"
)

// MechanismType returns a variable's mechanism mode.
func (m *Model) MechanismType(id string) (mechanism.Type, error) {
	var out mechanism.Type
	err := m.view(func(g *core.Graph) error {
		v, err := g.Variable(id)
		if err != nil {
			return err
		}
		out = v.Mechanism.Type()
		return nil
	})

	return out, err
}

// Formulas returns a variable's class-id → formula map (a copy).
func (m *Model) Formulas(id string) (map[int]string, error) {
	var out map[int]string
	err := m.view(func(g *core.Graph) error {
		v, err := g.Variable(id)
		if err != nil {
			return err
		}
		out = v.Mechanism.Formulas()
		return nil
	})

	return out, err
}

// SetMechanismType switches a variable's mode; a real switch resets formulas.
func (m *Model) SetMechanismType(id string, t mechanism.Type) error {
	return m.withMechanism("set mechanism type", id, func(md *mechanism.Metadata) error {
		md.SetType(t)
		return nil
	})
}

// SetFormula stores the formula text of a class (0 for regression).
func (m *Model) SetFormula(id string, class int, src string) error {
	return m.withMechanism("set formula", id, func(md *mechanism.Metadata) error {
		return md.SetFormula(class, src)
	})
}

// AddClass adds an empty classification class and returns its id.
func (m *Model) AddClass(id string) (int, error) {
	var class int
	err := m.withMechanism("add class", id, func(md *mechanism.Metadata) error {
		var err error
		class, err = md.AddClass()
		return err
	})

	return class, err
}

// RemoveClass deletes a classification class; at least one remains.
func (m *Model) RemoveClass(id string, class int) error {
	return m.withMechanism("remove class", id, func(md *mechanism.Metadata) error {
		return md.RemoveClass(class)
	})
}

func (m *Model) withMechanism(op, id string, fn func(*mechanism.Metadata) error) error {
	return m.mutate(op, func(g *core.Graph) error {
		v, err := g.Variable(id)
		if err != nil {
			return err
		}
		return fn(v.Mechanism)
	})
}
