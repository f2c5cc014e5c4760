// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Variable and edge queries and mutations.

package scm

import (
	"github.com/katalvlaran/scmforge/core"
	"github.com/katalvlaran/scmforge/mechanism"
)

// VariableInfo is a read-only snapshot of one variable.
type VariableInfo struct {
	ID        string
	Name      string
	Causes    []string
	Effects   []string
	Mechanism mechanism.Type
}

func snapshot(v *core.Variable) VariableInfo {
	return VariableInfo{
		ID:        v.ID,
		Name:      v.Name,
		Causes:    v.Causes(),
		Effects:   v.Effects(),
		Mechanism: v.Mechanism.Type(),
	}
}

// Variables lists every variable in ascending id order.
func (m *Model) Variables() []VariableInfo {
	var out []VariableInfo
	_ = m.view(func(g *core.Graph) error {
		for _, id := range g.Variables() {
			v, _ := g.Variable(id)
			out = append(out, snapshot(v))
		}
		return nil
	})

	return out
}

// Variable returns a snapshot of one variable.
func (m *Model) Variable(id string) (VariableInfo, error) {
	var out VariableInfo
	err := m.view(func(g *core.Graph) error {
		v, err := g.Variable(id)
		if err != nil {
			return err
		}
		out = snapshot(v)
		return nil
	})

	return out, err
}

// LookupName returns the id of the variable with the given display name.
func (m *Model) LookupName(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.graph.LookupName(name)
}

// CanAddEdge reports whether AddEdge(from, to) would currently succeed.
// It is false while Locked.
func (m *Model) CanAddEdge(from, to string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return !m.pipe.Locked() && m.graph.CanAddEdge(from, to)
}

// Edges returns all edges ordered by (From, To).
func (m *Model) Edges() []core.Edge {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.graph.Edges()
}

// TopologicalOrder returns ids with every cause before its effects.
func (m *Model) TopologicalOrder() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.graph.TopologicalOrder()
}

// AddVariable creates a variable in the smallest free slot.
func (m *Model) AddVariable() (string, error) {
	var id string
	err := m.mutate("add variable", func(g *core.Graph) error {
		var err error
		id, err = g.AddVariable()
		return err
	})

	return id, err
}

// InsertVariable creates a variable in the given free slot.
func (m *Model) InsertVariable(id string) error {
	return m.mutate("insert variable", func(g *core.Graph) error {
		return g.InsertVariable(id)
	})
}

// RemoveVariable deletes a variable and every incident edge.
//
// Errors:
//   - core.ErrVariableNotFound: unknown id.
//   - ErrLastVariable: id is the only variable.
//   - ErrLocked.
func (m *Model) RemoveVariable(id string) error {
	return m.mutate("remove variable", func(g *core.Graph) error {
		if !g.HasVariable(id) {
			return g.RemoveVariable(id)
		}
		if g.Len() == 1 {
			return ErrLastVariable
		}
		return g.RemoveVariable(id)
	})
}

// Rename changes a variable's display name.
func (m *Model) Rename(id, name string) error {
	return m.mutate("rename", func(g *core.Graph) error {
		return g.Rename(id, name)
	})
}

// AddEdge inserts the edge from → to if it keeps the graph acyclic.
func (m *Model) AddEdge(from, to string) error {
	return m.mutate("add edge", func(g *core.Graph) error {
		return g.AddEdge(from, to)
	})
}

// RemoveEdge deletes the edge from → to.
func (m *Model) RemoveEdge(from, to string) error {
	return m.mutate("remove edge", func(g *core.Graph) error {
		return g.RemoveEdge(from, to)
	})
}
