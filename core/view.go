// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: dfs.Digraph implementation and topological order.

package core

import (
	"fmt"

	"github.com/katalvlaran/scmforge/dfs"
)

var _ dfs.Digraph = (*Graph)(nil)

// Vertices implements dfs.Digraph: variable ids, ascending.
func (g *Graph) Vertices() []string { return g.Variables() }

// Successors implements dfs.Digraph: the effects of id, ascending.
func (g *Graph) Successors(id string) []string {
	v, err := g.Variable(id)
	if err != nil {
		return nil
	}

	return v.effects
}

// TopologicalOrder returns the variable ids ordered so that every cause
// precedes its effects. Ties are broken deterministically by id.
func (g *Graph) TopologicalOrder() ([]string, error) {
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, fmt.Errorf("core: topological order: %w", err)
	}

	return order, nil
}
