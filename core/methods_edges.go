// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge queries and mutations with the acyclicity guard.
//
// Invariants after every call:
//   - v ∈ u.effects ⇔ u ∈ v.causes.
//   - The edge relation has no directed cycle and no self-loop.

package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/scmforge/dfs"
)

// HasEdge reports whether the edge from → to exists.
func (g *Graph) HasEdge(from, to string) bool {
	u, err := g.Variable(from)
	if err != nil {
		return false
	}

	return dfs.IndexOf(u.effects, to) >= 0
}

// CanAddEdge reports whether AddEdge(from, to) would succeed: both variables
// exist, from ≠ to, the edge is absent, and adding it keeps the graph acyclic.
//
// The graph is never modified; the candidate edge is checked on an overlay.
// Complexity: O(V + E).
func (g *Graph) CanAddEdge(from, to string) bool {
	return g.checkEdge(from, to) == nil
}

// AddEdge inserts from → to, updating both endpoints.
//
// Errors:
//   - ErrVariableNotFound: an endpoint is missing.
//   - ErrWouldCreateCycle: from == to, or the edge would close a cycle; the
//     error text carries the offending path.
//   - ErrEdgeExists: the edge is already present.
func (g *Graph) AddEdge(from, to string) error {
	if err := g.checkEdge(from, to); err != nil {
		return err
	}
	u, v := g.mustVariable(from), g.mustVariable(to)
	u.effects = insertSorted(u.effects, to)
	v.causes = insertSorted(v.causes, from)

	return nil
}

// RemoveEdge deletes from → to from both endpoints.
//
// Errors:
//   - ErrVariableNotFound: an endpoint is missing.
//   - ErrEdgeNotFound: the edge is absent.
func (g *Graph) RemoveEdge(from, to string) error {
	u, err := g.Variable(from)
	if err != nil {
		return err
	}
	v, err := g.Variable(to)
	if err != nil {
		return err
	}
	if dfs.IndexOf(u.effects, to) < 0 && dfs.IndexOf(v.causes, from) < 0 {
		return fmt.Errorf("%w: %s → %s", ErrEdgeNotFound, from, to)
	}
	u.effects = without(u.effects, to)
	v.causes = without(v.causes, from)

	return nil
}

// Edges returns every edge, ordered by (From, To).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, v := range g.slots {
		if v == nil {
			continue
		}
		for _, to := range v.effects {
			out = append(out, Edge{From: v.ID, To: to})
		}
	}

	return out
}

func (g *Graph) checkEdge(from, to string) error {
	if _, err := g.Variable(from); err != nil {
		return err
	}
	if _, err := g.Variable(to); err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%w: self-loop on %s", ErrWouldCreateCycle, from)
	}
	if g.HasEdge(from, to) {
		return fmt.Errorf("%w: %s → %s", ErrEdgeExists, from, to)
	}
	if cycle := dfs.FindCycle(dfs.WithEdge(g, from, to)); cycle != nil {
		return fmt.Errorf("%w: %s", ErrWouldCreateCycle, strings.Join(cycle, " → "))
	}

	return nil
}

func insertSorted(ids []string, id string) []string {
	i := sort.SearchStrings(ids, id)
	if i < len(ids) && ids[i] == id {
		return ids
	}
	ids = append(ids, "")
	copy(ids[i+1:], ids[i:])
	ids[i] = id

	return ids
}

func without(ids []string, id string) []string {
	i := dfs.IndexOf(ids, id)
	if i < 0 {
		return ids
	}

	return append(ids[:i:i], ids[i+1:]...)
}
