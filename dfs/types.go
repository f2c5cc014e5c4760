// SPDX-License-Identifier: MIT

package dfs

import "errors"

// Visitation states.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the recursion stack.
	Black        // Black: the vertex and all its descendants are done.
)

var (
	// ErrGraphNil is returned when a nil Digraph is passed to TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Digraph is the read-only view the algorithms need.
//
// Vertices must return every vertex exactly once in a deterministic order;
// Successors returns the heads of id's out-edges, also deterministically.
// Successors of an unknown id is empty.
type Digraph interface {
	Vertices() []string
	Successors(id string) []string
}
