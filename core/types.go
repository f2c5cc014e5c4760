// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Variable, Graph, Edge, sentinel errors and the id pool.

package core

import (
	"errors"

	"github.com/katalvlaran/scmforge/mechanism"
	"github.com/katalvlaran/scmforge/noise"
)

// Sentinel errors for core graph operations.
var (
	// ErrCapacityExceeded indicates that every variable slot is occupied.
	ErrCapacityExceeded = errors.New("core: variable capacity exceeded")

	// ErrVariableNotFound indicates an operation referenced a non-existent variable.
	ErrVariableNotFound = errors.New("core: variable not found")

	// ErrSlotTaken indicates InsertVariable targeted an occupied slot.
	ErrSlotTaken = errors.New("core: variable slot already taken")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates the edge is already present.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrWouldCreateCycle indicates the edge would break acyclicity.
	ErrWouldCreateCycle = errors.New("core: edge would create a cycle")

	// ErrInvalidName indicates a display name violating the naming rules.
	ErrInvalidName = errors.New("core: invalid variable name")

	// ErrDuplicateName indicates a display name already in use.
	ErrDuplicateName = errors.New("core: duplicate variable name")
)

// Capacity is the number of variable slots.
const Capacity = 26

// SlotID returns the id of slot i ("a" for 0 … "z" for 25).
func SlotID(i int) string { return string(rune('a' + i)) }

// SlotIndex maps an id back to its slot index.
func SlotIndex(id string) (int, bool) {
	if len(id) != 1 || id[0] < 'a' || id[0] >= 'a'+Capacity {
		return 0, false
	}

	return int(id[0] - 'a'), true
}

// Variable is a node of the causal graph.
type Variable struct {
	// ID is the immutable slot id.
	ID string

	// Name is the display name: unique, ≥2 characters, starting with a letter.
	Name string

	// Noise is the variable's own noise mixture.
	Noise *noise.Model

	// Mechanism maps causes and noise to the variable's values.
	Mechanism *mechanism.Metadata

	causes  []string // sorted in-neighbours
	effects []string // sorted out-neighbours
}

// Causes returns the ids of the variable's direct causes, ascending.
func (v *Variable) Causes() []string { return append([]string(nil), v.causes...) }

// Effects returns the ids of the variable's direct effects, ascending.
func (v *Variable) Effects() []string { return append([]string(nil), v.effects...) }

// Edge is a directed cause → effect relation.
type Edge struct {
	From string
	To   string
}

// Graph is the fixed-capacity slot table of variables.
type Graph struct {
	slots [Capacity]*Variable
}

// NewGraph returns an empty graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{}
}
