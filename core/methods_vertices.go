// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Variable lifecycle & queries.
//
// Determinism:
//   - Variables() returns ids in slot order (ascending).
//   - AddVariable() always takes the smallest free slot.

package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/scmforge/mechanism"
	"github.com/katalvlaran/scmforge/noise"
)

// Len returns the number of variables.
func (g *Graph) Len() int {
	n := 0
	for _, v := range g.slots {
		if v != nil {
			n++
		}
	}

	return n
}

// Variables returns the ids of all variables, ascending.
func (g *Graph) Variables() []string {
	out := make([]string, 0, Capacity)
	for i, v := range g.slots {
		if v != nil {
			out = append(out, SlotID(i))
		}
	}

	return out
}

// HasVariable reports whether id names an existing variable.
func (g *Graph) HasVariable(id string) bool {
	_, err := g.Variable(id)

	return err == nil
}

// Variable returns the variable stored under id.
func (g *Graph) Variable(id string) (*Variable, error) {
	i, ok := SlotIndex(id)
	if !ok || g.slots[i] == nil {
		return nil, fmt.Errorf("%w: %q", ErrVariableNotFound, id)
	}

	return g.slots[i], nil
}

// AddVariable creates a variable in the smallest free slot and returns its id.
//
// The new variable has no edges, a single normal noise component, a
// regression mechanism passing its noise through, and the display name
// "var_<id>" (suffixed "_2", "_3", … if that name is taken).
//
// Errors:
//   - ErrCapacityExceeded: all Capacity slots are occupied.
//
// Complexity: O(Capacity).
func (g *Graph) AddVariable() (string, error) {
	for i, v := range g.slots {
		if v == nil {
			id := SlotID(i)
			g.slots[i] = g.newVariable(id)
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: %d slots in use", ErrCapacityExceeded, Capacity)
}

// InsertVariable creates a variable in the slot named by id.
//
// Errors:
//   - ErrVariableNotFound: id is not a slot id.
//   - ErrSlotTaken: the slot is occupied.
func (g *Graph) InsertVariable(id string) error {
	i, ok := SlotIndex(id)
	if !ok {
		return fmt.Errorf("%w: %q is not a slot id", ErrVariableNotFound, id)
	}
	if g.slots[i] != nil {
		return fmt.Errorf("%w: %q", ErrSlotTaken, id)
	}
	g.slots[i] = g.newVariable(id)

	return nil
}

func (g *Graph) newVariable(id string) *Variable {
	name := "var_" + id
	for n := 2; g.nameOwner(name) != ""; n++ {
		name = "var_" + id + "_" + strconv.Itoa(n)
	}

	return &Variable{
		ID:        id,
		Name:      name,
		Noise:     noise.NewModel(),
		Mechanism: mechanism.NewMetadata(),
	}
}

// RemoveVariable detaches every edge incident to id and frees its slot.
//
// Keeping at least one variable in the model is the caller's concern.
//
// Complexity: O(Capacity · deg).
func (g *Graph) RemoveVariable(id string) error {
	v, err := g.Variable(id)
	if err != nil {
		return err
	}
	// 1) Drop the reverse side of every incident edge
	for _, c := range v.causes {
		cause := g.mustVariable(c)
		cause.effects = without(cause.effects, id)
	}
	for _, e := range v.effects {
		effect := g.mustVariable(e)
		effect.causes = without(effect.causes, id)
	}
	// 2) Free the slot
	i, _ := SlotIndex(id)
	g.slots[i] = nil

	return nil
}

// Rename changes a variable's display name.
//
// Rules: at least 2 characters, first character a letter, unique among
// variables. Surrounding whitespace is trimmed. Renaming to the current
// name is a no-op.
func (g *Graph) Rename(id, name string) error {
	v, err := g.Variable(id)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if err = ValidateName(name); err != nil {
		return err
	}
	if owner := g.nameOwner(name); owner != "" && owner != id {
		return fmt.Errorf("%w: %q is used by %q", ErrDuplicateName, name, owner)
	}
	v.Name = name

	return nil
}

// ValidateName checks the length and first-character rules of a display name.
func ValidateName(name string) error {
	if utf8.RuneCountInString(name) < 2 {
		return fmt.Errorf("%w: %q is shorter than 2 characters", ErrInvalidName, name)
	}
	if first, _ := utf8.DecodeRuneInString(name); !unicode.IsLetter(first) {
		return fmt.Errorf("%w: %q must start with a letter", ErrInvalidName, name)
	}

	return nil
}

// LookupName returns the id of the variable with the given display name.
func (g *Graph) LookupName(name string) (string, bool) {
	id := g.nameOwner(name)

	return id, id != ""
}

func (g *Graph) nameOwner(name string) string {
	for _, v := range g.slots {
		if v != nil && v.Name == name {
			return v.ID
		}
	}

	return ""
}

// mustVariable is for ids the graph's own relations guarantee to exist.
func (g *Graph) mustVariable(id string) *Variable {
	i, _ := SlotIndex(id)

	return g.slots[i]
}
