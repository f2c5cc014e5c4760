// SPDX-License-Identifier: MIT
//
// File: metadata.go
// Role: Per-variable mechanism configuration: type and class formulas.
// Determinism:
//   - ClassIDs() is ascending; Evaluate uses classes in that order.

package mechanism

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/scmforge/formula"
)

// Type selects the mechanism mode.
type Type int

const (
	// Regression maps inputs to values through one numeric formula.
	Regression Type = iota
	// Classification assigns each sample to one of several boolean classes.
	Classification
)

// String implements fmt.Stringer.
func (t Type) String() string {
	if t == Classification {
		return "classification"
	}

	return "regression"
}

// ParseType maps "regression" or "classification" (case-insensitive) to a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regression":
		return Regression, nil
	case "classification":
		return Classification, nil
	}

	return Regression, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// ClassCapacity bounds the number of explicit classes.
const ClassCapacity = 10

// Metadata is a variable's mechanism: its type and class-id → formula map.
// Regression always has exactly one implicit class, id 0. An empty formula
// means unset.
type Metadata struct {
	typ      Type
	formulas map[int]string
}

// NewMetadata returns a regression mechanism whose formula passes the
// variable's own noise through unchanged.
func NewMetadata() *Metadata {
	return &Metadata{typ: Regression, formulas: map[int]string{0: NoiseIdent}}
}

// Type returns the mechanism mode.
func (m *Metadata) Type() Type { return m.typ }

// SetType switches the mode. Switching resets every formula to unset and
// leaves a single class, id 0. Setting the current type is a no-op.
func (m *Metadata) SetType(t Type) {
	if t == m.typ {
		return
	}
	m.typ = t
	m.formulas = map[int]string{0: ""}
}

// ClassIDs returns the class ids in ascending order.
func (m *Metadata) ClassIDs() []int {
	ids := make([]int, 0, len(m.formulas))
	for id := range m.formulas {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Formula returns the formula text of a class.
func (m *Metadata) Formula(id int) (string, error) {
	src, ok := m.formulas[id]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrClassNotFound, id)
	}

	return src, nil
}

// Formulas returns a copy of the class-id → formula map.
func (m *Metadata) Formulas() map[int]string {
	out := make(map[int]string, len(m.formulas))
	for id, src := range m.formulas {
		out[id] = src
	}

	return out
}

// SetFormula stores formula text for a class. Text is not validated here;
// see Check.
func (m *Metadata) SetFormula(id int, src string) error {
	if _, ok := m.formulas[id]; !ok {
		return fmt.Errorf("%w: %d", ErrClassNotFound, id)
	}
	m.formulas[id] = strings.TrimSpace(src)

	return nil
}

// AddClass allocates the smallest free class id with an unset formula.
func (m *Metadata) AddClass() (int, error) {
	if m.typ == Regression {
		return 0, ErrRegressionClasses
	}
	for id := 0; id < ClassCapacity; id++ {
		if _, taken := m.formulas[id]; !taken {
			m.formulas[id] = ""
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: %d in use", ErrCapacityExceeded, ClassCapacity)
}

// RemoveClass deletes an explicit class; at least one must remain.
func (m *Metadata) RemoveClass(id int) error {
	if m.typ == Regression {
		return ErrRegressionClasses
	}
	if _, ok := m.formulas[id]; !ok {
		return fmt.Errorf("%w: %d", ErrClassNotFound, id)
	}
	if len(m.formulas) == 1 {
		return ErrLastRemaining
	}
	delete(m.formulas, id)

	return nil
}

// Check parses every formula and verifies it only references allowed
// names. Unset formulas fail. It does not evaluate anything.
func (m *Metadata) Check(allowed ...string) error {
	for _, id := range m.ClassIDs() {
		src := m.formulas[id]
		if src == "" {
			return fmt.Errorf("%w: class %d: formula not set", ErrFormula, id)
		}
		x, err := formula.Parse(src)
		if err == nil {
			err = x.Check(allowed...)
		}
		if err != nil {
			return fmt.Errorf("%w: class %d: %w", ErrFormula, id, err)
		}
	}

	return nil
}

// Evaluate produces a variable's values from its inputs: the regression
// result, or for classification the per-sample index of the class row
// (explicit classes in id order, then the else row).
func (m *Metadata) Evaluate(inputs map[string][]float64, n int) ([]float64, error) {
	if m.typ == Regression {
		return Regress(m.formulas[0], inputs, n)
	}
	ids := m.ClassIDs()
	srcs := make([]string, len(ids))
	for i, id := range ids {
		srcs[i] = m.formulas[id]
	}
	rows, err := Classify(srcs, inputs, n)
	if err != nil {
		return nil, err
	}

	return Labels(rows), nil
}
