// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Column-major storage of generated samples.
// Determinism:
//   - Columns keep insertion order (the pipeline inserts in ascending id).

package dataset

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrColumnNotFound indicates a lookup of an unknown column id.
	ErrColumnNotFound = errors.New("dataset: column not found")

	// ErrDuplicateColumn indicates a second column with the same id.
	ErrDuplicateColumn = errors.New("dataset: duplicate column")

	// ErrLengthMismatch indicates a column whose length differs from the table's.
	ErrLengthMismatch = errors.New("dataset: column length mismatch")

	// ErrEmpty indicates an operation that needs at least one row.
	ErrEmpty = errors.New("dataset: no rows")
)

// Kind tells how a column's values are to be read.
type Kind int

const (
	// Continuous columns hold real-valued regression output.
	Continuous Kind = iota
	// Categorical columns hold class labels 0, 1, 2, ...
	Categorical
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == Categorical {
		return "categorical"
	}

	return "continuous"
}

// Column is one variable's samples.
type Column struct {
	ID     string
	Name   string
	Kind   Kind
	Values []float64
}

// Table is a fixed-height collection of columns.
type Table struct {
	rows  int
	cols  []Column
	index map[string]int
}

// NewTable returns an empty table whose columns will each hold rows values.
func NewTable(rows int) *Table {
	return &Table{rows: rows, index: make(map[string]int)}
}

// Append adds a column. The values slice is copied.
//
// Errors:
//   - ErrDuplicateColumn: id already present.
//   - ErrLengthMismatch: len(values) ≠ Rows().
func (t *Table) Append(c Column) error {
	if _, dup := t.index[c.ID]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.ID)
	}
	if len(c.Values) != t.rows {
		return fmt.Errorf("%w: %q has %d values, want %d", ErrLengthMismatch, c.ID, len(c.Values), t.rows)
	}
	c.Values = append([]float64(nil), c.Values...)
	t.index[c.ID] = len(t.cols)
	t.cols = append(t.cols, c)

	return nil
}

// Rows returns the number of samples per column.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return len(t.cols) }

// IDs returns the column ids in insertion order.
func (t *Table) IDs() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.ID
	}

	return out
}

// Names returns the column display names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.cols))
	for i, c := range t.cols {
		out[i] = c.Name
	}

	return out
}

// Column returns a copy of the column stored under id.
func (t *Table) Column(id string) (Column, error) {
	i, ok := t.index[id]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", ErrColumnNotFound, id)
	}
	c := t.cols[i]
	c.Values = append([]float64(nil), c.Values...)

	return c, nil
}

// Columns returns copies of every column in insertion order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.cols))
	for i, c := range t.cols {
		c.Values = append([]float64(nil), c.Values...)
		out[i] = c
	}

	return out
}

// Row returns the i-th sample across all columns, in column order.
func (t *Table) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.rows {
		return nil, fmt.Errorf("dataset: row %d out of range [0,%d)", i, t.rows)
	}
	out := make([]float64, len(t.cols))
	for j, c := range t.cols {
		out[j] = c.Values[i]
	}

	return out, nil
}

// Finite reports whether every value in the table is finite.
func (t *Table) Finite() bool {
	for _, c := range t.cols {
		for _, v := range c.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
