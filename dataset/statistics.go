// SPDX-License-Identifier: MIT
//
// File: statistics.go
// Role: Per-column summaries and the pairwise correlation matrix.
//
// Notes:
//   - Std is the unbiased sample standard deviation (gonum stat.MeanStdDev);
//     it is 0 for a single row.
//   - Quartiles use the empirical CDF (stat.Empirical).
//   - A column with zero variance correlates 0 with everything, itself included.

package dataset

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one column.
type Summary struct {
	ID     string
	Name   string
	Kind   Kind
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	// Classes counts samples per label; Categorical columns only.
	Classes map[int]int
}

// Summarize describes the column stored under id.
//
// Errors:
//   - ErrColumnNotFound: unknown id.
//   - ErrEmpty: the table has no rows.
func (t *Table) Summarize(id string) (Summary, error) {
	i, ok := t.index[id]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %q", ErrColumnNotFound, id)
	}
	if t.rows == 0 {
		return Summary{}, ErrEmpty
	}

	return summarize(t.cols[i]), nil
}

// Summaries describes every column in insertion order.
func (t *Table) Summaries() ([]Summary, error) {
	if t.rows == 0 {
		return nil, ErrEmpty
	}
	out := make([]Summary, len(t.cols))
	for i, c := range t.cols {
		out[i] = summarize(c)
	}

	return out, nil
}

func summarize(c Column) Summary {
	sorted := append([]float64(nil), c.Values...)
	sort.Float64s(sorted)

	s := Summary{ID: c.ID, Name: c.Name, Kind: c.Kind, Count: len(sorted)}
	s.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		_, s.Std = stat.MeanStdDev(sorted, nil)
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Q1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Q3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)

	if c.Kind == Categorical {
		s.Classes = make(map[int]int)
		for _, v := range c.Values {
			s.Classes[int(v)]++
		}
	}

	return s
}

// Correlation returns the Pearson correlation matrix of the columns, indexed
// in insertion order. The matrix is symmetric.
//
// Errors:
//   - ErrEmpty: fewer than two rows.
func (t *Table) Correlation() ([][]float64, error) {
	if t.rows < 2 {
		return nil, fmt.Errorf("%w: correlation needs at least 2 rows, have %d", ErrEmpty, t.rows)
	}
	k := len(t.cols)
	stds := make([]float64, k)
	for i, c := range t.cols {
		_, stds[i] = stat.MeanStdDev(c.Values, nil)
	}

	out := make([][]float64, k)
	for i := range out {
		out[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		if stds[i] == 0 {
			continue
		}
		out[i][i] = 1
		for j := i + 1; j < k; j++ {
			if stds[j] == 0 {
				continue
			}
			r := stat.Correlation(t.cols[i].Values, t.cols[j].Values, nil)
			out[i][j], out[j][i] = r, r
		}
	}

	return out, nil
}
