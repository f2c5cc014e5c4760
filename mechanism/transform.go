// SPDX-License-Identifier: MIT
//
// File: transform.go
// Role: Stateless regression and classification evaluators.

package mechanism

import (
	"fmt"

	"github.com/katalvlaran/scmforge/formula"
)

// NoiseIdent is the identifier under which a variable's own noise is bound.
const NoiseIdent = "noise"

// Regress evaluates a numeric formula over n samples.
//
// Errors:
//   - ErrFormula: empty formula, parse or evaluation failure, boolean result.
func Regress(src string, inputs map[string][]float64, n int) ([]float64, error) {
	v, err := evaluate(src, inputs, n)
	if err != nil {
		return nil, err
	}
	if v.Kind != formula.Number {
		return nil, fmt.Errorf("%w: %q yields %s values, want number: %w", ErrFormula, src, v.Kind, formula.ErrType)
	}

	return v.Num, nil
}

// Classify evaluates k boolean class formulas over n samples and returns the
// class matrix: one row per explicit class in the given order, followed by
// the else row when at least one sample matched no explicit class.
//
// Implementation:
//   - Stage 1: Evaluate every formula; any failure or non-boolean result aborts.
//   - Stage 2: Reject samples claimed by more than one explicit class.
//   - Stage 3: Append the else row unless it is entirely false.
//   - Stage 4: Assert every sample belongs to exactly one row.
//
// Errors:
//   - ErrFormula: a formula failed or is not boolean.
//   - ErrOverlappingClasses: a sample satisfies two explicit classes.
//
// Stage 4 cannot fail given stages 2 and 3; a violation panics.
func Classify(srcs []string, inputs map[string][]float64, n int) ([][]bool, error) {
	// 1) Evaluate
	rows := make([][]bool, 0, len(srcs)+1)
	for i, src := range srcs {
		v, err := evaluate(src, inputs, n)
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", i, err)
		}
		if v.Kind != formula.Boolean {
			return nil, fmt.Errorf("%w: class %d: %q yields %s values, want boolean: %w",
				ErrFormula, i, src, v.Kind, formula.ErrType)
		}
		rows = append(rows, v.Bool)
	}

	// 2) At most one explicit class per sample
	elseRow := make([]bool, n)
	anyElse := false
	for s := 0; s < n; s++ {
		first := -1
		for r := range rows {
			if !rows[r][s] {
				continue
			}
			if first >= 0 {
				return nil, fmt.Errorf("%w: sample %d matches classes %d and %d",
					ErrOverlappingClasses, s, first, r)
			}
			first = r
		}
		if first < 0 {
			elseRow[s] = true
			anyElse = true
		}
	}

	// 3) Else row, only when non-empty
	if anyElse {
		rows = append(rows, elseRow)
	}

	// 4) Coverage: exactly one row per sample
	for s := 0; s < n; s++ {
		count := 0
		for r := range rows {
			if rows[r][s] {
				count++
			}
		}
		if count != 1 {
			panic(fmt.Sprintf("mechanism: sample %d covered by %d class rows", s, count))
		}
	}

	return rows, nil
}

// Labels collapses a class matrix into per-sample row indices.
func Labels(rows [][]bool) []float64 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]float64, len(rows[0]))
	for r, row := range rows {
		for s, hit := range row {
			if hit {
				out[s] = float64(r)
			}
		}
	}

	return out
}

func evaluate(src string, inputs map[string][]float64, n int) (formula.Value, error) {
	if src == "" {
		return formula.Value{}, fmt.Errorf("%w: formula not set", ErrFormula)
	}
	v, err := formula.Eval(src, inputs, n)
	if err != nil {
		return formula.Value{}, fmt.Errorf("%w: %q: %w", ErrFormula, src, err)
	}

	return v, nil
}
