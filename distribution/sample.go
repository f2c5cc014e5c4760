// SPDX-License-Identifier: MIT
//
// File: sample.go
// Role: i.i.d. draws from a catalog family.
// Determinism:
//   - Output depends only on (family, params, count) and the Source state.

package distribution

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Sample draws count i.i.d. values from the named family.
//
// Implementation:
//   - Stage 1: Validate count, family and parameters.
//   - Stage 2: Truncate Integer-kind parameters toward zero.
//   - Stage 3: Draw sequentially from src.
//
// A nil src falls back to the process-global math/rand/v2 generator, which
// is not reproducible; callers that need reproducibility pass a seeded Source.
//
// Complexity: O(count) draws.
func Sample(name string, params map[string]float64, count int, src rand.Source) ([]float64, error) {
	// 1) Validate
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCount, count)
	}
	if err := Validate(name, params); err != nil {
		return nil, err
	}
	f := catalog[name]

	// 2) Integer parameters are used as whole numbers
	p := make(map[string]float64, len(params))
	for _, ps := range f.Params {
		v := params[ps.Name]
		if ps.Kind == Integer {
			v = math.Trunc(v)
		}
		p[ps.Name] = v
	}
	// Truncation can reorder a fractional low/high pair; re-check.
	if f.check != nil {
		if err := f.check(p); err != nil {
			return nil, err
		}
	}

	// 3) Draw
	draw := f.sampler(p, src)
	out := make([]float64, count)
	for i := range out {
		out[i] = draw()
	}

	return out, nil
}
