// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: Sub-distribution lifecycle and mixture sampling.
// Determinism:
//   - IDs() is ascending; GenerateSamples concatenates draws in that order.
//   - Shares is a pure function of (total, k).

package noise

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/scmforge/distribution"
)

// Capacity bounds the number of sub-distributions per model.
const Capacity = 10

// SubDistribution is one mixture component. Values returned by Model
// accessors are copies; mutate through the Model.
type SubDistribution struct {
	ID     int
	Family string
	// Params in the family's declared order.
	Params []Parameter
}

// Values returns parameter name → current value.
func (s SubDistribution) Values() map[string]float64 {
	out := make(map[string]float64, len(s.Params))
	for _, p := range s.Params {
		out[p.Name] = p.Value
	}

	return out
}

// Param returns the named parameter.
func (s SubDistribution) Param(name string) (Parameter, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}

	return Parameter{}, false
}

func (s *SubDistribution) clone() SubDistribution {
	out := *s
	out.Params = append([]Parameter(nil), s.Params...)

	return out
}

// Model is a variable's noise mixture.
type Model struct {
	subs map[int]*SubDistribution
}

// NewModel returns a model with a single default-family sub-distribution (id 0).
func NewModel() *Model {
	m := &Model{subs: make(map[int]*SubDistribution, 1)}
	m.subs[0] = newSub(0, distribution.DefaultFamily)

	return m
}

// newSub builds a sub-distribution at the family's defaults. The family must
// exist; callers validate first.
func newSub(id int, family string) *SubDistribution {
	f, _ := distribution.Lookup(family)
	params := make([]Parameter, len(f.Params))
	for i, ps := range f.Params {
		params[i] = newParameter(ps)
	}

	return &SubDistribution{ID: id, Family: family, Params: params}
}

// Len returns the number of active sub-distributions.
func (m *Model) Len() int { return len(m.subs) }

// IDs returns the active sub-distribution ids in ascending order.
func (m *Model) IDs() []int {
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Sub returns a copy of the sub-distribution with the given id.
func (m *Model) Sub(id int) (SubDistribution, error) {
	s, ok := m.subs[id]
	if !ok {
		return SubDistribution{}, fmt.Errorf("%w: %d", ErrSubDistributionNotFound, id)
	}

	return s.clone(), nil
}

// Subs returns copies of all sub-distributions in id order.
func (m *Model) Subs() []SubDistribution {
	out := make([]SubDistribution, 0, len(m.subs))
	for _, id := range m.IDs() {
		out = append(out, m.subs[id].clone())
	}

	return out
}

// AddSubDistribution allocates the smallest unused id and installs a
// default-family sub-distribution under it.
func (m *Model) AddSubDistribution() (int, error) {
	for id := 0; id < Capacity; id++ {
		if _, taken := m.subs[id]; !taken {
			m.subs[id] = newSub(id, distribution.DefaultFamily)
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: %d in use", ErrCapacityExceeded, Capacity)
}

// RemoveSubDistribution deletes a sub-distribution. The last one cannot go.
func (m *Model) RemoveSubDistribution(id int) error {
	if _, ok := m.subs[id]; !ok {
		return fmt.Errorf("%w: %d", ErrSubDistributionNotFound, id)
	}
	if len(m.subs) == 1 {
		return ErrLastRemaining
	}
	delete(m.subs, id)

	return nil
}

// ChangeFamily replaces the sub-distribution with a fresh one of the new
// family at its defaults. Previous parameter values are discarded, even for
// parameter names both families share.
func (m *Model) ChangeFamily(id int, family string) error {
	if _, ok := m.subs[id]; !ok {
		return fmt.Errorf("%w: %d", ErrSubDistributionNotFound, id)
	}
	if _, err := distribution.Lookup(family); err != nil {
		return err
	}
	m.subs[id] = newSub(id, family)

	return nil
}

// SetParameter assigns a parameter value (clamped, see Parameter.SetValue).
func (m *Model) SetParameter(id int, name string, v float64) error {
	p, err := m.param(id, name)
	if err != nil {
		return err
	}

	return p.SetValue(v)
}

// SetSliderRange adjusts a parameter's slider range (see Parameter.SetSliderRange).
func (m *Model) SetSliderRange(id int, name string, lo, hi float64) error {
	p, err := m.param(id, name)
	if err != nil {
		return err
	}

	return p.SetSliderRange(lo, hi)
}

func (m *Model) param(id int, name string) (*Parameter, error) {
	s, ok := m.subs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSubDistributionNotFound, id)
	}
	for i := range s.Params {
		if s.Params[i].Name == name {
			return &s.Params[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s has no %q", ErrUnknownParameter, s.Family, name)
}

// Shares partitions total into k parts: floor(total/k) each, with the first
// total mod k parts receiving one extra. k ≤ 0 yields nil.
func Shares(total, k int) []int {
	if k <= 0 {
		return nil
	}
	base, extra := total/k, total%k
	out := make([]int, k)
	for i := range out {
		out[i] = base
		if i < extra {
			out[i]++
		}
	}

	return out
}

// GenerateSamples draws exactly total values from the mixture.
//
// Implementation:
//   - Stage 1: Partition total across sub-distributions via Shares (id order).
//   - Stage 2: Draw each share from the catalog using src.
//   - Stage 3: Concatenate in id order.
//
// Complexity: O(total).
func (m *Model) GenerateSamples(total int, src rand.Source) ([]float64, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: got %d", distribution.ErrBadCount, total)
	}
	ids := m.IDs()
	shares := Shares(total, len(ids))
	out := make([]float64, 0, total)
	for i, id := range ids {
		s := m.subs[id]
		draws, err := distribution.Sample(s.Family, s.Values(), shares[i], src)
		if err != nil {
			return nil, fmt.Errorf("noise: sub-distribution %d (%s): %w", id, s.Family, err)
		}
		out = append(out, draws...)
	}

	return out, nil
}
