// SPDX-License-Identifier: MIT
//
// File: pipeline.go
// Role: Lock state machine and the dataset build.

package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/scmforge/core"
	"github.com/katalvlaran/scmforge/dataset"
	"github.com/katalvlaran/scmforge/mechanism"
)

var (
	// ErrNotLocked indicates a dataset read while Unlocked.
	ErrNotLocked = errors.New("pipeline: not locked")

	// ErrNoVariables indicates a build over an empty graph.
	ErrNoVariables = errors.New("pipeline: graph has no variables")
)

// State is the lock state.
type State int

const (
	// Unlocked is the initial state: no dataset, mutation allowed.
	Unlocked State = iota
	// Locked holds a dataset built from the current configuration.
	Locked
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Locked {
		return "locked"
	}

	return "unlocked"
}

// VariableError reports which variable stopped a build.
type VariableError struct {
	ID   string
	Name string
	Err  error
}

// Error implements error.
func (e *VariableError) Error() string {
	return fmt.Sprintf("pipeline: variable %s (%s): %v", e.ID, e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *VariableError) Unwrap() error { return e.Err }

// Pipeline owns the lock state and, while Locked, the dataset.
type Pipeline struct {
	opts    options
	log     *slog.Logger
	state   State
	data    *dataset.Table
	lastErr error
}

// New returns an Unlocked pipeline.
func New(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		seed, err := NewSeed()
		if err != nil {
			panic(err)
		}
		o.seed, o.seeded = seed, true
	}
	log := o.logger
	if log == nil {
		log = slog.Default()
	}

	return &Pipeline{opts: o, log: log}
}

// Seed returns the sampling seed.
func (p *Pipeline) Seed() uint64 { return p.opts.seed }

// SampleSize returns N.
func (p *Pipeline) SampleSize() int { return p.opts.sampleSize }

// State returns the current lock state.
func (p *Pipeline) State() State { return p.state }

// Locked reports whether the pipeline holds a dataset.
func (p *Pipeline) Locked() bool { return p.state == Locked }

// LastError returns the error of the most recent failed Lock, or nil if the
// most recent Lock succeeded (or none was attempted).
func (p *Pipeline) LastError() error { return p.lastErr }

// Dataset returns the generated table. Only available while Locked.
func (p *Pipeline) Dataset() (*dataset.Table, error) {
	if p.state != Locked {
		return nil, ErrNotLocked
	}

	return p.data, nil
}

// Lock builds the dataset from g and transitions to Locked. On failure the
// pipeline stays Unlocked, nothing is kept and the error is also recorded
// for LastError. Locking while Locked is a no-op.
func (p *Pipeline) Lock(g *core.Graph) error {
	if p.state == Locked {
		return nil
	}
	p.log.Info("dataset build started",
		"variables", g.Len(), "sample_size", p.opts.sampleSize, "seed", p.opts.seed)

	data, err := p.build(g)
	if err != nil {
		p.lastErr = err
		p.log.Warn("dataset build failed", "error", err)
		return err
	}
	p.data, p.state, p.lastErr = data, Locked, nil
	p.log.Info("dataset build succeeded", "columns", data.Cols(), "rows", data.Rows())

	return nil
}

// Unlock discards the dataset. It always succeeds.
func (p *Pipeline) Unlock() {
	if p.state == Locked {
		p.log.Info("dataset discarded")
	}
	p.data, p.state = nil, Unlocked
}

// build runs the whole generation and returns the table or the first error.
//
// Implementation:
//   - Stage 1: Topological order (causes before effects).
//   - Stage 2: Per variable, sample noise from its own stream, bind causes
//     and noise, evaluate the mechanism.
//   - Stage 3: Assemble columns in ascending id order.
func (p *Pipeline) build(g *core.Graph) (*dataset.Table, error) {
	if g.Len() == 0 {
		return nil, ErrNoVariables
	}
	// 1) Order
	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	// 2) Evaluate
	n := p.opts.sampleSize
	values := make(map[string][]float64, len(order))
	for _, id := range order {
		v, err := g.Variable(id)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		out, err := p.evaluate(v, values, n)
		if err != nil {
			p.log.Debug("variable failed", "id", v.ID, "name", v.Name, "error", err)
			return nil, &VariableError{ID: v.ID, Name: v.Name, Err: err}
		}
		values[id] = out
	}

	// 3) Assemble
	table := dataset.NewTable(n)
	for _, id := range g.Variables() {
		v, _ := g.Variable(id)
		kind := dataset.Continuous
		if v.Mechanism.Type() == mechanism.Classification {
			kind = dataset.Categorical
		}
		if err := table.Append(dataset.Column{ID: id, Name: v.Name, Kind: kind, Values: values[id]}); err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
	}

	return table, nil
}

func (p *Pipeline) evaluate(v *core.Variable, values map[string][]float64, n int) ([]float64, error) {
	slot, _ := core.SlotIndex(v.ID)
	ns, err := v.Noise.GenerateSamples(n, rand.NewPCG(p.opts.seed, uint64(slot)))
	if err != nil {
		return nil, err
	}
	inputs := map[string][]float64{mechanism.NoiseIdent: ns}
	for _, c := range v.Causes() {
		inputs[c] = values[c]
	}

	return v.Mechanism.Evaluate(inputs, n)
}

// Check compiles every mechanism against its variable's causes and noise
// without sampling. It reports the first failing variable.
func Check(g *core.Graph) error {
	if g.Len() == 0 {
		return ErrNoVariables
	}
	for _, id := range g.Variables() {
		v, _ := g.Variable(id)
		allowed := append(v.Causes(), mechanism.NoiseIdent)
		if err := v.Mechanism.Check(allowed...); err != nil {
			return &VariableError{ID: v.ID, Name: v.Name, Err: err}
		}
	}

	return nil
}
