// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: Model construction, lock gate and pipeline entry points.

package scm

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/scmforge/core"
	"github.com/katalvlaran/scmforge/dataset"
	"github.com/katalvlaran/scmforge/pipeline"
)

var (
	// ErrLocked indicates a mutation attempted while a dataset is held.
	ErrLocked = errors.New("scm: model is locked")

	// ErrLastVariable indicates an attempt to remove the only variable.
	ErrLastVariable = errors.New("scm: cannot remove the last variable")
)

// Model owns a causal graph and its dataset pipeline.
type Model struct {
	mu    sync.Mutex
	log   *slog.Logger
	graph *core.Graph
	pipe  *pipeline.Pipeline
}

// New returns an Unlocked model holding the single variable "a".
func New(opts ...Option) *Model {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = slog.Default()
	}
	g := core.NewGraph()
	if _, err := g.AddVariable(); err != nil {
		panic(err)
	}

	return &Model{
		log:   log,
		graph: g,
		pipe:  pipeline.New(append(o.pipeline, pipeline.WithLogger(log))...),
	}
}

// mutate runs fn under the mutex unless the model is Locked.
func (m *Model) mutate(op string, fn func(g *core.Graph) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pipe.Locked() {
		m.log.Debug("mutation rejected while locked", "op", op)
		return fmt.Errorf("%s: %w", op, ErrLocked)
	}

	return fn(m.graph)
}

// view runs fn under the mutex.
func (m *Model) view(fn func(g *core.Graph) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(m.graph)
}

// Lock builds the dataset and freezes the model. On failure the model stays
// Unlocked and the error is kept for LastError.
func (m *Model) Lock() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pipe.Lock(m.graph)
}

// Unlock discards the dataset and allows mutation again.
func (m *Model) Unlock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pipe.Unlock()
}

// Locked reports whether a dataset is held.
func (m *Model) Locked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pipe.Locked()
}

// LastError returns the error of the most recent failed Lock, if any.
func (m *Model) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pipe.LastError()
}

// Dataset returns the generated table; pipeline.ErrNotLocked while Unlocked.
// The table is immutable and stays valid after Unlock.
func (m *Model) Dataset() (*dataset.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.pipe.Dataset()
}

// Check compiles every mechanism against its causes without sampling.
func (m *Model) Check() error {
	return m.view(pipeline.Check)
}

// Seed returns the sampling seed.
func (m *Model) Seed() uint64 { return m.pipe.Seed() }

// SampleSize returns the sample budget N.
func (m *Model) SampleSize() int { return m.pipe.SampleSize() }
