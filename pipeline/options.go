// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for Pipeline.
// Constructors panic on meaningless values (programmer error).

package pipeline

import "log/slog"

// DefaultSampleSize is the sample budget N when none is given.
const DefaultSampleSize = 1000

// Option configures a Pipeline.
type Option func(*options)

type options struct {
	sampleSize int
	seed       uint64
	seeded     bool
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{sampleSize: DefaultSampleSize}
}

// WithSampleSize sets N, the number of samples per variable. Panics if n < 1.
func WithSampleSize(n int) Option {
	if n < 1 {
		panic("pipeline: WithSampleSize requires n >= 1")
	}

	return func(o *options) { o.sampleSize = n }
}

// WithSeed fixes the sampling seed. Without it a seed is drawn once from
// crypto/rand when the pipeline is created.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger sets the logger; nil means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}
