// SPDX-License-Identifier: MIT

package scm

import (
	"log/slog"

	"github.com/katalvlaran/scmforge/pipeline"
)

// Option configures a Model.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	pipeline []pipeline.Option
}

// WithLogger sets the logger shared with the pipeline; nil means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSeed fixes the sampling seed (see pipeline.WithSeed).
func WithSeed(seed uint64) Option {
	p := pipeline.WithSeed(seed)
	return func(o *options) { o.pipeline = append(o.pipeline, p) }
}

// WithSampleSize sets the sample budget N. Panics if n < 1.
func WithSampleSize(n int) Option {
	p := pipeline.WithSampleSize(n)
	return func(o *options) { o.pipeline = append(o.pipeline, p) }
}
