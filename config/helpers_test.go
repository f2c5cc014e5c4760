package config_test

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/scmforge/scm"
)

func quietOption() scm.Option {
	return scm.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func scmSampleSize(n int) scm.Option { return scm.WithSampleSize(n) }
