// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidEnv indicates an environment value outside its domain.
var ErrInvalidEnv = errors.New("config: invalid environment value")

// Env holds the process-wide settings.
type Env struct {
	// SampleSize is N, the number of rows generated per variable.
	SampleSize int `env:"SCMFORGE_SAMPLE_SIZE" envDefault:"1000"`
	// Seed fixes the sampling seed; 0 draws one from crypto/rand per process.
	Seed      uint64 `env:"SCMFORGE_SEED" envDefault:"0"`
	LogLevel  string `env:"SCMFORGE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SCMFORGE_LOG_FORMAT" envDefault:"text"`
}

// parseEnv loads configuration from environment variables.
func parseEnv(target *Env) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses and validates Env.
func LoadEnv() (Env, error) {
	var e Env
	if err := parseEnv(&e); err != nil {
		return Env{}, err
	}
	if err := e.Validate(); err != nil {
		return Env{}, err
	}

	return e, nil
}

// Validate checks value domains.
func (e Env) Validate() error {
	if e.SampleSize < 1 {
		return fmt.Errorf("%w: SCMFORGE_SAMPLE_SIZE=%d, want >= 1", ErrInvalidEnv, e.SampleSize)
	}
	if _, err := e.Level(); err != nil {
		return err
	}
	switch strings.ToLower(e.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: SCMFORGE_LOG_FORMAT=%q, want text or json", ErrInvalidEnv, e.LogFormat)
	}

	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (e Env) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: SCMFORGE_LOG_LEVEL=%q: %w", ErrInvalidEnv, e.LogLevel, err)
	}

	return l, nil
}

// Logger returns a logger writing to w in the configured format and level.
func (e Env) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := e.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(e.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
