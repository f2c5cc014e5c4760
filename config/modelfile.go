// SPDX-License-Identifier: MIT
//
// File: modelfile.go
// Role: Declarative model file schema and decoding.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat indicates a model file extension other than
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported model file format")

	// ErrInvalidModel indicates a structurally invalid model file.
	ErrInvalidModel = errors.New("config: invalid model file")
)

// ModelFile describes a complete model.
type ModelFile struct {
	// SampleSize overrides the default N when > 0.
	SampleSize int `yaml:"sample_size" toml:"sample_size"`
	// Seed fixes the sampling seed when > 0.
	Seed      uint64         `yaml:"seed" toml:"seed"`
	Variables []VariableSpec `yaml:"variables" toml:"variables"`
}

// VariableSpec describes one variable.
type VariableSpec struct {
	ID        string        `yaml:"id" toml:"id"`
	Name      string        `yaml:"name" toml:"name"`
	Causes    []string      `yaml:"causes" toml:"causes"`
	Noise     []NoiseSpec   `yaml:"noise" toml:"noise"`
	Mechanism MechanismSpec `yaml:"mechanism" toml:"mechanism"`
}

// NoiseSpec describes one mixture component. Omitted parameters keep the
// family defaults.
type NoiseSpec struct {
	Family string             `yaml:"family" toml:"family"`
	Params map[string]float64 `yaml:"params" toml:"params"`
}

// MechanismSpec describes a mechanism. Regression uses Formula;
// classification uses Classes, one boolean formula per class in order.
type MechanismSpec struct {
	Type    string   `yaml:"type" toml:"type"`
	Formula string   `yaml:"formula" toml:"formula"`
	Classes []string `yaml:"classes" toml:"classes"`
}

// LoadModelFile reads a model file, choosing the decoder by extension.
func LoadModelFile(path string) (*ModelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".toml":
		return DecodeTOML(data)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// DecodeYAML parses a YAML model. Unknown keys are rejected.
func DecodeYAML(data []byte) (*ModelFile, error) {
	var mf ModelFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&mf); err != nil {
		return nil, fmt.Errorf("parsing model file: %w", err)
	}
	if err := mf.Validate(); err != nil {
		return nil, err
	}

	return &mf, nil
}

// DecodeTOML parses a TOML model. Unknown keys are rejected.
func DecodeTOML(data []byte) (*ModelFile, error) {
	var mf ModelFile
	md, err := toml.Decode(string(data), &mf)
	if err != nil {
		return nil, fmt.Errorf("parsing model file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidModel, undecoded[0].String())
	}
	if err := mf.Validate(); err != nil {
		return nil, err
	}

	return &mf, nil
}

// Validate checks what the scm mutation API cannot: at least one variable,
// unique ids and a non-negative sample size.
func (mf *ModelFile) Validate() error {
	if mf.SampleSize < 0 {
		return fmt.Errorf("%w: sample_size %d is negative", ErrInvalidModel, mf.SampleSize)
	}
	if len(mf.Variables) == 0 {
		return fmt.Errorf("%w: no variables", ErrInvalidModel)
	}
	seen := make(map[string]bool, len(mf.Variables))
	for i, v := range mf.Variables {
		if v.ID == "" {
			return fmt.Errorf("%w: variable #%d has no id", ErrInvalidModel, i+1)
		}
		if seen[v.ID] {
			return fmt.Errorf("%w: duplicate variable id %q", ErrInvalidModel, v.ID)
		}
		seen[v.ID] = true
	}

	return nil
}
