// SPDX-License-Identifier: MIT

// Package config loads process settings from the environment and declarative
// model files (YAML or TOML) that describe a complete structural causal model.
//
// Model files are read-only input: Build replays them through the scm.Model
// mutation API, so a file that names a cycle, an unknown family or a bad
// display name fails exactly like the equivalent sequence of edits would.
package config
