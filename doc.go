// Package scmforge builds structural causal models and generates synthetic
// tabular datasets consistent with them.
//
// A model is a small DAG of variables. Every variable owns a noise mixture
// (one or more parametric distributions) and a mechanism: a regression
// formula, or a set of boolean class formulas, over its causes and its own
// noise. Locking a model evaluates every variable in causal order and freezes
// the configuration together with the dataset it produced.
//
// Packages, leaves first:
//
//	distribution/ — catalog of noise families, bounds, defaults and sampling
//	noise/        — per-variable mixture of sub-distributions
//	dfs/          — cycle detection and topological order on a Digraph view
//	core/         — the 26-slot variable graph that stays acyclic on every edit
//	formula/      — closed arithmetic/boolean expression language over arrays
//	mechanism/    — regression and classification evaluators
//	dataset/      — the generated table and its summary statistics
//	pipeline/     — the lock state machine and the dataset build
//	scm/          — the owned model object: one mutex, lock-gated mutations
//	config/       — environment settings and YAML/TOML model files
//	export/       — CSV and SQLite sinks
//	cmd/scmforge/ — command line interface
//
// Quick example:
//
//	    dose ───► response ───► flag
//
//	m := scm.New(scm.WithSeed(1))
//	b, _ := m.AddVariable()
//	_ = m.AddEdge("a", b)
//	_ = m.SetFormula(b, 0, "3*a + noise")
//	if err := m.Lock(); err != nil {
//		// fix the mechanism and retry
//	}
//	tbl, _ := m.Dataset()
//
// Reproducibility: each variable samples its noise from its own PCG stream
// derived from the model seed and the variable's slot, so a model locked
// twice with the same seed yields the same table.
package scmforge
