// SPDX-License-Identifier: MIT

// Package pipeline builds a dataset from a causal graph and guards it with a
// two-state lock.
//
// States:
//
//	Unlocked (initial) --Lock ok-->   Locked
//	Unlocked           --Lock fail--> Unlocked, LastError set
//	Locked             --Unlock-->    Unlocked, dataset discarded
//
// A build visits variables in topological order. Each variable draws N noise
// samples from its own PCG stream, seeded by the pipeline seed and the
// variable's slot index, binds them as "noise" next to its causes' columns
// and evaluates its mechanism. Any failure discards every partial result.
//
// Determinism: the same graph configuration, seed and sample size always
// produce the same dataset, so Lock → Unlock → Lock is a round trip.
//
// The pipeline does not gate graph mutation itself; scm.Model does, using
// Locked().
package pipeline
