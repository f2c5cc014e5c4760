// SPDX-License-Identifier: MIT

// Package scm is the single owned state object of a structural causal model:
// the causal graph with every variable's noise and mechanism, plus the
// dataset pipeline that locks them.
//
// Every method takes one mutex, so invariants spanning several entities
// (acyclicity, class coverage, lock gating) are checked atomically. While the
// model is Locked every mutation fails with ErrLocked and leaves the state
// untouched; queries keep working.
//
// Variables are addressed by their slot id ("a".."z"). A new Model holds one
// variable, "a", and the last variable can never be removed.
package scm
