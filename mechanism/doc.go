// SPDX-License-Identifier: MIT

// Package mechanism turns a variable's causes and own noise into the
// variable's generated values.
//
// Two modes exist:
//
//   - Regression: a single numeric formula, evaluated elementwise.
//   - Classification: k boolean formulas, one per explicit class. Each
//     sample may satisfy at most one of them; samples satisfying none fall
//     into an implicit "else" row, which is dropped when it is empty.
//
// Formulas reference the causes by variable id and the variable's own
// noise as NoiseIdent. Failures are returned as errors and never replaced
// by fabricated values.
package mechanism
