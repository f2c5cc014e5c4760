// SPDX-License-Identifier: MIT

// Package dataset holds the generated samples: one column of N values per
// variable, keyed by variable id and labelled with the display name.
//
// A Table is immutable once built; accessors hand out copies. Summary and
// Correlation describe the columns with gonum's stat package.
package dataset
