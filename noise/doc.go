// SPDX-License-Identifier: MIT

// Package noise implements a variable's noise model: a mixture of one or
// more independently parameterized catalog distributions.
//
// A Model always holds at least one sub-distribution. Sub-distribution ids
// are small integers in [0, Capacity) and are reused smallest-first.
//
// GenerateSamples(total, src) splits total across the k sub-distributions as
// evenly as possible (see Shares), draws each share from the catalog and
// concatenates the draws in ascending id order.
//
// Parameter keeps hard bounds [Min, Max] from the catalog and a narrower
// slider range [SliderMin, SliderMax]. The invariant
//
//	Min ≤ SliderMin ≤ Value ≤ SliderMax ≤ Max
//
// holds after every mutation; SetValue clamps into the hard bounds and widens
// the slider range when the value falls outside it.
//
// A Model is not safe for concurrent mutation; callers serialize access.
package noise
