// SPDX-License-Identifier: MIT

// Package distribution is the static catalog of parametric noise families
// that a variable's noise mixture can draw from.
//
// What:
//
//   - Names lists the registered families in ascending order.
//   - Describe reports, per family, each parameter's hard bounds, default,
//     slider sub-range, step and numeric kind.
//   - Sample draws i.i.d. values for a family from a caller-provided
//     math/rand/v2 Source, so seeding stays entirely in the caller's hands.
//
// Families:
//
//	normal            loc, scale
//	lognormal         mean, sigma
//	uniform           low, high           (low ≤ high)
//	laplace           loc, scale
//	poisson           lam
//	binomial          n, p
//	bernoulli         p
//	discrete_uniform  low, high           (integers in [low, high], low ≤ high)
//
// Errors:
//
//   - ErrUnknownFamily       family name is not registered.
//   - ErrInvalidParameters   a required parameter is missing, out of its
//     declared bounds, or inconsistent with another parameter.
//
// The catalog is immutable after package initialization and safe for
// concurrent use.
package distribution
