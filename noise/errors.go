// SPDX-License-Identifier: MIT

package noise

import "errors"

var (
	// ErrCapacityExceeded indicates every sub-distribution id is in use.
	ErrCapacityExceeded = errors.New("noise: sub-distribution capacity exceeded")

	// ErrLastRemaining indicates an attempt to remove the only sub-distribution.
	ErrLastRemaining = errors.New("noise: cannot remove the last sub-distribution")

	// ErrSubDistributionNotFound indicates an id with no sub-distribution.
	ErrSubDistributionNotFound = errors.New("noise: sub-distribution not found")

	// ErrUnknownParameter indicates a parameter name the family does not declare.
	ErrUnknownParameter = errors.New("noise: unknown parameter")

	// ErrInvalidRange indicates a NaN value or an inverted slider range.
	ErrInvalidRange = errors.New("noise: invalid value or range")
)
