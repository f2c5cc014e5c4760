// SPDX-License-Identifier: MIT

package distribution

import "errors"

var (
	// ErrUnknownFamily indicates the family name is not registered in the catalog.
	ErrUnknownFamily = errors.New("distribution: unknown family")

	// ErrInvalidParameters indicates a missing, out-of-bounds or inconsistent parameter.
	ErrInvalidParameters = errors.New("distribution: invalid parameters")

	// ErrBadCount indicates a negative sample count.
	ErrBadCount = errors.New("distribution: sample count must be >= 0")
)
