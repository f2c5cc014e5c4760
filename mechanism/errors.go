// SPDX-License-Identifier: MIT

package mechanism

import "errors"

var (
	// ErrFormula wraps every parse, binding or evaluation failure, as well as
	// an unset formula or a result of the wrong kind.
	ErrFormula = errors.New("mechanism: formula error")

	// ErrOverlappingClasses indicates a sample satisfying more than one class formula.
	ErrOverlappingClasses = errors.New("mechanism: overlapping classes")

	// ErrCapacityExceeded indicates every class id is in use.
	ErrCapacityExceeded = errors.New("mechanism: class capacity exceeded")

	// ErrLastRemaining indicates an attempt to remove the only explicit class.
	ErrLastRemaining = errors.New("mechanism: cannot remove the last class")

	// ErrClassNotFound indicates a class id with no formula slot.
	ErrClassNotFound = errors.New("mechanism: class not found")

	// ErrRegressionClasses indicates a class operation on a regression mechanism.
	ErrRegressionClasses = errors.New("mechanism: regression has a single implicit class")

	// ErrUnknownType indicates an unrecognized mechanism type name.
	ErrUnknownType = errors.New("mechanism: unknown type")
)
