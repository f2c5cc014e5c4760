// SPDX-License-Identifier: MIT

package formula

import "errors"

var (
	// ErrSyntax indicates the source text is not a valid expression.
	ErrSyntax = errors.New("formula: syntax error")

	// ErrUnknownIdentifier indicates a name with no bound input.
	ErrUnknownIdentifier = errors.New("formula: unknown identifier")

	// ErrUnknownFunction indicates a call to a function outside the whitelist.
	ErrUnknownFunction = errors.New("formula: unknown function")

	// ErrArity indicates a function called with the wrong number of arguments.
	ErrArity = errors.New("formula: wrong number of arguments")

	// ErrType indicates an operator applied to the wrong kind of operand.
	ErrType = errors.New("formula: type mismatch")

	// ErrLength indicates inputs whose lengths differ from the evaluation length.
	ErrLength = errors.New("formula: input length mismatch")
)
