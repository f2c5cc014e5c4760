// SPDX-License-Identifier: MIT

// Package formula parses and evaluates the small expression language used
// by variable mechanisms.
//
// The grammar is closed: numeric literals, true/false, the constant pi,
// variable references, a fixed whitelist of functions, and the operators
//
//	or  ||  |                       (lowest)
//	and &&  &
//	not                             (prefix)
//	<  <=  >  >=  ==  !=
//	+  -
//	*  /  %
//	-  +  !  ~                      (prefix)
//	**                              (right-associative, highest)
//
// There are no assignments, no attribute access and no control flow.
// Parse builds an expression tree once; Expr.Eval walks it elementwise over
// equal-length float arrays, producing either a numeric or a boolean array.
//
// Arithmetic follows IEEE-754: division by zero yields ±Inf or NaN rather
// than an error. Mixing booleans into arithmetic, or numbers into logical
// operators, is an ErrType.
package formula
