// SPDX-License-Identifier: MIT
//
// File: ast.go
// Role: Expression tree nodes and their elementwise evaluation.

package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// env binds identifiers to arrays of a common length n.
type env struct {
	n    int
	vars map[string][]float64
}

type node interface {
	eval(e *env) (Value, error)
	String() string
}

type numLit struct{ v float64 }

func (l numLit) eval(e *env) (Value, error) { return fill(e.n, l.v), nil }
func (l numLit) String() string             { return strconv.FormatFloat(l.v, 'g', -1, 64) }

type boolLit struct{ v bool }

func (l boolLit) eval(e *env) (Value, error) { return fillBool(e.n, l.v), nil }
func (l boolLit) String() string             { return strconv.FormatBool(l.v) }

// constPi is the only named constant.
const constPi = "pi"

type ident struct {
	name string
	pos  int
}

func (id ident) eval(e *env) (Value, error) {
	xs, ok := e.vars[id.name]
	if !ok {
		if id.name == constPi {
			return fill(e.n, math.Pi), nil
		}
		return Value{}, fmt.Errorf("%w: %q at %d", ErrUnknownIdentifier, id.name, id.pos)
	}
	out := make([]float64, len(xs))
	copy(out, xs)

	return Value{Kind: Number, Num: out}, nil
}

func (id ident) String() string { return id.name }

// Canonical operator spellings after parsing.
const (
	opNot = "not"
	opAnd = "and"
	opOr  = "or"
)

type unaryOp struct {
	op string // "-", "+" or opNot
	x  node
}

func (u unaryOp) eval(e *env) (Value, error) {
	x, err := u.x.eval(e)
	if err != nil {
		return Value{}, err
	}
	if u.op == opNot {
		if x.Kind != Boolean {
			return Value{}, fmt.Errorf("%w: not needs a boolean operand, got %s", ErrType, x.Kind)
		}
		for i, b := range x.Bool {
			x.Bool[i] = !b
		}
		return x, nil
	}
	if x.Kind != Number {
		return Value{}, fmt.Errorf("%w: unary %s needs a number operand, got %s", ErrType, u.op, x.Kind)
	}
	if u.op == "-" {
		for i, v := range x.Num {
			x.Num[i] = -v
		}
	}

	return x, nil
}

func (u unaryOp) String() string {
	if u.op == opNot {
		return "(not " + u.x.String() + ")"
	}

	return "(" + u.op + u.x.String() + ")"
}

type binaryOp struct {
	op   string
	l, r node
}

func (b binaryOp) String() string {
	return "(" + b.l.String() + " " + b.op + " " + b.r.String() + ")"
}

func (b binaryOp) eval(e *env) (Value, error) {
	l, err := b.l.eval(e)
	if err != nil {
		return Value{}, err
	}
	r, err := b.r.eval(e)
	if err != nil {
		return Value{}, err
	}

	switch b.op {
	case opAnd, opOr:
		if l.Kind != Boolean || r.Kind != Boolean {
			return Value{}, b.mismatch("boolean", l, r)
		}
		out := make([]bool, e.n)
		for i := range out {
			if b.op == opAnd {
				out[i] = l.Bool[i] && r.Bool[i]
			} else {
				out[i] = l.Bool[i] || r.Bool[i]
			}
		}
		return Value{Kind: Boolean, Bool: out}, nil

	case "==", "!=":
		if l.Kind == Boolean && r.Kind == Boolean {
			out := make([]bool, e.n)
			for i := range out {
				out[i] = (l.Bool[i] == r.Bool[i]) == (b.op == "==")
			}
			return Value{Kind: Boolean, Bool: out}, nil
		}
		return b.compare(e.n, l, r)

	case "<", "<=", ">", ">=":
		return b.compare(e.n, l, r)
	}

	// arithmetic
	if l.Kind != Number || r.Kind != Number {
		return Value{}, b.mismatch("number", l, r)
	}
	f := arithmetic[b.op]
	out := make([]float64, e.n)
	for i := range out {
		out[i] = f(l.Num[i], r.Num[i])
	}

	return Value{Kind: Number, Num: out}, nil
}

func (b binaryOp) compare(n int, l, r Value) (Value, error) {
	if l.Kind != Number || r.Kind != Number {
		return Value{}, b.mismatch("number", l, r)
	}
	f := comparisons[b.op]
	out := make([]bool, n)
	for i := range out {
		out[i] = f(l.Num[i], r.Num[i])
	}

	return Value{Kind: Boolean, Bool: out}, nil
}

func (b binaryOp) mismatch(want string, l, r Value) error {
	return fmt.Errorf("%w: %s needs %s operands, got %s and %s", ErrType, b.op, want, l.Kind, r.Kind)
}

var arithmetic = map[string]func(a, b float64) float64{
	"+":  func(a, b float64) float64 { return a + b },
	"-":  func(a, b float64) float64 { return a - b },
	"*":  func(a, b float64) float64 { return a * b },
	"/":  func(a, b float64) float64 { return a / b },
	"%":  floorMod,
	"**": math.Pow,
}

var comparisons = map[string]func(a, b float64) bool{
	"<":  func(a, b float64) bool { return a < b },
	"<=": func(a, b float64) bool { return a <= b },
	">":  func(a, b float64) bool { return a > b },
	">=": func(a, b float64) bool { return a >= b },
	"==": func(a, b float64) bool { return a == b },
	"!=": func(a, b float64) bool { return a != b },
}

// floorMod returns a mod b with the sign of b.
func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}

	return m
}

type call struct {
	fn   function
	args []node
}

func (c call) eval(e *env) (Value, error) {
	args := make([][]float64, len(c.args))
	for i, a := range c.args {
		v, err := a.eval(e)
		if err != nil {
			return Value{}, err
		}
		if v.Kind != Number {
			return Value{}, fmt.Errorf("%w: %s argument %d must be a number, got %s",
				ErrType, c.fn.name, i+1, v.Kind)
		}
		args[i] = v.Num
	}
	out := make([]float64, e.n)
	buf := make([]float64, len(args))
	for i := range out {
		for j := range args {
			buf[j] = args[j][i]
		}
		out[i] = c.fn.fn(buf)
	}

	return Value{Kind: Number, Num: out}, nil
}

func (c call) String() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.String()
	}

	return c.fn.name + "(" + strings.Join(parts, ", ") + ")"
}
