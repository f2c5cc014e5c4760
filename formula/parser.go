// SPDX-License-Identifier: MIT
//
// File: parser.go
// Role: Pratt parser from tokens to an expression tree, plus the public Expr API.

package formula

import (
	"fmt"
	"sort"
)

// Binding powers, lowest first.
const (
	bpNone = iota
	bpOr
	bpAnd
	bpNot
	bpCompare
	bpSum
	bpProduct
	bpUnary
	bpPower
)

// infixOps maps every infix spelling to its canonical operator and binding power.
var infixOps = map[string]struct {
	op string
	bp int
}{
	"or": {opOr, bpOr}, "||": {opOr, bpOr}, "|": {opOr, bpOr},
	"and": {opAnd, bpAnd}, "&&": {opAnd, bpAnd}, "&": {opAnd, bpAnd},
	"<": {"<", bpCompare}, "<=": {"<=", bpCompare}, ">": {">", bpCompare},
	">=": {">=", bpCompare}, "==": {"==", bpCompare}, "!=": {"!=", bpCompare},
	"+": {"+", bpSum}, "-": {"-", bpSum},
	"*": {"*", bpProduct}, "/": {"/", bpProduct}, "%": {"%", bpProduct},
	"**": {"**", bpPower},
}

var keywords = map[string]bool{
	"and": true, "or": true, "not": true,
	"true": true, "false": true, "True": true, "False": true,
}

type parser struct {
	toks   []token
	pos    int
	idents map[string]struct{}
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) unexpected(t token) error {
	return fmt.Errorf("%w at %d: unexpected %s", ErrSyntax, t.pos, t)
}

// infix reports whether t continues an expression as a binary operator.
func infix(t token) (string, int, bool) {
	if t.kind != tokOp && t.kind != tokIdent {
		return "", 0, false
	}
	info, ok := infixOps[t.text]
	if !ok {
		return "", 0, false
	}

	return info.op, info.bp, true
}

func isComparison(bp int) bool { return bp == bpCompare }

// parseExpr parses operators binding tighter than minBP.
func (p *parser) parseExpr(minBP int) (node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		op, bp, ok := infix(p.peek())
		if !ok || bp <= minBP {
			return left, nil
		}
		p.next()

		// ** is right-associative; everything else is left-associative.
		rbp := bp
		if op == "**" {
			rbp = bp - 1
		}
		right, err := p.parseExpr(rbp)
		if err != nil {
			return nil, err
		}
		left = binaryOp{op: op, l: left, r: right}

		// a < b < c is rejected rather than silently comparing a boolean.
		if isComparison(bp) {
			if _, nbp, ok := infix(p.peek()); ok && isComparison(nbp) {
				return nil, fmt.Errorf("%w at %d: chained comparison", ErrSyntax, p.peek().pos)
			}
		}
	}
}

func (p *parser) parsePrefix() (node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return numLit{v: t.num}, nil

	case tokLParen:
		inner, err := p.parseExpr(bpNone)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.unexpected(closing)
		}
		return inner, nil

	case tokOp:
		switch t.text {
		case "-", "+":
			x, err := p.parseExpr(bpUnary)
			if err != nil {
				return nil, err
			}
			return unaryOp{op: t.text, x: x}, nil
		case "!", "~":
			x, err := p.parseExpr(bpUnary)
			if err != nil {
				return nil, err
			}
			return unaryOp{op: opNot, x: x}, nil
		}

	case tokIdent:
		return p.parseIdent(t)
	}

	return nil, p.unexpected(t)
}

func (p *parser) parseIdent(t token) (node, error) {
	switch t.text {
	case "true", "True":
		return boolLit{v: true}, nil
	case "false", "False":
		return boolLit{v: false}, nil
	case "not":
		x, err := p.parseExpr(bpNot)
		if err != nil {
			return nil, err
		}
		return unaryOp{op: opNot, x: x}, nil
	}
	if keywords[t.text] {
		return nil, p.unexpected(t)
	}

	// Function call
	if p.peek().kind == tokLParen {
		fn, ok := functions[t.text]
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d", ErrUnknownFunction, t.text, t.pos)
		}
		p.next()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if len(args) != fn.arity {
			return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, fn.name, fn.arity, len(args))
		}
		return call{fn: fn, args: args}, nil
	}

	// Plain reference
	if t.text != constPi {
		p.idents[t.text] = struct{}{}
	}

	return ident{name: t.text, pos: t.pos}, nil
}

// parseArgs parses a comma-separated list after '(' up to and including ')'.
func (p *parser) parseArgs() ([]node, error) {
	var args []node
	if p.peek().kind == tokRParen {
		p.next()
		return args, nil
	}
	for {
		a, err := p.parseExpr(bpNone)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		switch t := p.next(); t.kind {
		case tokComma:
			continue
		case tokRParen:
			return args, nil
		default:
			return nil, p.unexpected(t)
		}
	}
}

// Expr is a parsed formula, safe for concurrent evaluation.
type Expr struct {
	src    string
	root   node
	idents []string
}

// Parse compiles src into an expression tree.
//
// Errors:
//   - ErrSyntax: lexical or grammatical error, including empty input.
//   - ErrUnknownFunction: call to a name outside the whitelist.
//   - ErrArity: whitelisted function called with the wrong argument count.
func Parse(src string) (*Expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, idents: make(map[string]struct{})}
	root, err := p.parseExpr(bpNone)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.unexpected(t)
	}

	idents := make([]string, 0, len(p.idents))
	for name := range p.idents {
		idents = append(idents, name)
	}
	sort.Strings(idents)

	return &Expr{src: src, root: root, idents: idents}, nil
}

// Source returns the text the expression was parsed from.
func (x *Expr) Source() string { return x.src }

// String returns a fully parenthesized rendering of the tree.
func (x *Expr) String() string { return x.root.String() }

// Identifiers returns the variable names the expression references, sorted.
func (x *Expr) Identifiers() []string { return append([]string(nil), x.idents...) }

// Check reports the first referenced identifier not in allowed.
func (x *Expr) Check(allowed ...string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	for _, id := range x.idents {
		if _, ok := set[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownIdentifier, id)
		}
	}

	return nil
}

// Eval evaluates the expression elementwise over n samples. Every array in
// vars must have length n; literals are broadcast to n.
func (x *Expr) Eval(vars map[string][]float64, n int) (Value, error) {
	for name, xs := range vars {
		if len(xs) != n {
			return Value{}, fmt.Errorf("%w: %q has %d values, want %d", ErrLength, name, len(xs), n)
		}
	}

	return x.root.eval(&env{n: n, vars: vars})
}

// Eval parses and evaluates src in one step.
func Eval(src string, vars map[string][]float64, n int) (Value, error) {
	x, err := Parse(src)
	if err != nil {
		return Value{}, err
	}

	return x.Eval(vars, n)
}
