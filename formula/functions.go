// SPDX-License-Identifier: MIT

package formula

import (
	"math"
	"sort"
)

// function is a whitelisted elementwise numeric function.
type function struct {
	name  string
	arity int
	fn    func(args []float64) float64
}

func unary(f func(float64) float64) func([]float64) float64 {
	return func(a []float64) float64 { return f(a[0]) }
}

func binary(f func(float64, float64) float64) func([]float64) float64 {
	return func(a []float64) float64 { return f(a[0], a[1]) }
}

var functions = map[string]function{}

func register(name string, arity int, fn func([]float64) float64) {
	functions[name] = function{name: name, arity: arity, fn: fn}
}

func init() {
	// trigonometric
	register("sin", 1, unary(math.Sin))
	register("cos", 1, unary(math.Cos))
	register("tan", 1, unary(math.Tan))
	register("arcsin", 1, unary(math.Asin))
	register("arccos", 1, unary(math.Acos))
	register("arctan", 1, unary(math.Atan))
	register("arctan2", 2, binary(math.Atan2))
	register("hypot", 2, binary(math.Hypot))

	// hyperbolic
	register("sinh", 1, unary(math.Sinh))
	register("cosh", 1, unary(math.Cosh))
	register("tanh", 1, unary(math.Tanh))
	register("arcsinh", 1, unary(math.Asinh))
	register("arccosh", 1, unary(math.Acosh))
	register("arctanh", 1, unary(math.Atanh))

	// exponential and logarithmic
	register("exp", 1, unary(math.Exp))
	register("expm1", 1, unary(math.Expm1))
	register("log", 1, unary(math.Log))
	register("log1p", 1, unary(math.Log1p))
	register("log2", 1, unary(math.Log2))
	register("log10", 1, unary(math.Log10))

	// powers and roots
	register("sqrt", 1, unary(math.Sqrt))
	register("cbrt", 1, unary(math.Cbrt))
	register("pow", 2, binary(math.Pow))

	// rounding
	register("floor", 1, unary(math.Floor))
	register("ceil", 1, unary(math.Ceil))
	register("round", 1, unary(math.RoundToEven))
	register("trunc", 1, unary(math.Trunc))

	// magnitude and range
	register("abs", 1, unary(math.Abs))
	register("sign", 1, unary(sign))
	register("minimum", 2, binary(math.Min))
	register("maximum", 2, binary(math.Max))
	register("clip", 3, func(a []float64) float64 {
		return math.Min(math.Max(a[0], a[1]), a[2])
	})
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // keeps 0, -0 and NaN
	}
}

// Functions returns the names of all whitelisted functions, sorted.
func Functions() []string {
	out := make([]string, 0, len(functions))
	for name := range functions {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
