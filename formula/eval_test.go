package formula_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scmforge/formula"
)

// TestEval_RegressionExample is the reference arithmetic case.
func TestEval_RegressionExample(t *testing.T) {
	vars := map[string][]float64{"a": {-1.0, 2.0}, "c": {2.0, -3.0}}
	v, err := formula.Eval("a + c*2 + 2", vars, 2)
	require.NoError(t, err)
	assert.Equal(t, formula.Number, v.Kind)
	assert.Equal(t, []float64{5.0, -2.0}, v.Num)
}

// TestEval_Boolean produces boolean arrays from comparisons.
func TestEval_Boolean(t *testing.T) {
	vars := map[string][]float64{"a": {-1.0, 2.0, 0.5}}
	v, err := formula.Eval("a > 0.0 and not (a == 2)", vars, 3)
	require.NoError(t, err)
	assert.Equal(t, formula.Boolean, v.Kind)
	assert.Equal(t, []bool{false, false, true}, v.Bool)
	assert.Equal(t, 3, v.Len())

	v, err = formula.Eval("(a > 0) == (a > 1)", vars, 3)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, v.Bool)
}

// TestEval_Functions spot-checks the whitelist semantics.
func TestEval_Functions(t *testing.T) {
	vars := map[string][]float64{"x": {-2.5, 0, 2.5, 9}}
	cases := map[string][]float64{
		"abs(x)":           {2.5, 0, 2.5, 9},
		"round(x)":         {-2, 0, 2, 9},
		"floor(x)":         {-3, 0, 2, 9},
		"sign(x)":          {-1, 0, 1, 1},
		"clip(x, -1, 3)":   {-1, 0, 2.5, 3},
		"maximum(x, 1)":    {1, 1, 2.5, 9},
		"x % 2":            {1.5, 0, 0.5, 1},
		"pow(2, 3) + 0*x":  {8, 8, 8, 8},
		"sqrt(abs(x)) * 2": {2 * math.Sqrt(2.5), 0, 2 * math.Sqrt(2.5), 6},
	}
	for src, want := range cases {
		v, err := formula.Eval(src, vars, 4)
		require.NoError(t, err, src)
		assert.InDeltaSlice(t, want, v.Num, 1e-12, src)
	}
}

// TestEval_IEEEDivision keeps Inf/NaN instead of failing.
func TestEval_IEEEDivision(t *testing.T) {
	v, err := formula.Eval("1 / x", map[string][]float64{"x": {0, 1, 2}}, 3)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v.Num[0], 1))
	assert.Equal(t, 0.5, v.Num[2])

	v, err = formula.Eval("log(x)", map[string][]float64{"x": {-1}}, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v.Num[0]))
}

// TestEval_TypeErrors rejects mixing booleans and numbers.
func TestEval_TypeErrors(t *testing.T) {
	vars := map[string][]float64{"a": {1}}
	for _, src := range []string{
		"(a > 0) + 1",
		"a and true",
		"not a",
		"-(a > 0)",
		"sin(a > 0)",
		"(a > 0) < 1",
		"true == 1",
	} {
		_, err := formula.Eval(src, vars, 1)
		assert.ErrorIs(t, err, formula.ErrType, src)
	}
}

// TestEval_UnknownIdentifierAndLength covers binding failures.
func TestEval_UnknownIdentifierAndLength(t *testing.T) {
	_, err := formula.Eval("a + z", map[string][]float64{"a": {1}}, 1)
	assert.ErrorIs(t, err, formula.ErrUnknownIdentifier)

	_, err = formula.Eval("a", map[string][]float64{"a": {1, 2}}, 3)
	assert.ErrorIs(t, err, formula.ErrLength)
}

// TestEval_DoesNotAliasInputs ensures inputs are never modified.
func TestEval_DoesNotAliasInputs(t *testing.T) {
	in := []float64{1, 2}
	x, err := formula.Parse("-a")
	require.NoError(t, err)
	v, err := x.Eval(map[string][]float64{"a": in}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -2}, v.Num)
	assert.Equal(t, []float64{1, 2}, in)
}
