package mechanism_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scmforge/formula"
	"github.com/katalvlaran/scmforge/mechanism"
)

// TestRegress_Example is the reference regression case.
func TestRegress_Example(t *testing.T) {
	in := map[string][]float64{"a": {-1.0, 2.0}, "c": {2.0, -3.0}}
	out, err := mechanism.Regress("a + c*2 + 2", in, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5.0, -2.0}, out)
}

// TestRegress_Failures never returns fabricated values.
func TestRegress_Failures(t *testing.T) {
	in := map[string][]float64{"a": {1, 2}}
	cases := []struct {
		src   string
		cause error
	}{
		{"", nil},
		{"a +", formula.ErrSyntax},
		{"a + b", formula.ErrUnknownIdentifier},
		{"a > 1", formula.ErrType},
	}
	for _, tc := range cases {
		out, err := mechanism.Regress(tc.src, in, 2)
		assert.Nil(t, out, tc.src)
		assert.ErrorIs(t, err, mechanism.ErrFormula, tc.src)
		if tc.cause != nil {
			assert.ErrorIs(t, err, tc.cause, tc.src)
		}
	}
}

// TestClassify_ElseRowAppended is the reference classification case.
func TestClassify_ElseRowAppended(t *testing.T) {
	rows, err := mechanism.Classify([]string{"a > 0.0"}, map[string][]float64{"a": {-1.0, 2.0}}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{false, true}, {true, false}}, rows)
	assert.Equal(t, []float64{1, 0}, mechanism.Labels(rows))
}

// TestClassify_ElseRowDropped when every sample is already classified.
func TestClassify_ElseRowDropped(t *testing.T) {
	in := map[string][]float64{"a": {-1, 2, 0}}
	rows, err := mechanism.Classify([]string{"a > 0", "a <= 0"}, in, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{false, true, false}, {true, false, true}}, rows)
	assert.Equal(t, []float64{1, 0, 1}, mechanism.Labels(rows))
}

// TestClassify_Overlap rejects a sample claimed twice.
func TestClassify_Overlap(t *testing.T) {
	rows, err := mechanism.Classify([]string{"a > 0.0", "a > -5.0"}, map[string][]float64{"a": {3}}, 1)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, mechanism.ErrOverlappingClasses)
}

// TestClassify_FormulaFailures aborts without partial results.
func TestClassify_FormulaFailures(t *testing.T) {
	in := map[string][]float64{"a": {1}}
	for _, srcs := range [][]string{
		{"a > 0", "a + 1"},
		{"a >"},
		{"a > 0", ""},
		{"z > 0"},
	} {
		rows, err := mechanism.Classify(srcs, in, 1)
		assert.Nil(t, rows, "%v", srcs)
		assert.ErrorIs(t, err, mechanism.ErrFormula, "%v", srcs)
	}
}

// TestClassify_NoExplicitClasses puts every sample in the else row.
func TestClassify_NoExplicitClasses(t *testing.T) {
	rows, err := mechanism.Classify(nil, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{true, true, true}}, rows)
}
