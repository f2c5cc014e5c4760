package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scmforge/dataset"
)

func sampleTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl := dataset.NewTable(4)
	require.NoError(t, tbl.Append(dataset.Column{ID: "a", Name: "height", Values: []float64{1, 2, 3, 4}}))
	require.NoError(t, tbl.Append(dataset.Column{ID: "b", Name: "weight", Values: []float64{2, 4, 6, 8}}))
	require.NoError(t, tbl.Append(dataset.Column{ID: "c", Name: "label", Kind: dataset.Categorical, Values: []float64{0, 1, 1, 0}}))

	return tbl
}

func TestTable_Accessors(t *testing.T) {
	tbl := sampleTable(t)
	assert.Equal(t, 4, tbl.Rows())
	assert.Equal(t, 3, tbl.Cols())
	assert.Equal(t, []string{"a", "b", "c"}, tbl.IDs())
	assert.Equal(t, []string{"height", "weight", "label"}, tbl.Names())

	row, err := tbl.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 1}, row)
	_, err = tbl.Row(4)
	assert.Error(t, err)

	c, err := tbl.Column("b")
	require.NoError(t, err)
	c.Values[0] = 100
	again, _ := tbl.Column("b")
	assert.Equal(t, 2.0, again.Values[0])

	_, err = tbl.Column("z")
	assert.ErrorIs(t, err, dataset.ErrColumnNotFound)
	assert.True(t, tbl.Finite())
}

func TestTable_AppendErrors(t *testing.T) {
	tbl := sampleTable(t)
	assert.ErrorIs(t, tbl.Append(dataset.Column{ID: "a", Values: make([]float64, 4)}), dataset.ErrDuplicateColumn)
	assert.ErrorIs(t, tbl.Append(dataset.Column{ID: "d", Values: make([]float64, 3)}), dataset.ErrLengthMismatch)

	in := []float64{1, 2, 3, 4}
	require.NoError(t, tbl.Append(dataset.Column{ID: "e", Values: in}))
	in[0] = math.Inf(1)
	assert.True(t, tbl.Finite())
}

func TestSummarize(t *testing.T) {
	tbl := sampleTable(t)
	s, err := tbl.Summarize("a")
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), s.Std, 1e-12)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 1.0, s.Q1)
	assert.Equal(t, 2.0, s.Median)
	assert.Equal(t, 3.0, s.Q3)
	assert.Nil(t, s.Classes)

	s, err = tbl.Summarize("c")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 2, 1: 2}, s.Classes)

	_, err = tbl.Summarize("x")
	assert.ErrorIs(t, err, dataset.ErrColumnNotFound)
	_, err = dataset.NewTable(0).Summaries()
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}

func TestCorrelation(t *testing.T) {
	tbl := sampleTable(t)
	require.NoError(t, tbl.Append(dataset.Column{ID: "d", Values: []float64{5, 5, 5, 5}}))
	m, err := tbl.Correlation()
	require.NoError(t, err)
	require.Len(t, m, 4)

	assert.InDelta(t, 1.0, m[0][0], 1e-12)
	assert.InDelta(t, 1.0, m[0][1], 1e-12)
	assert.InDelta(t, 0.0, m[0][2], 1e-12)
	for i := range m {
		assert.Equal(t, 0.0, m[i][3])
		assert.Equal(t, 0.0, m[3][i])
		for j := range m {
			assert.Equal(t, m[i][j], m[j][i])
		}
	}

	one := dataset.NewTable(1)
	_, err = one.Correlation()
	assert.ErrorIs(t, err, dataset.ErrEmpty)
}
