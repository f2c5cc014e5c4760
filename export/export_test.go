package export_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scmforge/dataset"
	"github.com/katalvlaran/scmforge/export"
)

func sampleTable(t *testing.T) *dataset.Table {
	t.Helper()
	tbl := dataset.NewTable(3)
	require.NoError(t, tbl.Append(dataset.Column{ID: "a", Name: "dose", Values: []float64{0.5, -1.25, 3}}))
	require.NoError(t, tbl.Append(dataset.Column{ID: "b", Name: `odd "name"`, Values: []float64{1e-9, 2, 0.1}}))
	require.NoError(t, tbl.Append(dataset.Column{ID: "c", Name: "label", Kind: dataset.Categorical, Values: []float64{0, 2, 1}}))

	return tbl
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleTable(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"dose", `odd "name"`, "label"},
		{"0.5", "1e-09", "0"},
		{"-1.25", "2", "2"},
		{"3", "0.1", "1"},
	}, records)
}

func TestWriteSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, export.WriteSQLite(ctx, path, sampleTable(t), ""))
	// a second write replaces the table
	require.NoError(t, export.WriteSQLite(ctx, path, sampleTable(t), ""))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM "samples"`).Scan(&n))
	assert.Equal(t, 3, n)

	var dose, odd float64
	var label int64
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT "a", "b", "c" FROM "samples" WHERE "_row" = 1`).Scan(&dose, &odd, &label))
	assert.Equal(t, -1.25, dose)
	assert.Equal(t, 2.0, odd)
	assert.Equal(t, int64(2), label)

	var name string
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT "name" FROM "samples_columns" WHERE "id" = 'b'`).Scan(&name))
	assert.Equal(t, `odd "name"`, name)

	rows, err := db.QueryContext(ctx, `SELECT "id", "kind" FROM "samples_columns" ORDER BY "position"`)
	require.NoError(t, err)
	defer rows.Close()
	var got [][2]string
	for rows.Next() {
		var id, kind string
		require.NoError(t, rows.Scan(&id, &kind))
		got = append(got, [2]string{id, kind})
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, [][2]string{{"a", "continuous"}, {"b", "continuous"}, {"c", "categorical"}}, got)
}

// TestWriteSQLite_NaNStoredAsNull a log of negative noise must still export.
func TestWriteSQLite_NaNStoredAsNull(t *testing.T) {
	ctx := context.Background()
	tbl := dataset.NewTable(2)
	require.NoError(t, tbl.Append(dataset.Column{ID: "a", Name: "xa", Values: []float64{math.NaN(), 1}}))
	require.NoError(t, tbl.Append(dataset.Column{ID: "b", Name: "xb", Values: []float64{math.Inf(1), 2}}))
	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, export.WriteSQLite(ctx, path, tbl, ""))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var a, b sql.NullFloat64
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT "a", "b" FROM "samples" WHERE "_row" = 0`).Scan(&a, &b))
	assert.False(t, a.Valid)
	assert.True(t, b.Valid)
	assert.True(t, math.IsInf(b.Float64, 1))

	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT "a" FROM "samples" WHERE "_row" = 1`).Scan(&a))
	assert.Equal(t, sql.NullFloat64{Float64: 1, Valid: true}, a)
}

// TestWriteSQLite_NamesDifferingInCase display names unique only by case
// still get distinct columns.
func TestWriteSQLite_NamesDifferingInCase(t *testing.T) {
	ctx := context.Background()
	tbl := dataset.NewTable(1)
	require.NoError(t, tbl.Append(dataset.Column{ID: "a", Name: "Xa", Values: []float64{1}}))
	require.NoError(t, tbl.Append(dataset.Column{ID: "b", Name: "xa", Values: []float64{2}}))
	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, export.WriteSQLite(ctx, path, tbl, ""))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var a, b float64
	require.NoError(t, db.QueryRowContext(ctx, `SELECT "a", "b" FROM "samples"`).Scan(&a, &b))
	assert.Equal(t, []float64{1, 2}, []float64{a, b})
}

func TestWriteSQLite_Rejections(t *testing.T) {
	ctx := context.Background()
	tbl := sampleTable(t)
	path := filepath.Join(t.TempDir(), "out.db")
	for _, name := range []string{"1abc", "drop table", "x;y"} {
		assert.ErrorIs(t, export.WriteSQLite(ctx, path, tbl, name), export.ErrInvalidTableName, name)
	}
	assert.Error(t, export.WriteSQLite(ctx, " ", tbl, ""))
}
