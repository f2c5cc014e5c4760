// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/scmforge/dataset"
)

// DefaultTable is the table name used when none is given.
const DefaultTable = "samples"

// ErrInvalidTableName indicates a table name that is not a plain identifier.
var ErrInvalidTableName = errors.New("export: invalid table name")

// WriteSQLite stores t in the SQLite database at path, replacing any
// existing table of the same name.
//
// Layout:
//   - <table>: "_row" INTEGER PRIMARY KEY, then one column per variable named
//     by its id (REAL, or INTEGER NOT NULL for categorical columns). NaN is
//     stored as NULL.
//   - <table>_columns: id, display name, kind per variable, in column order.
func WriteSQLite(ctx context.Context, path string, t *dataset.Table, table string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("sqlite path is required")
	}
	if table == "" {
		table = DefaultTable
	}
	if !validIdent(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}

	db, err := sql.Open("sqlite", filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite db: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := writeTables(ctx, tx, t, table); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func writeTables(ctx context.Context, tx *sql.Tx, t *dataset.Table, table string) error {
	cols := t.Columns()
	meta := table + "_columns"

	// 1) Schema
	defs := []string{`"_row" INTEGER PRIMARY KEY`}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = quoteIdent(c.ID)
		typ := "REAL"
		if c.Kind == dataset.Categorical {
			typ = "INTEGER NOT NULL"
		}
		defs = append(defs, names[i]+" "+typ)
	}
	stmts := []string{
		"DROP TABLE IF EXISTS " + quoteIdent(table),
		"DROP TABLE IF EXISTS " + quoteIdent(meta),
		"CREATE TABLE " + quoteIdent(table) + " (" + strings.Join(defs, ", ") + ")",
		"CREATE TABLE " + quoteIdent(meta) + ` ("position" INTEGER PRIMARY KEY, "id" TEXT NOT NULL, "name" TEXT NOT NULL, "kind" TEXT NOT NULL)`,
	}
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	// 2) Column metadata
	for i, c := range cols {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO "+quoteIdent(meta)+` ("position", "id", "name", "kind") VALUES (?, ?, ?, ?)`,
			i, c.ID, c.Name, c.Kind.String()); err != nil {
			return fmt.Errorf("insert column %s: %w", c.ID, err)
		}
	}

	// 3) Samples
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)+1), ", ")
	insert, err := tx.PrepareContext(ctx, "INSERT INTO "+quoteIdent(table)+
		` ("_row", `+strings.Join(names, ", ")+") VALUES ("+placeholders+")")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()
	args := make([]any, len(cols)+1)
	for i := 0; i < t.Rows(); i++ {
		args[0] = i
		for j, c := range cols {
			v := c.Values[i]
			switch {
			case c.Kind == dataset.Categorical:
				args[j+1] = int64(v)
			case math.IsNaN(v):
				args[j+1] = nil
			default:
				args[j+1] = v
			}
		}
		if _, err := insert.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	return nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func validIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return s != ""
}
