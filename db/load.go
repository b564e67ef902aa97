package db

import (
	"context"
	"database/sql"
	"strings"

	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/table"
)

// LoadTable inserts t's rows into the table of the same name in one transaction.
// The target table must already exist with t's columns.
func LoadTable(ctx context.Context, db *sql.DB, t table.Table) error {
	if len(t.Schema.Columns) == 0 {
		return errors.Newf("table %s has no columns", t.Schema.Name)
	}

	columns := make([]string, len(t.Schema.Columns))
	for i, c := range t.Schema.Columns {
		columns[i] = quoteIdent(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := "INSERT INTO " + quoteIdent(t.Schema.Name) +
		" (" + strings.Join(columns, ", ") + ") VALUES (" + placeholders + ")"

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "begin load of %s", t.Schema.Name)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return errors.Wrapf(err, "prepare insert into %s", t.Schema.Name)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		values := row.Values(t.Schema.Columns)
		args := make([]interface{}, len(values))
		for j, v := range values {
			args[j] = v
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return errors.Wrapf(err, "insert %s row %d", t.Schema.Name, i+1)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "commit load of %s", t.Schema.Name)
	}
	return nil
}

// CountRows returns the number of rows in name.
func CountRows(ctx context.Context, db *sql.DB, name string) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(name)).Scan(&n); err != nil {
		return 0, errors.Wrapf(err, "count %s", name)
	}
	return n, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
