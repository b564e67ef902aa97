package db

import (
	"context"
	"database/sql"
	"embed"
	"path"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/eventgen/errors"
)

//go:embed sqlite/migrations/*.sql
var migrationFS embed.FS

const migrationDir = "sqlite/migrations"

// Migration is one embedded schema step, named NNN_description.sql.
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Migrations returns the embedded migrations in version order.
func Migrations() ([]Migration, error) {
	entries, err := migrationFS.ReadDir(migrationDir)
	if err != nil {
		return nil, errors.Wrap(err, "read migrations")
	}

	var out []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version, _, ok := strings.Cut(entry.Name(), "_")
		if !ok {
			return nil, errors.Newf("migration %s: name must be NNN_description.sql", entry.Name())
		}
		if _, err := strconv.Atoi(version); err != nil {
			return nil, errors.Newf("migration %s: version %q is not numeric", entry.Name(), version)
		}
		body, err := migrationFS.ReadFile(path.Join(migrationDir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", entry.Name())
		}
		out = append(out, Migration{Version: version, Name: entry.Name(), SQL: string(body)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Migrate applies every embedded migration not yet recorded in schema_migrations.
// Migration 000 creates that table and is safe to re-run.
func Migrate(ctx context.Context, db *sql.DB, logger *zap.SugaredLogger) error {
	migrations, err := Migrations()
	if err != nil {
		return err
	}

	applied := 0
	for _, m := range migrations {
		done, err := isApplied(ctx, db, m)
		if err != nil {
			return err
		}
		if done {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return err
		}
		applied++
		if logger != nil {
			logger.Debugw("migration applied", "migration", m.Name)
		}
	}

	if logger != nil {
		logger.Debugw("schema ready", "applied", applied, "known", len(migrations))
	}
	return nil
}

func isApplied(ctx context.Context, db *sql.DB, m Migration) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)", m.Version).Scan(&exists)
	if err == nil {
		return exists, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, errors.Wrapf(ctxErr, "check %s", m.Name)
	}
	// schema_migrations only exists after 000
	if m.Version == "000" {
		return false, nil
	}
	return false, errors.Wrapf(err, "check %s", m.Name)
}

func apply(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "begin %s", m.Name)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return errors.Wrapf(err, "execute %s", m.Name)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
		return errors.Wrapf(err, "record %s", m.Name)
	}
	return errors.Wrapf(tx.Commit(), "commit %s", m.Name)
}
