// Package verify reads a finished run back and checks its cross-table
// invariants: row shape per table, then referential and role rules as SQL over
// an in-memory SQLite copy of the run.
package verify

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/teranos/eventgen/db"
	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/gen"
	"github.com/teranos/eventgen/logger"
	"github.com/teranos/eventgen/run"
	"github.com/teranos/eventgen/table"
)

// Violation is one broken invariant.
type Violation struct {
	Check  string `json:"check"`
	Table  string `json:"table"`
	Detail string `json:"detail"`
}

// Report summarizes a verified run.
type Report struct {
	RunID          string         `json:"run_id"`
	Dir            string         `json:"dir"`
	Tables         map[string]int `json:"tables"`
	DistinctEvents int            `json:"distinct_events"`
	Violations     []Violation    `json:"violations"`
}

// OK reports whether no invariant was broken.
func (r *Report) OK() bool { return len(r.Violations) == 0 }

// Verifier checks run directories.
type Verifier struct {
	logger *zap.SugaredLogger
}

// NewVerifier creates a verifier logging as component "verify".
func NewVerifier() *Verifier {
	return &Verifier{logger: logger.ComponentLogger("verify")}
}

// Verify checks the run in dir. A returned error means the run could not be
// read; broken invariants are reported as violations.
func (v *Verifier) Verify(ctx context.Context, dir string) (*Report, error) {
	manifest, err := run.ReadManifest(dir)
	if err != nil {
		return nil, err
	}
	codec, err := table.ForFormat(manifest.Format)
	if err != nil {
		return nil, err
	}
	ctx = logger.WithRunID(ctx, manifest.RunID)
	log := v.logger.With(logger.FieldsFromContext(ctx)...)

	store, err := db.OpenWithMigrations(db.MemoryPath, log)
	if err != nil {
		return nil, errors.Wrap(err, "open verification store")
	}
	defer store.Close()

	report := &Report{
		RunID:      manifest.RunID,
		Dir:        dir,
		Tables:     make(map[string]int),
		Violations: []Violation{},
	}
	rows := NewRowValidator(manifest.Vocabulary)

	for _, schema := range gen.Schemas() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "verify cancelled")
		}
		t, err := table.ReadTable(codec, dir, schema.Name)
		if err != nil {
			return nil, err
		}
		report.Tables[schema.Name] = len(t.Rows)

		if !slices.Equal(t.Schema.Columns, schema.Columns) {
			report.add("header", schema.Name, "columns %v, want %v", t.Schema.Columns, schema.Columns)
			continue
		}
		if want, ok := manifest.Tables[schema.Name]; ok && want != len(t.Rows) {
			report.add("row_count", schema.Name, "%d rows, manifest says %d", len(t.Rows), want)
		}
		report.Violations = append(report.Violations, rows.ValidateTable(*t)...)

		if err := db.LoadTable(ctx, store, table.Table{Schema: schema, Rows: t.Rows}); err != nil {
			return nil, err
		}
		log.Debugw("table loaded", logger.FieldTable, schema.Name, logger.FieldRows, len(t.Rows))
	}

	violations, err := CheckStore(ctx, store, manifest.Vocabulary)
	if err != nil {
		return nil, err
	}
	report.Violations = append(report.Violations, violations...)

	if report.DistinctEvents, err = DistinctEvents(ctx, store); err != nil {
		return nil, err
	}

	log.Infow("run verified",
		logger.FieldCount, len(report.Violations),
		"distinct_events", report.DistinctEvents,
	)
	return report, nil
}

func (r *Report) add(check, tableName, format string, args ...interface{}) {
	r.Violations = append(r.Violations, Violation{
		Check:  check,
		Table:  tableName,
		Detail: fmt.Sprintf(format, args...),
	})
}

// DistinctEvents counts schedule events by their identity columns, the way
// viewers group assignments back into events.
func DistinctEvents(ctx context.Context, store *sql.DB) (int, error) {
	query := "SELECT COUNT(*) FROM (SELECT DISTINCT " + joinColumns(gen.EventColumns) + " FROM schedule_events)"
	var n int
	if err := store.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count distinct events")
	}
	return n, nil
}
