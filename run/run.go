// Package run sequences one generation run: persons first, every dependent
// table from that fixed roster, then one file per table and a manifest, all in
// a fresh directory that no other run touches.
package run

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/eventgen/config"
	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/gen"
	"github.com/teranos/eventgen/identity"
	"github.com/teranos/eventgen/logger"
	"github.com/teranos/eventgen/table"
	"github.com/teranos/eventgen/version"
)

// Runner produces runs from one configuration.
type Runner struct {
	cfg     *config.Config
	emitter ProgressEmitter
	logger  *zap.SugaredLogger
	now     func() time.Time
	newID   func() string
}

// Option configures optional Runner dependencies
type Option func(*Runner)

// WithEmitter sets the progress emitter (default: NopEmitter)
func WithEmitter(e ProgressEmitter) Option {
	return func(r *Runner) { r.emitter = e }
}

// WithClock sets the clock stamping created_at values
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithRunID fixes the run directory name
func WithRunID(id string) Option {
	return func(r *Runner) { r.newID = func() string { return id } }
}

// NewRunner creates a runner for cfg
func NewRunner(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:     cfg,
		emitter: NopEmitter{},
		logger:  logger.ComponentLogger("run"),
		now:     time.Now,
		newID:   NewRunID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result describes a finished run.
type Result struct {
	RunID    string
	Dir      string
	Manifest *Manifest
}

// NewRunID returns a 32-character hex identifier.
func NewRunID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Run generates every table and writes them under <output.dir>/<run id>.
// A failed run removes its directory.
func (r *Runner) Run(ctx context.Context) (res *Result, err error) {
	start := time.Now()
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	codec, err := table.ForFormat(r.cfg.GetOutputFormat())
	if err != nil {
		return nil, err
	}

	runID := r.newID()
	ctx = logger.WithRunID(ctx, runID)
	log := r.logger.With(logger.FieldsFromContext(ctx)...)

	dir, err := createRunDir(r.cfg.GetOutputDir(), runID)
	if err != nil {
		r.emitter.EmitError("prepare", err)
		return nil, err
	}
	defer func() {
		if err != nil {
			if rmErr := os.RemoveAll(dir); rmErr != nil {
				log.Warnw("failed to remove incomplete run", logger.FieldPath, dir, logger.FieldError, rmErr)
			}
		}
	}()

	seed := r.cfg.Generation.Seed
	if seed == 0 {
		// TOML integers are signed 64-bit
		seed = rand.Uint64() >> 1
	}
	log.Infow("run started", logger.FieldPath, dir, logger.FieldSeed, seed, logger.FieldFormat, codec.Format())

	r.emitter.EmitStage("generate", "drawing persons and dependent tables")
	tables, err := Generate(identity.New(seed), r.cfg, r.now())
	if err != nil {
		r.emitter.EmitError("generate", err)
		return nil, err
	}

	r.emitter.EmitStage("write", "writing tables to "+dir)
	counts := make(map[string]int, len(tables))
	for _, t := range tables {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "run cancelled")
		}
		path, err := table.WriteTable(codec, dir, t)
		if err != nil {
			r.emitter.EmitError("write", err)
			return nil, err
		}
		counts[t.Schema.Name] = len(t.Rows)
		log.Infow("table written", logger.FieldTable, t.Schema.Name, logger.FieldRows, len(t.Rows), logger.FieldPath, path)
		r.emitter.EmitProgress(len(t.Rows), map[string]interface{}{"table": t.Schema.Name})
	}

	manifest := &Manifest{
		SchemaVersion:    SchemaVersion,
		GeneratorVersion: version.Get().Version,
		RunID:            runID,
		CreatedAt:        r.now().UTC(),
		Seed:             seed,
		Format:           codec.Format(),
		Generation:       r.cfg.Generation,
		Vocabulary: ManifestVocabulary{
			Roles:        r.cfg.Vocabulary.Roles,
			SubteamRoles: r.cfg.Vocabulary.SubteamRoles,
			AdminRole:    r.cfg.Vocabulary.AdminRole,
			Grades:       r.cfg.Vocabulary.Grades,
		},
		Tables: counts,
	}
	manifest.Generation.Seed = seed
	if err := WriteManifest(dir, manifest); err != nil {
		r.emitter.EmitError("manifest", err)
		return nil, err
	}

	elapsed := time.Since(start).Milliseconds()
	log.Infow("run complete", logger.FieldDurationMS, elapsed)
	r.emitter.EmitComplete(map[string]interface{}{
		"run_id":      runID,
		"dir":         dir,
		"seed":        seed,
		"persons":     counts[gen.TablePersons],
		"duration_ms": elapsed,
	})

	return &Result{RunID: runID, Dir: dir, Manifest: manifest}, nil
}

// createRunDir creates parent if needed and a new, empty run directory in it.
func createRunDir(parent, runID string) (string, error) {
	if err := os.MkdirAll(parent, config.DefaultDirPermissions); err != nil {
		return "", errors.Wrapf(err, "create output directory %s", parent)
	}
	dir := filepath.Join(parent, runID)
	if err := os.Mkdir(dir, config.DefaultDirPermissions); err != nil {
		if os.IsExist(err) {
			return "", errors.WithHint(
				errors.Wrapf(errors.ErrRunExists, "%s", dir),
				"each run needs a new directory; choose another run id or output.dir")
		}
		return "", errors.Wrapf(err, "create run directory %s", dir)
	}
	return dir, nil
}
