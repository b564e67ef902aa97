package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across eventgen.
const (
	FieldRunID = "run_id"

	FieldTable  = "table"
	FieldRows   = "rows"
	FieldFormat = "format"
	FieldPath   = "path"

	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldSeed       = "seed"

	FieldError = "error"
	FieldCheck = "check"
)

type contextKey string

const runIDKey contextKey = "logger_run_id"

// WithRunID adds a run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// FieldsFromContext extracts logging fields from context.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}
	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, FieldRunID, runID)
	}
	return fields
}

// LoggerFromContext returns a logger carrying the run ID from ctx, if any.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	r := &Runner{logger: logger.ComponentLogger("run")}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
