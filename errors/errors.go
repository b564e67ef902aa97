// Package errors provides error handling for eventgen.
//
// This package re-exports github.com/cockroachdb/errors so every package gets
// stack traces, wrapping, and user-facing hints from one import:
//
//	if err := table.Write(path, schema, rows); err != nil {
//	    return errors.Wrapf(err, "write %s", schema.Name)
//	}
//
//	return errors.WithHint(err, "lower generation.persons or widen the email space")
//
// Sentinels below are matched with errors.Is after any amount of wrapping.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints

	// GetStack returns the stack recorded by New or Wrap, or nil
	GetStack = crdb.GetReportableStackTrace
)

// Sentinel errors shared across generators, the table layer, and the verifier.
var (
	// ErrCapacityExhausted indicates a bounded retry (unique email draw) ran out of attempts
	ErrCapacityExhausted = New("capacity exhausted")

	// ErrInvalidConfig indicates run configuration failed validation
	ErrInvalidConfig = New("invalid configuration")

	// ErrRunExists indicates the run directory already exists
	ErrRunExists = New("run directory already exists")

	// ErrUnsupportedFormat indicates an unknown table file format
	ErrUnsupportedFormat = New("unsupported table format")

	// ErrIncompatibleManifest indicates a run manifest this build cannot read
	ErrIncompatibleManifest = New("incompatible run manifest")
)

// IsCapacityExhausted checks if an error is or wraps ErrCapacityExhausted
func IsCapacityExhausted(err error) bool {
	return err != nil && Is(err, ErrCapacityExhausted)
}

// IsInvalidConfig checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfig(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
