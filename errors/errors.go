// Package errors provides error handling for abasp.
//
// This package re-exports github.com/cockroachdb/errors, providing stack
// traces, wrapping with context, user hints and errors.Is/As inspection.
// Packages declare their own sentinels with New and attach method context
// with Wrapf so callers can branch with Is:
//
//	var ErrArity = errors.New("term: unsupported conjunction arity")
//
//	return "", errors.Wrapf(ErrArity, "And: got %d arguments", n)
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
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
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Common sentinel errors shared across packages.
// Wrap these with Wrap/Wrapf to add context while preserving Is().
var (
	// ErrInvalidConfig indicates a configuration value is out of its domain
	ErrInvalidConfig = New("invalid configuration")

	// ErrNotFound indicates a requested file or entry does not exist
	ErrNotFound = New("not found")
)

// IsInvalidConfigError checks if an error is or wraps ErrInvalidConfig
func IsInvalidConfigError(err error) bool {
	return err != nil && Is(err, ErrInvalidConfig)
}

// NewInvalidConfigError creates an invalid-config error with a formatted message
func NewInvalidConfigError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfig, Newf(format, args...).Error())
}
