// Package errors provides error handling for jcodemodel.
//
// This package re-exports github.com/cockroachdb/errors so that every
// failure raised while assembling or rendering a code model carries a stack
// trace and can be matched with errors.Is against the sentinels below.
//
// Usage:
//
//	if _, err := body.SetPos(12); err != nil {
//	    if errors.IsIllegalArgument(err) {
//	        // cursor was outside [0, size]
//	    }
//	}
//
//	return errors.Wrapf(err, "failed to render %s", name)
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
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	CombineErrors = crdb.CombineErrors
)

// Error inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Assertions
var (
	AssertionFailedf   = crdb.AssertionFailedf
	IsAssertionFailure = crdb.IsAssertionFailure
)

// Sentinel errors for code model operations.
// Wrap these with errors.Wrapf() to add context while preserving the type.
var (
	// ErrIllegalArgument indicates an argument outside its valid domain,
	// e.g. a cursor position beyond the block size or a method reference
	// built from the wrong kind of method.
	ErrIllegalArgument = New("illegal argument")

	// ErrIndexNotFound indicates that a unit looked up inside a block is not
	// among its contents.
	ErrIndexNotFound = New("index not found")

	// ErrUnsupportedOperation indicates an operation the model refuses by
	// construction, such as real-number operands in contract expressions.
	ErrUnsupportedOperation = New("unsupported operation")
)

// IsIllegalArgument checks if an error is or wraps ErrIllegalArgument
func IsIllegalArgument(err error) bool {
	return err != nil && Is(err, ErrIllegalArgument)
}

// IsIndexNotFound checks if an error is or wraps ErrIndexNotFound
func IsIndexNotFound(err error) bool {
	return err != nil && Is(err, ErrIndexNotFound)
}

// IsUnsupportedOperation checks if an error is or wraps ErrUnsupportedOperation
func IsUnsupportedOperation(err error) bool {
	return err != nil && Is(err, ErrUnsupportedOperation)
}

// NewIllegalArgumentError creates an illegal-argument error with a formatted message
func NewIllegalArgumentError(format string, args ...interface{}) error {
	return Wrapf(ErrIllegalArgument, format, args...)
}

// NewIndexNotFoundError creates an index-not-found error with a formatted message
func NewIndexNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrIndexNotFound, format, args...)
}

// NewUnsupportedOperationError creates an unsupported-operation error with a formatted message
func NewUnsupportedOperationError(format string, args ...interface{}) error {
	return Wrapf(ErrUnsupportedOperation, format, args...)
}
