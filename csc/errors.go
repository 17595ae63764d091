// SPDX-License-Identifier: MIT
// Package csc: sentinel error set.
// Every public operation returns one of these sentinels, possibly wrapped with
// an operation or validator tag. Tests and callers match them via errors.Is.

package csc

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csc: ..." so wrapped chains stay greppable.
// Validators wrap with "<Validator>: %w", facades add "<Op>: %w" on top.

var (
	// ErrBadShape is returned when the shape is invalid: rows<=0, cols<0, or a
	// dimension that does not fit the int32 index contract.
	ErrBadShape = errors.New("csc: invalid shape")

	// ErrMalformed indicates that the arrays break a CSC invariant (length
	// mismatch, bad column pointers, unsorted or out-of-range row indices).
	ErrMalformed = errors.New("csc: malformed column-compressed arrays")

	// ErrNotCSC is returned by the adapter when the source is not already
	// column-compressed. No conversion is attempted.
	ErrNotCSC = errors.New("csc: not a column-compressed sparse matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("csc: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("csc: nil matrix")

	// ErrNilSource indicates that a nil Exporter was passed to the adapter.
	ErrNilSource = errors.New("csc: nil source")

	// ErrBadLayout indicates an unknown Layout value.
	ErrBadLayout = errors.New("csc: unknown layout")
)
