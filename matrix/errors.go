// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every exported operation returns one of these sentinels, possibly wrapped
// with call-site context via fmt.Errorf("...: %w"); callers match with errors.Is.
// No public method panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeValue signals a negative entry written into a matrix whose
	// numeric policy requires non-negative values (the default).
	ErrNegativeValue = errors.New("matrix: negative value")

	// ErrDimensionMismatch indicates two operands with different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
