// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag; tests and
// callers match them via errors.Is. No kernel panics on user input.

package sparse

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sparse: ..." for easy grepping. Sentinels are
// wrapped at the detection site with sparseErrorf or fmt.Errorf("...: %w").

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, Rows) × [0, Cols).
	// At/Set return it instead of panicking.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates Add/Sub between operands of different shapes.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrShapeMismatch indicates Mul where the left column count differs from
	// the right row count.
	ErrShapeMismatch = errors.New("sparse: inner dimensions do not agree")

	// ErrNilMatrix indicates that a nil *Sparse (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// sparseErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with a method tag and the offending coordinates,
// producing "Sparse.<method>(row,col): <err>".
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}
