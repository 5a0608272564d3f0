// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Provide a single source of truth for operand checks used by the kernels.
//   - Return wrapped sentinels naming both shapes so call sites can report them.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil(a) → NotNil(b) → shape rule.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Sparse) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with identical shapes.
// The mismatch error names both shapes, e.g. "2x2 vs 3x3".
// Complexity: O(1).
func ValidateSameShape(a, b *Sparse) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("ValidateSameShape: %s vs %s: %w", a.Shape(), b.Shape(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows().
// The mismatch error names both shapes.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Sparse) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return fmt.Errorf("ValidateMulCompatible: %s cols=%d vs %s rows=%d: %w",
			a.Shape(), a.c, b.Shape(), b.r, ErrShapeMismatch)
	}

	return nil
}

// AddCompatible reports whether a and b can be added or subtracted.
func AddCompatible(a, b *Sparse) bool {
	return ValidateSameShape(a, b) == nil
}

// MulCompatible reports whether a × b is defined.
func MulCompatible(a, b *Sparse) bool {
	return ValidateMulCompatible(a, b) == nil
}
