// SPDX-License-Identifier: MIT

// Package sparse implements integer matrices that are mostly zero.
//
// What & Why:
//
//	A Sparse stores only its non-zero cells in a coordinate→value map together
//	with a fixed shape. Arithmetic (Add, Sub, Mul, Transpose) walks the stored
//	entries only, so cost follows the number of non-zeros (nnz) instead of
//	rows×cols. Every result is a freshly allocated matrix; operands are never
//	mutated.
//
// Invariants:
//
//   - Z: no stored entry holds 0. Set(i, j, 0) deletes the cell.
//   - B: every stored coordinate satisfies 0 ≤ row < Rows() and 0 ≤ col < Cols().
//
// Errors:
//
//	ErrInvalidDimensions  - non-positive shape at construction.
//	ErrOutOfRange         - At/Set outside the half-open bounds.
//	ErrDimensionMismatch  - Add/Sub between different shapes.
//	ErrShapeMismatch      - Mul where a.Cols() != b.Rows().
//	ErrNilMatrix          - nil operand.
//
// Complexity:
//
//	At/Set: O(1) average. Add/Sub: O(nnz(a)+nnz(b)). Transpose: O(nnz).
//	Mul: O(nnz(b) log + nnz(a)·f) where f is the mean fan-out of b's rows.
package sparse
