// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by storage, kernels and adapters.
// This file holds ONLY value types (Shape, Entry) and the internal map key.
package sparse

import "fmt"

// Shape is the (rows, cols) pair describing matrix extents.
type Shape struct {
	Rows int // number of rows (> 0 for any constructed matrix)
	Cols int // number of columns (> 0 for any constructed matrix)
}

// String renders the shape as "RxC", e.g. "2x3".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Valid reports whether both extents are positive.
func (s Shape) Valid() bool {
	return s.Rows > 0 && s.Cols > 0
}

// Entry is one stored (row, col) → value association.
// Entries returned by Sparse never carry Value == 0.
type Entry struct {
	Row   int   // zero-based row index
	Col   int   // zero-based column index
	Value int64 // non-zero value
}

// key is the (row, col) coordinate used as the map key of the entry store.
// Two ints keep it compact and hash-friendly.
type key struct {
	r int // row index
	c int // column index
}

// entryLess orders entries row-major: by row, then by column.
// Used wherever a deterministic traversal is exposed to callers.
func entryLess(a, b Entry) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
