// SPDX-License-Identifier: MIT
// Package sparse - public API facades.
//
// Purpose:
//   - Thin, intention-revealing constructors and aliases over the canonical kernels.
//   - No logic duplication: each facade validates or delegates, nothing more.

package sparse

import "fmt"

// ---------- Constructors ----------

// FromEntries builds a rows×cols matrix from a list of entries.
// Later entries for the same coordinate overwrite earlier ones; an entry
// with Value 0 removes whatever was stored before it.
//
// Errors:
//   - ErrInvalidDimensions for a non-positive shape.
//   - ErrOutOfRange (wrapped with the entry's position) for a coordinate outside the shape.
//
// Complexity: O(len(entries)).
func FromEntries(rows, cols int, entries []Entry) (*Sparse, error) {
	m, err := NewSparse(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, fmt.Errorf("FromEntries: entry %d: %w", i, err)
		}
	}

	return m, nil
}

// FromDense builds a matrix from a rectangular row-major grid, storing only
// the non-zero cells. Handy for fixtures and small examples.
//
// Errors:
//   - ErrInvalidDimensions for an empty grid or ragged rows.
//
// Complexity: O(r*c).
func FromDense(grid [][]int64) (*Sparse, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("FromDense: empty grid: %w", ErrInvalidDimensions)
	}
	rows, cols := len(grid), len(grid[0])
	m := newSparse(rows, cols, 0)
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("FromDense: row %d has %d cols, want %d: %w", i, len(row), cols, ErrInvalidDimensions)
		}
		for j, v := range row {
			m.put(key{r: i, c: j}, v)
		}
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal). O(n).
func NewIdentity(n int) (*Sparse, error) {
	m, err := NewSparse(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.entries[key{r: i, c: i}] = 1
	}

	return m, nil
}

// ZerosLike returns an empty matrix with the same shape as m.
func ZerosLike(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf("ZerosLike", err)
	}

	return newSparse(m.r, m.c, 0), nil
}

// ToDense materializes m as a row-major grid. Intended for tests, debugging
// and small matrices only: it allocates rows×cols cells. A nil m yields nil.
func ToDense(m *Sparse) [][]int64 {
	if m == nil {
		return nil
	}
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = make([]int64, m.c)
	}
	for k, v := range m.entries {
		out[k.r][k.c] = v
	}

	return out
}
