// SPDX-License-Identifier: MIT

// Package sparse - coordinate storage & safe accessors.
//
// Purpose:
//   - Hold only non-zero cells in a map keyed by (row, col).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the no-explicit-zero invariant from a single write path (put).
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set: O(1) average; Clone: O(nnz); Entries: O(nnz log nnz).

package sparse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// maxDenseRender caps String() dense rendering; larger matrices get a summary line.
const maxDenseRender = 4096

// Sparse is an integer matrix storing only its non-zero cells.
//   - r,c hold dimensions (rows, cols), fixed for the life of the instance.
//   - entries maps (row, col) to a non-zero value.
//
// The zero value is not usable; construct with NewSparse or FromEntries.
// At, Set, Row, Equal and String accept a nil receiver; other methods require a matrix.
type Sparse struct {
	r, c    int           // row and column counts (> 0)
	entries map[key]int64 // non-zero cells only
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse)(nil)

// NewSparse creates an empty rows×cols matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate an empty entry map.
//
// Complexity: O(1).
func NewSparse(rows, cols int) (*Sparse, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newSparse(rows, cols, 0), nil
}

// newSparse is the internal constructor used by kernels once the shape is known
// to be valid. hint pre-sizes the entry map.
func newSparse(rows, cols, hint int) *Sparse {
	return &Sparse{r: rows, c: cols, entries: make(map[key]int64, hint)}
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Sparse) Rows() int {
	return m.r
}

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Sparse) Cols() int {
	return m.c
}

// Shape returns the (rows, cols) pair.
func (m *Sparse) Shape() Shape {
	return Shape{Rows: m.r, Cols: m.c}
}

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (m *Sparse) NNZ() int {
	return len(m.entries)
}

// Density returns nnz / (rows*cols) in [0, 1].
func (m *Sparse) Density() float64 {
	return float64(len(m.entries)) / (float64(m.r) * float64(m.c))
}

// inBounds reports whether (row, col) lies in the half-open extents.
func (m *Sparse) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the value at (row, col), or 0 when the cell is not stored.
//
// Implementation:
//   - Stage 1 (Validate): 0 ≤ row < Rows() and 0 ≤ col < Cols().
//   - Stage 2 (Execute): map lookup; absence reads as 0.
//
// Errors:
//   - ErrOutOfRange wrapped as "Sparse.At(row,col): ...". row == Rows() is out of range.
//   - ErrNilMatrix when m is nil.
//
// Complexity: O(1) average.
func (m *Sparse) At(row, col int) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, indexErrorf(ctxAt, row, col, err)
	}
	if !m.inBounds(row, col) {
		return 0, indexErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.entries[key{r: row, c: col}], nil
}

// Set assigns v at (row, col). v == 0 removes any stored entry.
//
// Implementation:
//   - Stage 1 (Validate): bounds as in At.
//   - Stage 2 (Execute): delegate to put, the single write path.
//
// Complexity: O(1) average.
func (m *Sparse) Set(row, col int, v int64) error {
	if err := ValidateNotNil(m); err != nil {
		return indexErrorf(ctxSet, row, col, err)
	}
	if !m.inBounds(row, col) {
		return indexErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.put(key{r: row, c: col}, v)

	return nil
}

// put is the only place entries are written. It keeps invariant Z:
// zero deletes, anything else inserts or overwrites.
// Callers guarantee k is in bounds.
func (m *Sparse) put(k key, v int64) {
	if v == 0 {
		delete(m.entries, k)
		return
	}
	m.entries[k] = v
}

// get is the unchecked read used by kernels on coordinates already known to be valid.
func (m *Sparse) get(k key) int64 {
	return m.entries[k]
}

// Clone returns a deep copy. The copy shares no storage with m.
// Complexity: O(nnz).
func (m *Sparse) Clone() *Sparse {
	out := newSparse(m.r, m.c, len(m.entries))
	for k, v := range m.entries {
		out.entries[k] = v
	}

	return out
}

// Equal reports whether m and o have the same shape and the same entries.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(nnz).
func (m *Sparse) Equal(o *Sparse) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c || len(m.entries) != len(o.entries) {
		return false
	}
	for k, v := range m.entries {
		if ov, ok := o.entries[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// Entries returns all stored entries sorted row-major (row asc, then col asc).
// The slice is a copy; mutating it does not affect m.
// Complexity: O(nnz log nnz).
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.r, Col: k.c, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return entryLess(out[i], out[j]) })

	return out
}

// Each calls fn for every stored entry in unspecified order and stops early
// when fn returns false. fn must not mutate m.
// Complexity: O(nnz).
func (m *Sparse) Each(fn func(row, col int, v int64) bool) {
	for k, v := range m.entries {
		if !fn(k.r, k.c, v) {
			return
		}
	}
}

// Row returns the sorted column indices holding non-zero values in row.
// Complexity: O(nnz) scan + O(f log f) sort, where f is the row fan-out.
func (m *Sparse) Row(row int) ([]int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, indexErrorf(ctxRow, row, 0, err)
	}
	if row < 0 || row >= m.r {
		return nil, indexErrorf(ctxRow, row, 0, ErrOutOfRange)
	}
	var cols []int
	for k := range m.entries {
		if k.r == row {
			cols = append(cols, k.c)
		}
	}
	sort.Ints(cols)

	return cols, nil
}

// String renders small matrices densely, one row per line with values
// separated by single spaces. Matrices larger than maxDenseRender cells are
// summarized as "Sparse(RxC, nnz=N)".
// Complexity: O(r*c) for the dense form.
func (m *Sparse) String() string {
	if m == nil {
		return "Sparse(nil)"
	}
	// rows*cols may overflow int, so compare by division.
	if m.r > maxDenseRender || m.c > maxDenseRender/m.r {
		return fmt.Sprintf("Sparse(%s, nnz=%d)", m.Shape(), len(m.entries))
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j = 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(m.entries[key{r: i, c: j}], 10))
		}
	}

	return sb.String()
}
