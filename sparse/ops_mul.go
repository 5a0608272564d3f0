// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Mul: product driven by a's non-zeros and a row index over b.
//   - Transpose: O(nnz) coordinate swap.
//
// Determinism & Performance:
//   - The row index lists only genuinely non-zero columns, sorted ascending,
//     so no zero term ever reaches the accumulator.
//   - Integer accumulation is order-independent; traversal order of a's map
//     does not change the result.

package sparse

import "sort"

// rowIndex maps a row k of some matrix to the sorted columns j with m(k,j) != 0.
// Rows without entries are absent from the map.
type rowIndex map[int][]int

// buildRowIndex groups m's non-zero entries by row.
//
// Implementation:
//   - Stage 1: bucket every key's column under its row.
//   - Stage 2: sort each bucket so lookups and traversal are deterministic.
//
// Complexity: O(nnz log f), f = max row fan-out.
func buildRowIndex(m *Sparse) rowIndex {
	idx := make(rowIndex, m.r)
	for k := range m.entries {
		idx[k.r] = append(idx[k.r], k.c)
	}
	for _, cols := range idx {
		sort.Ints(cols)
	}

	return idx
}

// Mul computes C = A × B without visiting zero cells.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) → ErrShapeMismatch naming both shapes.
//   - Stage 2: build the row index of b (row k → columns j with b(k,j) != 0).
//   - Stage 3: for each (i,k)=v1 in a and each j in index[k]:
//     C(i,j) = C(i,j) + v1*b(k,j), read-then-write through put so earlier
//     contributions are kept and sums that net to zero are pruned.
//
// Behavior highlights:
//   - Result shape is (a.Rows(), b.Cols()).
//   - Operands are never mutated.
//   - Overflow follows Go's int64 wrap-around; no saturation.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(nnz(b) log f + nnz(a)·f̄), f̄ = mean fan-out of b's rows.
//   - Space O(nnz(b) + nnz(C)).
func Mul(a, b *Sparse) (*Sparse, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	res := newSparse(a.r, b.c, 0)
	idx := buildRowIndex(b)

	var (
		cols   []int // columns of b's row k
		j      int   // column iterator
		v2     int64 // b(k,j)
		target key   // (i,j) in the result
	)
	for ak, v1 := range a.entries {
		cols = idx[ak.c]
		if len(cols) == 0 {
			continue // row k of b is empty: no contribution
		}
		for _, j = range cols {
			v2 = b.get(key{r: ak.c, c: j})
			target = key{r: ak.r, c: j}
			// Accumulate: the partial sum must be read back before writing.
			res.put(target, res.get(target)+v1*v2)
		}
	}

	return res, nil
}

// Transpose returns mᵀ: shape swapped and every (r,c)=v moved to (c,r)=v.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func Transpose(m *Sparse) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}

	res := newSparse(m.c, m.r, len(m.entries))
	for k, v := range m.entries {
		res.entries[key{r: k.c, c: k.r}] = v // v != 0 by invariant Z
	}

	return res, nil
}
