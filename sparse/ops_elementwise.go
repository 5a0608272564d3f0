// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Element-wise Add/Sub over the union of the two operands' key sets.
//   - One shared traversal parameterized by a closed, enumerated combiner.
//
// Determinism & Performance:
//   - O(nnz(a) + nnz(b)) time; never touches the rows×cols grid.
//   - Results are written through put, so cancelling cells vanish.

package sparse

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// combiner enumerates the supported element-wise operations.
// The set is closed on purpose: only the values below are accepted by combine.
type combiner uint8

const (
	combineAdd combiner = iota + 1 // a + b
	combineSub                     // a - b
)

// apply evaluates the combiner on one pair of cell values.
func (op combiner) apply(x, y int64) int64 {
	if op == combineSub {
		return x - y
	}
	return x + y
}

// tag returns the operation tag used in error wrapping.
func (op combiner) tag() string {
	if op == combineSub {
		return opSub
	}
	return opAdd
}

// combine computes out[k] = op(a[k], b[k]) for every k in keys(a) ∪ keys(b).
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result with the operand shape.
//   - Stage 2: walk keys(a); each key reads b (0 when absent).
//   - Stage 3: walk keys(b) not present in a; a contributes 0 there.
//
// Behavior highlights:
//   - The union is visited without materializing a separate key set.
//   - Inputs are never mutated; on error nothing is allocated beyond the check.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (both shapes named in the message).
//
// Complexity:
//   - Time O(nnz(a)+nnz(b)), Space O(nnz(a)+nnz(b)) for the result.
func combine(a, b *Sparse, op combiner) (*Sparse, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(op.tag(), err)
	}

	res := newSparse(a.r, a.c, len(a.entries)+len(b.entries))

	// Keys present in a (and possibly in b).
	for k, av := range a.entries {
		res.put(k, op.apply(av, b.get(k)))
	}
	// Keys present only in b.
	for k, bv := range b.entries {
		if _, seen := a.entries[k]; seen {
			continue
		}
		res.put(k, op.apply(0, bv))
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B as a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(nnz(a)+nnz(b)).
func Add(a, b *Sparse) (*Sparse, error) { return combine(a, b, combineAdd) }

// Sub computes the element-wise difference C = A - B as a fresh matrix.
// Sub(a, a) yields an empty matrix of a's shape.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(nnz(a)+nnz(b)).
func Sub(a, b *Sparse) (*Sparse, error) { return combine(a, b, combineSub) }
