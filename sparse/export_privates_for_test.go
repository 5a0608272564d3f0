// SPDX-License-Identifier: MIT
// Package sparse - test-only bridges to unexported internals.
//
// These helpers live in a non-_test file so external sparse_test packages can
// reach the row index and raw storage. They carry the _TestOnly suffix and
// must not be used by production code.

package sparse

// RowIndex_TestOnly exposes buildRowIndex as a plain map copy.
func RowIndex_TestOnly(m *Sparse) map[int][]int {
	idx := buildRowIndex(m)
	out := make(map[int][]int, len(idx))
	for r, cols := range idx {
		out[r] = append([]int(nil), cols...)
	}

	return out
}

// HasExplicitZero_TestOnly reports whether the raw store holds a 0 value,
// i.e. whether invariant Z has been broken.
func HasExplicitZero_TestOnly(m *Sparse) bool {
	for _, v := range m.entries {
		if v == 0 {
			return true
		}
	}

	return false
}

// OutOfShape_TestOnly reports whether any stored key lies outside the shape.
func OutOfShape_TestOnly(m *Sparse) bool {
	for k := range m.entries {
		if !m.inBounds(k.r, k.c) {
			return true
		}
	}

	return false
}
