// SPDX-License-Identifier: MIT
package builder

import "github.com/katalvlaran/spmat/sparse"

// Diagonal returns an n×n matrix with cfg.valueFn drawn on each diagonal
// cell in ascending order. With the default ConstantValueFn(1) this is the
// identity matrix.
// Complexity: O(n) time and space.
func Diagonal(n int, opts ...BuilderOption) (*sparse.Sparse, error) {
	return Banded(n, 0, 0, opts...)
}

// Banded returns an n×n matrix filled on every cell with
// -lower <= col-row <= upper, visited in row-major order.
// Complexity: O(n·(lower+upper+1)) time and space.
func Banded(n, lower, upper int, opts ...BuilderOption) (*sparse.Sparse, error) {
	method := MethodBanded
	if lower == 0 && upper == 0 {
		method = MethodDiagonal
	}
	if err := validateSize(method, n); err != nil {
		return nil, err
	}
	if lower < 0 || upper < 0 {
		return nil, builderErrorf(method, ErrBadBand, "lower=%d upper=%d", lower, upper)
	}

	cfg := newBuilderConfig(opts...)
	m, err := sparse.NewSparse(n, n)
	if err != nil {
		return nil, builderErrorf(method, err, "NewSparse(%d,%d)", n, n)
	}
	for i := 0; i < n; i++ {
		lo, hi := max(0, i-lower), min(n-1, i+upper)
		for j := lo; j <= hi; j++ {
			if err = m.Set(i, j, cfg.valueFn(cfg.rng)); err != nil {
				return nil, builderErrorf(method, err, "Set(%d,%d)", i, j)
			}
		}
	}

	return m, nil
}
