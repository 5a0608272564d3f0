// SPDX-License-Identifier: MIT
// Package: spmat/builder
//
// impl_random_sparse.go - RandomSparse(rows, cols, p) constructor.
//
// Model:
//   - Every cell (i,j) is a Bernoulli trial with probability p.
//   - Trials run in row-major order (i asc, then j asc); a hit draws its
//     value from cfg.valueFn right away, so the RNG stream is fixed per seed.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrBadSize).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and runs without an RNG.
//
// Complexity:
//   - Time: O(rows·cols) trials.
//   - Space: O(nnz) for the result.

package builder

import "github.com/katalvlaran/spmat/sparse"

// Method tags for error context.
const (
	MethodRandomSparse = "RandomSparse"
	MethodDiagonal     = "Diagonal"
	MethodBanded       = "Banded"
)

// RandomSparse samples a rows×cols matrix whose cells are non-zero
// independently with probability p.
func RandomSparse(rows, cols int, p float64, opts ...BuilderOption) (*sparse.Sparse, error) {
	// 1) Validate parameters (fail fast, nothing allocated).
	if err := validateSize(MethodRandomSparse, rows, cols); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandomSparse, p); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	rng := cfg.rng
	if rng == nil && p > MinProbability && p < MaxProbability {
		return nil, builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%g", p)
	}

	// 2) Allocate the result.
	m, err := sparse.NewSparse(rows, cols)
	if err != nil {
		return nil, builderErrorf(MethodRandomSparse, err, "NewSparse(%d,%d)", rows, cols)
	}
	if p == MinProbability {
		return m, nil
	}

	// 3) Trials in stable row-major order.
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if p < MaxProbability && rng.Float64() >= p {
				continue
			}
			if err = m.Set(i, j, cfg.valueFn(rng)); err != nil {
				return nil, builderErrorf(MethodRandomSparse, err, "Set(%d,%d)", i, j)
			}
		}
	}

	return m, nil
}
