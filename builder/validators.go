// SPDX-License-Identifier: MIT
// Package builder provides validation helpers enforcing constructor
// parameter contracts.
package builder

// Probability domain accepted by RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// validateSize ensures every dimension is at least 1.
// Complexity: O(len(dims)) time, O(1) space.
func validateSize(method string, dims ...int) error {
	for _, d := range dims {
		if d < 1 {
			return builderErrorf(method, ErrBadSize, "dimensions must be >= 1, got %v", dims)
		}
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) { // also rejects NaN
		return builderErrorf(method, ErrInvalidProbability, "p=%g not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
