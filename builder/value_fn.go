// SPDX-License-Identifier: MIT
// Package builder provides cell value distributions for matrix constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultValue is the value stored in each cell when no ValueFn is configured.
const DefaultValue int64 = 1

// ValueFn produces a non-zero cell value given an optional *rand.Rand.
// It must be deterministic for a given RNG seed.
type ValueFn func(rng *rand.Rand) int64

// ConstantValueFn returns a ValueFn that always yields v.
// Panics if v == 0, since a zero cell is never stored.
// Complexity: O(1) time, O(1) space.
func ConstantValueFn(v int64) ValueFn {
	if v == 0 {
		panic("ConstantValueFn: value must be non-zero")
	}

	return func(_ *rand.Rand) int64 {
		return v
	}
}

// UniformValueFn returns a ValueFn sampling uniformly from the non-zero
// integers in [lo, hi]. Panics if hi < lo, if the range holds only 0, or if
// it is too wide to count in an int64.
// With a nil rng it yields the non-zero value closest to lo.
// Complexity: O(1) time, O(1) space.
func UniformValueFn(lo, hi int64) ValueFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformValueFn: require lo <= hi, got lo=%d, hi=%d", lo, hi))
	}
	if lo == 0 && hi == 0 {
		panic("UniformValueFn: range [0,0] has no non-zero value")
	}
	width := hi - lo + 1
	if width <= 0 {
		panic(fmt.Sprintf("UniformValueFn: range [%d,%d] too wide", lo, hi))
	}
	spansZero := lo <= 0 && hi >= 0
	if spansZero {
		width--
	}

	return func(rng *rand.Rand) int64 {
		var x int64
		if rng != nil {
			x = rng.Int63n(width)
		}
		v := lo + x
		// Skip over 0 by shifting the upper half up by one.
		if spansZero && v >= 0 {
			v++
		}

		return v
	}
}
