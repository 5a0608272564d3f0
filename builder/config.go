// SPDX-License-Identifier: MIT
// Package: spmat/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil               (RandomSparse requires one for 0<p<1)
//   • valueFn = ConstantValueFn(DefaultValue)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Cell value generator; never returns 0.
	valueFn ValueFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn: ConstantValueFn(DefaultValue),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
