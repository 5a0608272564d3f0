// SPDX-License-Identifier: MIT
// Package: spmat/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating its builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the cell value generator. The function must never
// return 0 and must be deterministic for a given RNG state. Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithValueRange draws values uniformly from [lo, hi] without 0.
// Panics under the same conditions as UniformValueFn.
func WithValueRange(lo, hi int64) BuilderOption {
	return WithValueFn(UniformValueFn(lo, hi))
}

// WithConstantValue fills every cell with v. Panics if v == 0.
func WithConstantValue(v int64) BuilderOption {
	return WithValueFn(ConstantValueFn(v))
}
