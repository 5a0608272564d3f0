// SPDX-License-Identifier: MIT
// Package codec: functional options for Read.
//
// Defaults:
//   - growToFit = false: an entry outside the declared rows/cols is a FormatError.
//   - maxCells  = 0:     no cap on rows*cols.

package codec

// Option customizes Read.
type Option func(*readConfig)

// readConfig is resolved once per Read call.
type readConfig struct {
	growToFit bool  // widen the declared shape to cover every entry
	maxCells  int64 // reject headers whose rows*cols exceed this (0 = no cap)
}

// newReadConfig applies options in order; last wins.
func newReadConfig(opts ...Option) readConfig {
	cfg := readConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithGrowToFit tolerates entries beyond the declared shape by enlarging the
// resulting matrix to the smallest shape that covers them. The declared
// extents remain the lower bound.
func WithGrowToFit() Option {
	return func(c *readConfig) { c.growToFit = true }
}

// WithMaxCells rejects a matrix of more than n logical cells, whether the
// header declares it or WithGrowToFit grows to it. n == 0 means no cap.
// Panics on n < 0.
func WithMaxCells(n int64) Option {
	if n < 0 {
		panic("codec: WithMaxCells: n must be >= 0")
	}
	return func(c *readConfig) { c.maxCells = n }
}
