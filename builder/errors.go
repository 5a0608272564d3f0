// SPDX-License-Identifier: MIT
// Package: spmat/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with builderErrorf (%w keeps the
//     sentinel reachable).
//   • Option constructors panic on meaningless input; constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive row, column or order argument.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadBand indicates negative band widths for Banded.
var ErrBadBand = errors.New("builder: band widths must be >= 0")

// builderErrorf prefixes err with the method name and formatted context:
// "<Method>: <context>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
