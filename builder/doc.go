// SPDX-License-Identifier: MIT

// Package builder generates sparse integer matrices for tests, benchmarks and
// the `spmat gen` command.
//
// Constructors:
//
//   - RandomSparse(rows, cols, p): every cell is non-zero independently with
//     probability p, trials in row-major order.
//   - Diagonal(n): an n×n matrix with a value on every diagonal cell.
//   - Banded(n, lower, upper): an n×n matrix filled within the band
//     -lower ≤ col-row ≤ upper.
//
// Configuration flows through BuilderOption values:
//
//   - WithSeed / WithRand: the RNG. Required by RandomSparse when 0 < p < 1.
//   - WithValueFn / WithValueRange / WithConstantValue: how cell values are
//     drawn. Value functions never return 0, so every drawn cell is stored.
//
// Option constructors panic on meaningless input (nil RNG, empty range).
// Constructors themselves never panic; they return errors wrapping the
// sentinels in errors.go.
//
// Determinism: for a fixed seed and options, every constructor returns the
// same matrix.
package builder
