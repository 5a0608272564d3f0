// SPDX-License-Identifier: MIT

// Package codec reads and writes sparse matrices in a small line-oriented
// text format:
//
//	rows=3
//	cols=4
//	(0, 1, 5)
//	(2, 3, -7)
//
// Read validates the headers and every entry line and reports the first
// problem as a *FormatError carrying the line number and text. Write emits
// entries in row-major order so the output is reproducible, and anything
// written by Write is accepted by Read with an identical result.
package codec
