// SPDX-License-Identifier: MIT
// Package spmat is a small toolkit for sparse integer matrices kept in plain
// text files: parse them, combine them, and write the result back.
//
// What is in the box?
//
//	sparse/   - the Sparse type: map-backed storage of non-zero int64 cells,
//	            Add, Sub, Mul and Transpose with shape checks
//	codec/    - reader and writer for the "rows=/cols=/(r, c, v)" text format
//	loader/   - file and mmap sources, a digest-aware load cache with
//	            coalesced misses, and an fsnotify watcher that invalidates it
//	compat/   - scans a directory, reports which file pairs can be added,
//	            subtracted or multiplied, and performs the chosen operation
//	builder/  - random, diagonal and banded generators for tests and demos
//	cmd/spmat - the command line front end (add, sub, mul, transpose, info,
//	            check, gen and an interactive menu)
//
// Quick example:
//
//	rows=2          rows=2
//	cols=2          cols=2        add      rows=2
//	(0, 0, 1)   +   (0, 0, 4)    ─────►   cols=2
//	(1, 1, 2)       (0, 1, 3)              (0, 0, 5)
//	                                       (0, 1, 3)
//	                                       (1, 1, 2)
//
//	go install github.com/katalvlaran/spmat/cmd/spmat@latest
package spmat
