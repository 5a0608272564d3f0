// SPDX-License-Identifier: MIT
// Package compat checks which matrix files in a directory can be combined.
//
// A Checker lists the files with the configured extension, loads each one
// through a MatrixLoader and evaluates every pair: addition and subtraction
// need equal shapes, multiplication needs the left column count to equal the
// right row count. The resulting Report lists compatible pairs per Operation
// plus a Note for every failed check, and renders both as text.
package compat
