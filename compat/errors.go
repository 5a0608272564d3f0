// SPDX-License-Identifier: MIT
package compat

import "go.trai.ch/zerr"

var (
	// ErrDirNotFound is returned when the input directory does not exist.
	ErrDirNotFound = zerr.New("input directory does not exist")
	// ErrTooFewFiles is returned when fewer than two matrix files are found.
	ErrTooFewFiles = zerr.New("need at least 2 matrix files")
	// ErrNoCompatiblePairs is returned when no pair supports any operation.
	ErrNoCompatiblePairs = zerr.New("no compatible matrix pairs found")
	// ErrUnknownOperation is returned for an unrecognized operation.
	ErrUnknownOperation = zerr.New("unknown operation")
	// ErrNoSuchPair is returned when a pair index is out of range.
	ErrNoSuchPair = zerr.New("no such pair")
)
