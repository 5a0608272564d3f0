// SPDX-License-Identifier: MIT
package loader

import "go.trai.ch/zerr"

var (
	// ErrEmptyID is returned when Load is called without an identifier.
	ErrEmptyID = zerr.New("empty matrix identifier")

	// ErrNilSource is returned by New when WithSource was given nil.
	ErrNilSource = zerr.New("nil matrix source")
)
