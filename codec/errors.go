// SPDX-License-Identifier: MIT
// Package codec: error set.
// Every parse failure is a *FormatError that matches ErrFormat via errors.Is
// and, when a lower-level cause exists (strconv, io), unwraps to it.

package codec

import (
	"errors"
	"fmt"
)

// ErrFormat is the class sentinel for malformed input.
var ErrFormat = errors.New("codec: malformed matrix text")

// Reasons reported in FormatError.Reason. Kept as constants so tests and
// callers never match on free-form strings.
const (
	ReasonMissingHeader   = "missing header line"
	ReasonBadHeader       = "malformed header line"
	ReasonBadDimension    = "dimension must be a positive integer"
	ReasonBadEntry        = "entry must be (row, col, value)"
	ReasonNegativeIndex   = "row and column indices must be non-negative"
	ReasonOutsideShape    = "entry outside declared shape"
	ReasonDimensionTooBig = "shape too large"
)

// FormatError describes one rejected line of matrix text.
type FormatError struct {
	Line   int    // 1-based line number; 0 when the input ended early
	Text   string // offending line, trimmed
	Reason string // one of the Reason* constants
	Err    error  // underlying cause, may be nil
}

// Error renders "codec: line N \"text\": reason[: cause]".
func (e *FormatError) Error() string {
	msg := fmt.Sprintf("codec: line %d %q: %s", e.Line, e.Text, e.Reason)
	if e.Line == 0 {
		msg = "codec: " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is reports class membership so errors.Is(err, ErrFormat) holds.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// formatErrorf builds a *FormatError for the given line.
func formatErrorf(line int, text, reason string, cause error) error {
	return &FormatError{Line: line, Text: text, Reason: reason, Err: cause}
}
