// SPDX-License-Identifier: MIT
// Package: codec
//
// reader.go - parser for the line-oriented matrix text format:
//
//	rows=<positive integer>
//	cols=<positive integer>
//	(<row>, <col>, <value>)
//	...
//
// Contract:
//   - Header keys are exactly "rows" then "cols"; whitespace around the value is ignored.
//   - Blank lines before the header and among entries are skipped.
//   - Each entry is wrapped in parentheses and holds three comma-separated
//     integers; every field is trimmed before parsing; the value may carry a sign.
//   - Value 0 is legal and stores nothing. A repeated coordinate overwrites
//     the earlier one (a repeated 0 deletes it).
//   - Negative indices and entries outside the declared shape are rejected,
//     unless WithGrowToFit widens the shape.
//
// Complexity: O(L + E) for L input bytes and E entry lines.

package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/spmat/sparse"
)

// Header keys and entry delimiters (no magic literals in the parser).
const (
	keyRows    = "rows"
	keyCols    = "cols"
	headerSep  = "="
	entryOpen  = "("
	entryClose = ")"
	fieldSep   = ","
	entryArity = 3
)

// Scanner buffer sizing: lines longer than maxLineBytes fail the read.
const (
	initLineBytes = 64 * 1024
	maxLineBytes  = 1 << 20
)

// lineReader yields trimmed lines with 1-based numbering.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initLineBytes), maxLineBytes)

	return &lineReader{sc: sc}
}

// next returns the next line trimmed of surrounding whitespace (CR included).
// ok is false at EOF or on a scan error; check err() afterwards.
func (lr *lineReader) next() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++

	return strings.TrimSpace(lr.sc.Text()), true
}

// nextNonBlank skips blank lines.
func (lr *lineReader) nextNonBlank() (string, bool) {
	for {
		text, ok := lr.next()
		if !ok || text != "" {
			return text, ok
		}
	}
}

func (lr *lineReader) err() error {
	if err := lr.sc.Err(); err != nil {
		return fmt.Errorf("codec: read line %d: %w", lr.line+1, err)
	}

	return nil
}

// Read parses one matrix from r.
//
// Implementation:
//   - Stage 1: parse "rows=" and "cols=" headers.
//   - Stage 2: parse entry lines, validating arity, sign and extent.
//   - Stage 3: build the matrix; zero-valued entries leave no trace.
//
// Errors:
//   - *FormatError (errors.Is(err, ErrFormat)) for any grammar or validation failure.
//   - A wrapped I/O error when r fails.
func Read(r io.Reader, opts ...Option) (*sparse.Sparse, error) {
	cfg := newReadConfig(opts...)
	lr := newLineReader(r)

	rows, err := readHeader(lr, keyRows)
	if err != nil {
		return nil, err
	}
	cols, err := readHeader(lr, keyCols)
	if err != nil {
		return nil, err
	}
	if exceedsCells(rows, cols, cfg.maxCells) {
		return nil, formatErrorf(lr.line, fmt.Sprintf("%dx%d", rows, cols), ReasonDimensionTooBig, nil)
	}

	var (
		entries        []sparse.Entry
		ent            sparse.Entry
		maxRow, maxCol = rows - 1, cols - 1
	)
	for {
		text, ok := lr.next()
		if !ok {
			break
		}
		if text == "" {
			continue // blank lines among entries are allowed
		}
		if ent, err = parseEntry(lr.line, text); err != nil {
			return nil, err
		}
		if ent.Row >= rows || ent.Col >= cols {
			if !cfg.growToFit {
				return nil, formatErrorf(lr.line, text, ReasonOutsideShape,
					fmt.Errorf("declared %dx%d", rows, cols))
			}
			// The grown extent is index+1, which must stay representable.
			if ent.Row == math.MaxInt || ent.Col == math.MaxInt {
				return nil, formatErrorf(lr.line, text, ReasonDimensionTooBig, nil)
			}
			maxRow, maxCol = max(maxRow, ent.Row), max(maxCol, ent.Col)
			if exceedsCells(maxRow+1, maxCol+1, cfg.maxCells) {
				return nil, formatErrorf(lr.line, text, ReasonDimensionTooBig,
					fmt.Errorf("grows %dx%d to %dx%d", rows, cols, maxRow+1, maxCol+1))
			}
		}
		entries = append(entries, ent)
	}
	if err = lr.err(); err != nil {
		return nil, err
	}

	return sparse.FromEntries(maxRow+1, maxCol+1, entries)
}

// exceedsCells reports whether rows*cols is above limit. limit <= 0 means no cap.
// The product is compared by division so it cannot overflow.
func exceedsCells(rows, cols int, limit int64) bool {
	return limit > 0 && int64(rows) > limit/int64(cols)
}

// Unmarshal parses a matrix from an in-memory buffer.
func Unmarshal(data []byte, opts ...Option) (*sparse.Sparse, error) {
	return Read(bytes.NewReader(data), opts...)
}

// readHeader consumes the next non-blank line and parses "<key>=<n>", n > 0.
func readHeader(lr *lineReader, want string) (int, error) {
	text, ok := lr.nextNonBlank()
	if !ok {
		if err := lr.err(); err != nil {
			return 0, err
		}
		return 0, formatErrorf(0, "", ReasonMissingHeader+" "+strconv.Quote(want), nil)
	}

	k, v, found := strings.Cut(text, headerSep)
	if !found || strings.TrimSpace(k) != want {
		return 0, formatErrorf(lr.line, text, ReasonBadHeader,
			fmt.Errorf("want %s=<n>", want))
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, formatErrorf(lr.line, text, ReasonBadHeader, err)
	}
	if n <= 0 {
		return 0, formatErrorf(lr.line, text, ReasonBadDimension, nil)
	}

	return n, nil
}

// parseEntry parses "(row, col, value)".
func parseEntry(line int, text string) (sparse.Entry, error) {
	if !strings.HasPrefix(text, entryOpen) || !strings.HasSuffix(text, entryClose) {
		return sparse.Entry{}, formatErrorf(line, text, ReasonBadEntry, nil)
	}
	inner := text[len(entryOpen) : len(text)-len(entryClose)]
	fields := strings.Split(inner, fieldSep)
	if len(fields) != entryArity {
		return sparse.Entry{}, formatErrorf(line, text, ReasonBadEntry,
			fmt.Errorf("got %d fields", len(fields)))
	}

	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return sparse.Entry{}, formatErrorf(line, text, ReasonBadEntry, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return sparse.Entry{}, formatErrorf(line, text, ReasonBadEntry, err)
	}
	val, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return sparse.Entry{}, formatErrorf(line, text, ReasonBadEntry, err)
	}
	if row < 0 || col < 0 {
		return sparse.Entry{}, formatErrorf(line, text, ReasonNegativeIndex, nil)
	}

	return sparse.Entry{Row: row, Col: col, Value: val}, nil
}
