// SPDX-License-Identifier: MIT
// Package: codec
//
// writer.go - serializer for the matrix text format.
// Output is "rows=<n>", "cols=<m>", then one "(row, col, value)" line per
// stored entry in row-major order, so identical matrices produce identical
// files. Read(Write(m)) reproduces m exactly.

package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/spmat/sparse"
)

// Write serializes m to w.
func Write(w io.Writer, m *sparse.Sparse) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("codec: write: %w", err)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s%s%d\n%s%s%d\n", keyRows, headerSep, m.Rows(), keyCols, headerSep, m.Cols()); err != nil {
		return fmt.Errorf("codec: write header: %w", err)
	}
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Value); err != nil {
			return fmt.Errorf("codec: write entry (%d,%d): %w", e.Row, e.Col, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("codec: flush: %w", err)
	}

	return nil
}

// Marshal serializes m into a new buffer.
func Marshal(m *sparse.Sparse) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile serializes m to path, creating parent directories as needed.
// The file is closed on every path; a close error is reported when the write
// itself succeeded.
func WriteFile(path string, m *sparse.Sparse) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("codec: create dir %q: %w", dir, err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return fmt.Errorf("codec: create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("codec: close %q: %w", path, cerr)
		}
	}()

	return Write(f, m)
}
