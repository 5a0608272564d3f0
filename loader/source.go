// SPDX-License-Identifier: MIT
package loader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"go.trai.ch/zerr"
)

// Source opens the raw text of a matrix identified by id (usually a path).
// The returned ReadCloser must be closed by the caller on every path.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Source interface {
	Open(ctx context.Context, id string) (io.ReadCloser, error)
}

// FileSource reads matrices from the local file system with buffered reads.
type FileSource struct{}

// Open opens the file at path.
func (FileSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open matrix file"), "path", path)
	}
	return f, nil
}

// MmapSource maps matrix files read-only into memory. The mapping is released
// when the returned reader is closed.
type MmapSource struct{}

// Open maps the file at path. Empty files are served from an empty buffer
// because a zero-length mapping is not allowed.
func (MmapSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open matrix file"), "path", path)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to stat matrix file"), "path", path)
	}
	if info.Size() == 0 {
		_ = f.Close()
		return &mappedFile{reader: bytes.NewReader(nil)}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to map matrix file"), "path", path)
	}
	return &mappedFile{file: f, data: data, reader: bytes.NewReader(data)}, nil
}

// mappedFile is a read-only view over a memory-mapped file.
type mappedFile struct {
	file   *os.File
	data   mmap.MMap
	reader *bytes.Reader
}

func (m *mappedFile) Read(p []byte) (int, error) {
	return m.reader.Read(p)
}

// Bytes returns the mapped content. It is valid until Close.
func (m *mappedFile) Bytes() []byte {
	return m.data
}

// Close unmaps the memory and closes the file.
func (m *mappedFile) Close() error {
	var errs []error
	if m.data != nil {
		if err := m.data.Unmap(); err != nil {
			errs = append(errs, zerr.Wrap(err, "failed to unmap matrix file"))
		}
		m.data = nil
	}
	if m.file != nil {
		if err := m.file.Close(); err != nil {
			errs = append(errs, zerr.Wrap(err, "failed to close matrix file"))
		}
		m.file = nil
	}
	return errors.Join(errs...)
}
