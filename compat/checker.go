// SPDX-License-Identifier: MIT
package compat

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/katalvlaran/spmat/sparse"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/katalvlaran/spmat/compat"

// defaultParallelLoads bounds concurrent file loads during Check.
const defaultParallelLoads = 4

// MatrixLoader resolves a path to a parsed matrix; *loader.Loader satisfies it.
//
//go:generate mockgen -source=checker.go -destination=mocks/mock_matrix_loader.go -package=mocks
type MatrixLoader interface {
	Load(ctx context.Context, id string) (*sparse.Sparse, error)
}

// Checker scans a directory of matrix files and reports which pairs support
// which operations.
type Checker struct {
	dir      string
	ext      string
	loader   MatrixLoader
	log      *slog.Logger
	tracer   trace.Tracer
	parallel int
}

// Option configures a Checker.
type Option func(*Checker)

// WithExtension sets the file suffix to scan for. Default ".txt".
func WithExtension(ext string) Option {
	return func(c *Checker) { c.ext = ext }
}

// WithLogger routes incompatibility warnings to lg.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Checker) {
		if lg != nil {
			c.log = lg
		}
	}
}

// WithTracerProvider sets where check spans go. Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Checker) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithParallelLoads bounds concurrent loads. Panics if n < 1.
func WithParallelLoads(n int) Option {
	if n < 1 {
		panic("compat: WithParallelLoads(n<1)")
	}
	return func(c *Checker) { c.parallel = n }
}

// NewChecker returns a Checker over dir loading matrices through l.
func NewChecker(dir string, l MatrixLoader, opts ...Option) *Checker {
	c := &Checker{
		dir:      dir,
		ext:      ".txt",
		loader:   l,
		log:      slog.New(slog.DiscardHandler),
		parallel: defaultParallelLoads,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}

	return c
}

// Dir returns the scanned directory.
func (c *Checker) Dir() string {
	return c.dir
}

// Path joins a file name from the report with the scanned directory.
func (c *Checker) Path(name string) string {
	return filepath.Join(c.dir, name)
}

// Files lists matrix files in the directory, sorted by name. It fails when
// the directory is missing or holds fewer than two matching files.
func (c *Checker) Files() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(ErrDirNotFound, "failed to list matrix files"), "dir", c.dir)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to list matrix files"), "dir", c.dir)
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), c.ext) {
			files = append(files, e.Name())
		}
	}
	slices.Sort(files)
	if len(files) < 2 {
		return nil, zerr.With(zerr.With(zerr.Wrap(ErrTooFewFiles, "failed to list matrix files"), "dir", c.dir), "found", len(files))
	}

	return files, nil
}

// Check loads every file and evaluates each unordered pair {a, b} (a listed
// before b): addition and subtraction need equal shapes, multiplication needs
// cols(a) == rows(b). Since multiplication is not commutative, (b, a) is
// also offered when cols(b) == rows(a). It fails with ErrNoCompatiblePairs
// when no pair supports any operation.
func (c *Checker) Check(ctx context.Context) (*Report, error) {
	ctx, span := c.tracer.Start(ctx, "compat.Check", trace.WithAttributes(attribute.String("spmat.dir", c.dir)))
	defer span.End()

	rep, err := c.check(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "check failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("spmat.files", len(rep.Files)), attribute.Int("spmat.notes", len(rep.Notes)))

	return rep, nil
}

func (c *Checker) check(ctx context.Context) (*Report, error) {
	files, err := c.Files()
	if err != nil {
		return nil, err
	}

	matrices := make([]*sparse.Sparse, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallel)
	for i, name := range files {
		g.Go(func() error {
			m, err := c.loader.Load(gctx, c.Path(name))
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to check matrix compatibility"), "file", name)
			}
			matrices[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{
		Dir:    c.dir,
		Files:  files,
		Shapes: make(map[string]sparse.Shape, len(files)),
		Pairs:  make(map[Operation][]Pair, len(Operations)),
	}
	for i, name := range files {
		rep.Shapes[name] = matrices[i].Shape()
	}
	for i := range files {
		for j := i + 1; j < len(files); j++ {
			c.evaluate(rep, files[i], files[j], matrices[i], matrices[j])
		}
	}

	if rep.Empty() {
		return nil, zerr.With(zerr.Wrap(ErrNoCompatiblePairs, "failed to check matrix compatibility"), "dir", c.dir)
	}

	return rep, nil
}

func (c *Checker) evaluate(rep *Report, left, right string, a, b *sparse.Sparse) {
	fwd := Pair{Left: left, Right: right}

	if Addition.Compatible(a, b) {
		rep.Pairs[Addition] = append(rep.Pairs[Addition], fwd)
		rep.Pairs[Subtraction] = append(rep.Pairs[Subtraction], fwd)
	} else {
		rep.Notes = append(rep.Notes, Note{Kind: NoteElementwise, Pair: fwd, Left: a.Shape(), Right: b.Shape()})
		c.log.Warn("addition/subtraction not possible", "left", left, "right", right,
			"left_shape", a.Shape().String(), "right_shape", b.Shape().String())
	}

	if Multiplication.Compatible(a, b) {
		rep.Pairs[Multiplication] = append(rep.Pairs[Multiplication], fwd)
	} else {
		rep.Notes = append(rep.Notes, Note{Kind: NoteMultiply, Pair: fwd, Left: a.Shape(), Right: b.Shape()})
		c.log.Warn("multiplication not possible", "left", left, "right", right,
			"left_cols", a.Cols(), "right_rows", b.Rows())
	}
	if Multiplication.Compatible(b, a) {
		rep.Pairs[Multiplication] = append(rep.Pairs[Multiplication], Pair{Left: right, Right: left})
	}
}

// Perform loads both files of pair and applies op.
func (c *Checker) Perform(ctx context.Context, op Operation, pair Pair) (*sparse.Sparse, error) {
	a, err := c.loader.Load(ctx, c.Path(pair.Left))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to perform operation"), "file", pair.Left)
	}
	b, err := c.loader.Load(ctx, c.Path(pair.Right))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to perform operation"), "file", pair.Right)
	}

	res, err := op.Apply(a, b)
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "failed to perform operation"), "operation", op.String()),
			"pair", pair.Left+","+pair.Right)
	}

	return res, nil
}

// PairAt returns the 1-based idx-th compatible pair for op.
func (r *Report) PairAt(op Operation, idx int) (Pair, error) {
	pairs := r.Pairs[op]
	if idx < 1 || idx > len(pairs) {
		return Pair{}, zerr.With(zerr.With(zerr.Wrap(ErrNoSuchPair, "failed to select pair"), "operation", op.String()), "index", idx)
	}
	return pairs[idx-1], nil
}
