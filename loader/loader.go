// SPDX-License-Identifier: MIT
package loader

import (
	"context"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/katalvlaran/spmat/codec"
	"github.com/katalvlaran/spmat/sparse"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/spmat/loader"

// Loader turns source identifiers into parsed matrices, memoizing results in
// a Cache. Every returned matrix is owned by the caller.
type Loader struct {
	src        Source
	cache      *Cache
	codecOpts  []codec.Option
	log        *slog.Logger
	tracer     trace.Tracer
	revalidate bool
}

// byteser is implemented by readers that already hold their whole content in
// memory, so the loader can parse it without copying.
type byteser interface {
	Bytes() []byte
}

// New builds a Loader reading from the file system with a private cache
// unless options say otherwise.
func New(opts ...Option) (*Loader, error) {
	l := &Loader{
		src:   FileSource{},
		cache: NewCache(),
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.tracer == nil {
		l.tracer = otel.Tracer(tracerName)
	}
	if l.src == nil {
		return nil, ErrNilSource
	}

	return l, nil
}

// Cache returns the cache in use, or nil when caching is disabled.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// Load returns the matrix stored under id.
//
// With a cache, the first load of an identifier parses the source and later
// loads are served from memory; concurrent first loads share one parse.
// Failed loads are never cached, so a retry reads the source again.
func (l *Loader) Load(ctx context.Context, id string) (*sparse.Sparse, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := l.tracer.Start(ctx, "loader.Load", trace.WithAttributes(attribute.String("spmat.source", id)))
	defer span.End()

	m, err := l.load(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return nil, err
	}
	span.SetAttributes(
		attribute.String("spmat.shape", m.Shape().String()),
		attribute.Int("spmat.nnz", m.NNZ()),
	)

	return m, nil
}

func (l *Loader) load(ctx context.Context, id string) (*sparse.Sparse, error) {
	switch {
	case l.cache == nil:
		m, _, err := l.read(ctx, id, 0, false)
		return m, err
	case l.revalidate:
		return l.loadRevalidated(ctx, id)
	default:
		return l.cache.GetOrLoad(ctx, id, func(ctx context.Context) (*sparse.Sparse, uint64, error) {
			l.log.Debug("matrix cache miss", "source", id)
			return l.read(ctx, id, 0, false)
		})
	}
}

// loadRevalidated re-reads the source on every call and only reparses it when
// the digest differs from the cached one.
func (l *Loader) loadRevalidated(ctx context.Context, id string) (*sparse.Sparse, error) {
	known, ok := l.cache.Digest(id)
	m, digest, err := l.read(ctx, id, known, ok)
	if err != nil {
		return nil, err
	}
	if m == nil {
		if cached, hit := l.cache.Get(id); hit {
			l.log.Debug("matrix unchanged", "source", id)
			return cached, nil
		}
		// Dropped between Digest and Get.
		if m, digest, err = l.read(ctx, id, 0, false); err != nil {
			return nil, err
		}
	}
	if ok {
		l.log.Debug("matrix source changed, reparsed", "source", id)
	}
	l.cache.Put(id, m, digest)

	return m, nil
}

// read opens id, digests its bytes and parses them. When skipIfSame is set
// and the digest equals known, parsing is skipped and a nil matrix returned.
func (l *Loader) read(ctx context.Context, id string, known uint64, skipIfSame bool) (m *sparse.Sparse, digest uint64, err error) {
	rc, err := l.src.Open(ctx, id)
	if err != nil {
		return nil, 0, zerr.With(zerr.Wrap(err, "failed to open matrix"), "source", id)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, "failed to close matrix source"), "source", id)
			m = nil
		}
	}()

	var data []byte
	if b, ok := rc.(byteser); ok {
		data = b.Bytes()
	} else if data, err = io.ReadAll(rc); err != nil {
		return nil, 0, zerr.With(zerr.Wrap(err, "failed to read matrix"), "source", id)
	}

	digest = xxhash.Sum64(data)
	if skipIfSame && digest == known {
		return nil, digest, nil
	}

	m, err = codec.Unmarshal(data, l.codecOpts...)
	if err != nil {
		return nil, 0, zerr.With(zerr.Wrap(err, "failed to parse matrix"), "source", id)
	}
	l.log.Debug("matrix parsed", "source", id, "shape", m.Shape().String(), "nnz", m.NNZ())
	trace.SpanFromContext(ctx).AddEvent("matrix parsed", trace.WithAttributes(attribute.Int64("spmat.digest", int64(digest))))

	return m, digest, nil
}
