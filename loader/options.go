// SPDX-License-Identifier: MIT
package loader

import (
	"log/slog"

	"github.com/katalvlaran/spmat/codec"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Loader.
type Option func(*Loader)

// WithSource sets where matrix text is read from. Default: FileSource.
func WithSource(src Source) Option {
	return func(l *Loader) { l.src = src }
}

// WithCache shares c between loaders. Default: a private cache per Loader.
func WithCache(c *Cache) Option {
	return func(l *Loader) { l.cache = c }
}

// WithoutCache makes every Load parse the source again.
func WithoutCache() Option {
	return func(l *Loader) { l.cache = nil }
}

// WithCodecOptions forwards parser options such as codec.WithGrowToFit.
func WithCodecOptions(opts ...codec.Option) Option {
	return func(l *Loader) { l.codecOpts = append(l.codecOpts, opts...) }
}

// WithLogger routes cache and parse events to lg. A nil logger is ignored.
func WithLogger(lg *slog.Logger) Option {
	return func(l *Loader) {
		if lg != nil {
			l.log = lg
		}
	}
}

// WithRevalidate makes cached loads re-read the source and reparse it when
// its content digest changed. Off by default: a cached matrix is then served
// even if the file changed on disk.
func WithRevalidate(on bool) Option {
	return func(l *Loader) { l.revalidate = on }
}

// WithTracerProvider sets where load spans go. Default: the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(l *Loader) {
		if tp != nil {
			l.tracer = tp.Tracer(tracerName)
		}
	}
}
