package dml

import "log/slog"

// Option configures shape resolution.
//
// Example:
//
//	// Office default palette
//	rs, err := dml.ResolveShape(desc)
//
//	// Document theme, resolved with four workers in a batch
//	out, err := dml.ResolveShapes(ctx, descs, dml.WithTheme(theme), dml.WithWorkers(4))
type Option func(*options)

// options holds optional configuration for a resolution call.
type options struct {
	theme   *Theme
	workers int
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		theme:   nil, // DefaultTheme() when nil
		workers: 0,   // GOMAXPROCS when zero
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.theme == nil {
		o.theme = DefaultTheme()
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithTheme resolves scheme colors and style references against t.
// The theme is only read; one theme may serve many concurrent calls.
func WithTheme(t *Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithWorkers sets the number of goroutines ResolveShapes uses.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger overrides the package logger for one call. Geometry, color
// and style-reference fallback messages all go to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
