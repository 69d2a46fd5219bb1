package backend

import (
	"log/slog"
	"runtime"
)

type config struct {
	minSize int
	limit   int
	logger  *slog.Logger
}

// An Option configures a backend constructor.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		limit: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMinSize sets the sub-range size at or below which a divisible job is
// still processed sequentially. The threshold is a performance tunable; it
// never changes results. Values below 1 are ignored.
func WithMinSize(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.minSize = n
		}
	}
}

// WithLimit caps the number of concurrently running leaves on pool-style
// backends. Values below 1 are ignored.
func WithLimit(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.limit = n
		}
	}
}

// WithLogger enables debug-level tracing of job delegation on backends that
// support it. Backends log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
