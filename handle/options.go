package handle

import (
	"io/fs"
	"log/slog"
	"strings"

	"github.com/jmgilman/go/fatls/core"
)

// DefaultBufferSize is the read buffer size used by file entries.
const DefaultBufferSize = 4096

// HiddenFunc decides whether an entry carries the hidden attribute.
type HiddenFunc func(name string, info fs.FileInfo) bool

// Option configures Open.
type Option func(*config)

type config struct {
	hidden     HiddenFunc
	bufferSize int
	logger     *slog.Logger
}

// WithHiddenFunc overrides how the hidden attribute is derived.
func WithHiddenFunc(fn HiddenFunc) Option {
	return func(c *config) {
		c.hidden = fn
	}
}

// WithBufferSize sets the read buffer size. Values below 16 are raised to 16.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

// WithLogger sets the logger that receives debug records for errors that
// cannot be returned, such as close failures during Rewind.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.hidden == nil {
		cfg.hidden = DefaultHidden
	}
	if cfg.bufferSize <= 0 {
		cfg.bufferSize = DefaultBufferSize
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// DefaultHidden reports the store's hidden attribute when FileInfo.Sys()
// implements core.Attributes, and otherwise treats dot-prefixed names as
// hidden.
func DefaultHidden(name string, info fs.FileInfo) bool {
	if info != nil {
		if attrs, ok := info.Sys().(core.Attributes); ok {
			return attrs.Hidden()
		}
	}
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
