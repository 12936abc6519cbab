package fatprint

import (
	"io"
	"log/slog"

	"github.com/jmgilman/go/fatls/fatdate"
)

// Calendar renders packed dates and times. fatdate.ISO is the default.
type Calendar interface {
	FormatDate(w io.Writer, d fatdate.Date) int
	FormatDateTime(w io.Writer, d fatdate.Date, t fatdate.Time) int
}

// Printer renders handles to sinks.
type Printer struct {
	calendar Calendar
	logger   *slog.Logger
}

// Option configures a Printer.
type Option func(*config)

type config struct {
	calendar Calendar
	logger   *slog.Logger
}

// WithCalendar sets the calendar used for timestamp fields.
func WithCalendar(c Calendar) Option {
	return func(cfg *config) {
		cfg.calendar = c
	}
}

// WithLogger sets the logger that receives debug records at failure points.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// New creates a Printer.
func New(opts ...Option) *Printer {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	p := &Printer{
		calendar: cfg.calendar,
		logger:   cfg.logger,
	}
	if p.calendar == nil {
		p.calendar = fatdate.ISO
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p
}

func newline(w io.ByteWriter) {
	_ = w.WriteByte('\r')
	_ = w.WriteByte('\n')
}
