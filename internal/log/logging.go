// Package log configures the process logger and the fragment logger.
//
// Without a log file, records below error go to stdout and errors go to
// stderr. With a log file, the console gets everything on stderr and the
// file gets a text copy.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// LevelTrace is below Debug; at this level rendered fragments are echoed
// to stdout when no fragment file is set.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout hands each record to every handler enabled for its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// errorSplit routes error records to errs and everything else to out.
type errorSplit struct {
	out, errs slog.Handler
}

func (s errorSplit) pick(level slog.Level) slog.Handler {
	if level >= slog.LevelError {
		return s.errs
	}
	return s.out
}

func (s errorSplit) Enabled(ctx context.Context, level slog.Level) bool {
	return s.pick(level).Enabled(ctx, level)
}

func (s errorSplit) Handle(ctx context.Context, r slog.Record) error {
	return s.pick(r.Level).Handle(ctx, r)
}

func (s errorSplit) WithAttrs(attrs []slog.Attr) slog.Handler {
	return errorSplit{out: s.out.WithAttrs(attrs), errs: s.errs.WithAttrs(attrs)}
}

func (s errorSplit) WithGroup(name string) slog.Handler {
	return errorSplit{out: s.out.WithGroup(name), errs: s.errs.WithGroup(name)}
}

// newHandler picks the slog handler for a format: "text", "json", or
// "auto" (text on a terminal, JSON otherwise).
func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	switch format {
	case "json":
		return slog.NewJSONHandler(w, opts)
	case "auto":
		if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
			return slog.NewJSONHandler(w, opts)
		}
	}
	return slog.NewTextHandler(w, opts)
}

// Options mirrors the log.* command line flags.
type Options struct {
	Level        string
	File         string
	Format       string
	FragmentFile string
}

// Logging holds the configured loggers and the files they write to.
type Logging struct {
	Logger    *slog.Logger
	Fragments FragmentLogger
	closers   []io.Closer
}

// Close closes every file opened by Setup.
func (l *Logging) Close() error {
	var errs []error
	for _, c := range l.closers {
		errs = append(errs, c.Close())
	}
	l.closers = nil
	return errors.Join(errs...)
}

// Setup builds the process logger and the fragment logger. Fragments go to
// FragmentFile when set, to stdout at trace level, and nowhere otherwise.
func Setup(opts Options) (*Logging, error) {
	level := ParseLevel(opts.Level)
	l := &Logging{}

	var console slog.Handler
	if opts.File == "" {
		console = errorSplit{
			out:  newHandler(os.Stdout, opts.Format, &slog.HandlerOptions{Level: level}),
			errs: newHandler(os.Stderr, opts.Format, &slog.HandlerOptions{Level: slog.LevelError}),
		}
	} else {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.closers = append(l.closers, f)
		console = fanout{
			newHandler(os.Stderr, opts.Format, &slog.HandlerOptions{Level: level}),
			slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}),
		}
	}
	l.Logger = slog.New(console)

	switch {
	case opts.FragmentFile != "":
		f, err := os.OpenFile(opts.FragmentFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			_ = l.Close()
			return nil, fmt.Errorf("open fragment log file: %w", err)
		}
		l.closers = append(l.closers, f)
		l.Fragments = NewFragments(f)
	case level <= LevelTrace:
		l.Fragments = NewFragments(os.Stdout)
	default:
		l.Fragments = NewFragments(nil)
	}
	return l, nil
}
