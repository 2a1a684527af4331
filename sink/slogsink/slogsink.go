// Package slogsink bridges the xtry dispatcher to log/slog handlers.
package slogsink

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xtry/log"
)

// New adapts a slog.Logger into a log.Sink. The origin is attached as
// file/line/func attrs; the message is formatted before hand-off.
func New(l *slog.Logger) log.Sink {
	if l == nil {
		l = slog.Default()
	}
	return func(lvl log.Level, o log.Origin, format string, args []any) {
		l.LogAttrs(context.Background(), toSlog(lvl), fmt.Sprintf(format, args...),
			slog.String("file", o.File),
			slog.Int("line", o.Line),
			slog.String("func", o.Func),
		)
	}
}

// NewJSONSink builds a sink over a JSON handler writing to w. The handler
// is opened wide; the dispatcher owns filtering.
func NewJSONSink(w io.Writer, opts *slog.HandlerOptions) log.Sink {
	return New(slog.New(slog.NewJSONHandler(writer(w), wide(opts))))
}

// NewTextSink builds a sink over a text handler writing to w.
func NewTextSink(w io.Writer, opts *slog.HandlerOptions) log.Sink {
	return New(slog.New(slog.NewTextHandler(writer(w), wide(opts))))
}

func writer(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

func wide(opts *slog.HandlerOptions) *slog.HandlerOptions {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	opts.Level = toSlog(log.LevelTrace)
	return opts
}

func toSlog(lvl log.Level) slog.Level {
	switch lvl {
	case log.LevelTrace:
		return slog.LevelDebug - 4
	case log.LevelDebug:
		return slog.LevelDebug
	case log.LevelInfo:
		return slog.LevelInfo
	case log.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
