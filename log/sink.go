package log

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Sink receives every log call that passes the level filter, synchronously
// on the calling goroutine. Implementations must not panic back into the
// dispatcher. Exactly one sink is active per Logger; replace it with
// SetSink.
type Sink func(lvl Level, o Origin, format string, args []any)

// StderrSink is the built-in default sink: one
// "[TAG] file:line func: message" line per call, assembled in full and
// written with a single call so concurrent callers interleave at line
// granularity at worst. No locking is performed.
func StderrSink(lvl Level, o Origin, format string, args []any) {
	os.Stderr.WriteString(formatLine(lvl, o, format, args))
}

func formatLine(lvl Level, o Origin, format string, args []any) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(tag(lvl))
	b.WriteString("] ")
	b.WriteString(filepath.Base(o.File))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(o.Line))
	b.WriteByte(' ')
	b.WriteString(o.Func)
	b.WriteString(": ")
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')
	return b.String()
}

func tag(lvl Level) string {
	switch lvl {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "LOG"
	}
}
