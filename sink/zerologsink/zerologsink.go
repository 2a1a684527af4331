// Package zerologsink bridges the xtry dispatcher to rs/zerolog.
package zerologsink

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/xtry/log"
)

// New adapts a zerolog.Logger into a log.Sink. Entries carry a "ts" field
// stamped from xclock so frozen or offset clocks are respected in tests.
func New(zl zerolog.Logger) log.Sink {
	return func(lvl log.Level, o log.Origin, format string, args []any) {
		zl.WithLevel(mapLevel(lvl)).
			Str("ts", xclock.Now().UTC().Format(time.RFC3339Nano)).
			Str("file", o.File).
			Int("line", o.Line).
			Str("func", o.Func).
			Msg(fmt.Sprintf(format, args...))
	}
}

// mapLevel converts a dispatcher level to zerolog. Anything above error
// stays at error to avoid zerolog's exiting fatal path.
func mapLevel(lvl log.Level) zerolog.Level {
	switch lvl {
	case log.LevelTrace:
		return zerolog.TraceLevel
	case log.LevelDebug:
		return zerolog.DebugLevel
	case log.LevelInfo:
		return zerolog.InfoLevel
	case log.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
