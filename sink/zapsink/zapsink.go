// Package zapsink bridges the xtry dispatcher to go.uber.org/zap.
package zapsink

import (
	"fmt"

	"github.com/trickstertwo/xclock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xtry/log"
)

// New adapts a zap.Logger into a log.Sink. Entry timestamps come from
// xclock so frozen or offset clocks are respected in tests.
func New(zl *zap.Logger) log.Sink {
	return func(lvl log.Level, o log.Origin, format string, args []any) {
		ce := zl.Check(mapLevel(lvl), fmt.Sprintf(format, args...))
		if ce == nil {
			return
		}
		ce.Time = xclock.Now()
		ce.Write(
			zap.String("file", o.File),
			zap.Int("line", o.Line),
			zap.String("func", o.Func),
		)
	}
}

// mapLevel converts a dispatcher level to zapcore. Trace folds into debug
// (zap has no trace) and anything above error stays at error to avoid
// zap's exiting fatal path.
func mapLevel(lvl log.Level) zapcore.Level {
	switch lvl {
	case log.LevelTrace, log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelInfo:
		return zapcore.InfoLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
