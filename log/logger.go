// Package log is a leveled diagnostic dispatcher: a runtime-mutable minimum
// severity and a single pluggable sink, both plain atomic words. Multiple
// independent Logger instances can coexist; a package-level default serves
// the common case through facade functions.
package log

import "sync/atomic"

// Logger dispatches leveled diagnostics through one pluggable sink. Both
// the minimum level and the sink are single atomic words: racing readers
// observe either the old or the new value, never a torn one, and no
// ordering is guaranteed relative to unrelated memory.
type Logger struct {
	min  atomic.Int32
	sink atomic.Value // holds Sink, never nil
}

// New returns a Logger filtering below min, writing through StderrSink.
func New(min Level) *Logger {
	l := &Logger{}
	l.min.Store(int32(min))
	l.sink.Store(Sink(StderrSink))
	return l
}

// SetLevel replaces the minimum level. It takes effect for every log call
// issued after it returns on the calling goroutine; calls already in flight
// may observe either value.
func (l *Logger) SetLevel(v Level) { l.min.Store(int32(v)) }

// Level returns the current minimum level.
func (l *Logger) Level() Level { return Level(l.min.Load()) }

// SetSink installs s as the active sink. A nil s restores the default.
// In-flight calls may deliver to either the old or the new sink.
func (l *Logger) SetSink(s Sink) {
	if s == nil {
		s = StderrSink
	}
	l.sink.Store(s)
}

// Sink returns the active sink.
func (l *Logger) Sink() Sink { return l.sink.Load().(Sink) }

// Enabled reports whether lvl would pass the filter. Use to avoid building
// expensive arguments in hot paths: Logf itself cannot avoid that cost, its
// arguments are evaluated by the caller before the check.
func (l *Logger) Enabled(lvl Level) bool { return lvl >= l.Level() }

// Logf dispatches one entry at lvl with the caller's origin. Below the
// minimum level it is a no-op beyond the argument evaluation already paid.
func (l *Logger) Logf(lvl Level, format string, args ...any) {
	l.Output(2, lvl, format, args...)
}

// Output is Logf with an explicit caller depth for wrappers: calldepth 2
// reports the caller of the function invoking Output.
func (l *Logger) Output(calldepth int, lvl Level, format string, args ...any) {
	if lvl < l.Level() {
		return
	}
	l.Sink()(lvl, Here(calldepth), format, args)
}

// Severity-specific forwarders.

func (l *Logger) Tracef(format string, args ...any) { l.Output(2, LevelTrace, format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.Output(2, LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.Output(2, LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.Output(2, LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.Output(2, LevelError, format, args...) }
