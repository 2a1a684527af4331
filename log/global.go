package log

// Facade over one process-wide default dispatcher.
// Usage: log.Infof("listening on %s", addr)

var std = New(defaultLevel)

// Default returns the process-wide dispatcher, for callers that want to
// pass it around explicitly instead of going through the facade.
func Default() *Logger { return std }

func SetLevel(v Level) { std.SetLevel(v) }
func GetLevel() Level  { return std.Level() }
func SetSink(s Sink)   { std.SetSink(s) }
func GetSink() Sink    { return std.Sink() }

// Enabled reports whether lvl would pass the default dispatcher's filter.
func Enabled(lvl Level) bool { return std.Enabled(lvl) }

// Output forwards to the default dispatcher preserving wrapper depth:
// calldepth 2 reports the caller of the function invoking Output.
func Output(calldepth int, lvl Level, format string, args ...any) {
	std.Output(calldepth+1, lvl, format, args...)
}

func Logf(lvl Level, format string, args ...any) { std.Output(2, lvl, format, args...) }

func Tracef(format string, args ...any) { std.Output(2, LevelTrace, format, args...) }
func Debugf(format string, args ...any) { std.Output(2, LevelDebug, format, args...) }
func Infof(format string, args ...any)  { std.Output(2, LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { std.Output(2, LevelWarn, format, args...) }
func Errorf(format string, args ...any) { std.Output(2, LevelError, format, args...) }
