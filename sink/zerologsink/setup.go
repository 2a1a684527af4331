package zerologsink

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xtry/log"
)

// Config is an explicit, code-first configuration for zerolog-backed
// logging. No envs, no hidden init, one call to Use.
type Config struct {
	Writer            io.Writer // default: os.Stderr
	MinLevel          log.Level
	Console           bool   // pretty console output instead of JSON
	ConsoleTimeFormat string // only used if Console; default time.RFC3339Nano
}

// Use builds a zerolog-backed sink from cfg, installs it together with
// cfg.MinLevel on the default dispatcher, and returns the sink.
func Use(cfg Config) log.Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	// The dispatcher owns filtering; open zerolog wide.
	zl = zl.Level(zerolog.TraceLevel)

	s := New(zl)
	log.SetSink(s)
	log.SetLevel(cfg.MinLevel)
	return s
}
