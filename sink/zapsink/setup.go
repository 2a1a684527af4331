package zapsink

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xtry/log"
)

// Config is an explicit, code-first configuration for zap-backed logging.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer        io.Writer // default: os.Stderr
	MinLevel      log.Level
	Console       bool                  // console encoder instead of JSON
	EncoderConfig zapcore.EncoderConfig // if zero, a production default is used
}

// Use builds a zap-backed sink from cfg, installs it together with
// cfg.MinLevel on the default dispatcher, and returns the sink.
func Use(cfg Config) log.Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	enc := cfg.EncoderConfig
	if enc.MessageKey == "" {
		enc = zap.NewProductionEncoderConfig()
		enc.TimeKey = "ts"
		enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Console {
		encoder = zapcore.NewConsoleEncoder(enc)
	} else {
		encoder = zapcore.NewJSONEncoder(enc)
	}

	// The dispatcher owns filtering; open the core wide.
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)

	s := New(zap.New(core))
	log.SetSink(s)
	log.SetLevel(cfg.MinLevel)
	return s
}
