//go:build !xtry_nounwind

package xtry

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/trickstertwo/xtry/log"
)

// captureSink records everything the default dispatcher emits.
type captureSink struct {
	mu   sync.Mutex
	recs []string
	lvls []log.Level
}

func (c *captureSink) sink(lvl log.Level, o log.Origin, format string, args []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, fmt.Sprintf(format, args...))
	c.lvls = append(c.lvls, lvl)
}

func installCapture(t *testing.T) *captureSink {
	t.Helper()
	prevSink := log.GetSink()
	prevLevel := log.GetLevel()
	c := &captureSink{}
	log.SetSink(c.sink)
	log.SetLevel(log.LevelTrace)
	t.Cleanup(func() {
		log.SetSink(prevSink)
		log.SetLevel(prevLevel)
	})
	return c
}

func TestCatchWarn_LogsAndRunsBody(t *testing.T) {
	if !WarnAlert {
		t.Skip("warn alert path compiled out in this build")
	}
	c := installCapture(t)

	var seen error
	Protect(func() {
		Raise(&valueError{msg: "boom"})
	}, CatchWarn(func(err error) {
		seen = err
	}))

	if seen == nil || seen.Error() != "boom" {
		t.Fatalf("body got %v", seen)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.recs) != 1 {
		t.Fatalf("got %d records, want 1", len(c.recs))
	}
	if c.lvls[0] != log.LevelWarn {
		t.Errorf("severity = %v", c.lvls[0])
	}
	if !strings.Contains(c.recs[0], "boom") {
		t.Errorf("record = %q", c.recs[0])
	}
}

func TestCatchError_SkipsForeignPanic(t *testing.T) {
	if !ErrorAlert {
		t.Skip("error alert path compiled out in this build")
	}
	c := installCapture(t)

	anyRan := false
	Protect(func() {
		panic("not an error value")
	},
		CatchError(), // must not take a foreign panic
		CatchAnyError(func(error) { anyRan = true }),
	)

	if !anyRan {
		t.Fatal("catch-all did not run")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.recs) != 1 {
		t.Fatalf("got %d records, want 1", len(c.recs))
	}
	if !strings.Contains(c.recs[0], "unhandled raise") {
		t.Errorf("record = %q", c.recs[0])
	}
}

func TestCatchAnyWarn_BodiesRunInOrder(t *testing.T) {
	installCapture(t)

	order := ""
	Protect(func() {
		Raise(&valueError{msg: "x"})
	}, CatchAnyWarn(
		func(error) { order += "a" },
		func(error) { order += "b" },
	))
	if order != "ab" {
		t.Fatalf("order = %q", order)
	}
}

func TestAlerts_CarryCallerOrigin(t *testing.T) {
	if !WarnAlert || !ErrorAlert {
		t.Skip("alert paths compiled out in this build")
	}
	prevSink := log.GetSink()
	prevLevel := log.GetLevel()
	var got log.Origin
	log.SetSink(func(lvl log.Level, o log.Origin, format string, args []any) {
		got = o
	})
	log.SetLevel(log.LevelTrace)
	t.Cleanup(func() {
		log.SetSink(prevSink)
		log.SetLevel(prevLevel)
	})

	Warnf("w")
	if !strings.HasSuffix(got.File, "catch_test.go") {
		t.Errorf("Warnf origin = %q", got.File)
	}
	Errorf("e")
	if !strings.Contains(got.Func, "TestAlerts_CarryCallerOrigin") {
		t.Errorf("Errorf origin func = %q", got.Func)
	}
}
