//go:build xtry_nounwind

package xtry

import (
	"errors"
	"strings"
	"testing"

	"github.com/trickstertwo/xtry/log"
)

func TestProtect_RunsBodySkipsHandlers(t *testing.T) {
	t.Parallel()

	bodyRan, handlerRan := 0, 0
	Protect(func() {
		bodyRan++
	},
		On[*PanicError](func(*PanicError) { handlerRan++ }),
		Any(func(error) { handlerRan++ }),
	)
	if bodyRan != 1 {
		t.Fatalf("body ran %d times, want 1", bodyRan)
	}
	if handlerRan != 0 {
		t.Fatalf("handlers ran %d times, want 0", handlerRan)
	}
}

func TestGuard_AlwaysTrue(t *testing.T) {
	t.Parallel()

	if !Guard(func() {}) {
		t.Error("Guard must report true")
	}
	// No failure channel exists: even a body that would raise elsewhere
	// reports true as long as it returns.
	if !Guard(func() { _ = errors.New("unused") }) {
		t.Error("Guard must report true unconditionally")
	}
}

type bail struct{}

func TestRaise_HitsFatalHook(t *testing.T) {
	var gotOrigin log.Origin
	var gotMsg string
	SetFatalHook(func(o log.Origin, msg string) {
		gotOrigin, gotMsg = o, msg
		panic(bail{}) // honor "never returns" without exiting the test
	})
	t.Cleanup(func() { SetFatalHook(nil) })

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("fatal hook did not fire")
			} else if _, ok := r.(bail); !ok {
				panic(r)
			}
		}()
		Raise(errors.New("boom"))
	}()

	if !strings.Contains(gotMsg, "raise with unwinding disabled") || !strings.Contains(gotMsg, "boom") {
		t.Errorf("msg = %q", gotMsg)
	}
	if !strings.HasSuffix(gotOrigin.File, "protect_nounwind_test.go") {
		t.Errorf("origin file = %q", gotOrigin.File)
	}
	if gotOrigin.Line == 0 {
		t.Error("origin line not captured")
	}
}

func TestSealed_ConvertsEscapedPanic(t *testing.T) {
	var gotMsg string
	SetFatalHook(func(o log.Origin, msg string) {
		gotMsg = msg
		panic(bail{})
	})
	t.Cleanup(func() { SetFatalHook(nil) })

	sealed := Sealed(func() { panic("escaper") })
	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("fatal hook did not fire")
			} else if _, ok := r.(bail); !ok {
				panic(r)
			}
		}()
		sealed()
	}()

	if !strings.Contains(gotMsg, "panic escaped sealed function") || !strings.Contains(gotMsg, "escaper") {
		t.Errorf("msg = %q", gotMsg)
	}
}
