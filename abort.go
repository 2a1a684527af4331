package xtry

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/trickstertwo/xtry/log"
)

// FatalHook receives the origin and message of a fatal stop. It must not
// return; callers assume control never comes back.
type FatalHook func(o log.Origin, msg string)

// fatalHook holds the active FatalHook; never nil after init.
var fatalHook atomic.Value

func init() {
	fatalHook.Store(FatalHook(defaultFatalHook))
}

// SetFatalHook replaces the fatal hook. A nil hook restores the default.
// Same single-word atomicity contract as the log sink: a racing abort may
// use either the old or the new hook, never a torn value.
func SetFatalHook(h FatalHook) {
	if h == nil {
		h = defaultFatalHook
	}
	fatalHook.Store(h)
}

// FatalHookFn returns the active fatal hook.
func FatalHookFn() FatalHook {
	return fatalHook.Load().(FatalHook)
}

// Abort emits one diagnostic carrying the caller's origin and msg through
// the active fatal hook and terminates the process. It bypasses the log
// level filter and does not return.
func Abort(msg string) {
	abort(2, msg)
}

// abort resolves the origin calldepth frames up and hands off to the hook.
func abort(calldepth int, msg string) {
	o := log.Here(calldepth)
	fatalHook.Load().(FatalHook)(o, msg)
	// The hook contract says it never returns; stop anyway if it does.
	os.Exit(1)
}

func defaultFatalHook(o log.Origin, msg string) {
	fmt.Fprintf(os.Stderr, "[xtry] fatal: %s\n  at %s:%d in %s\n", msg, o.File, o.Line, o.Func)
	os.Exit(1)
}
