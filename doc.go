// Package xtry provides protected-block error handling with one call-site
// syntax across two build modes, plus a runtime-configurable leveled logging
// dispatcher in the log subpackage.
//
// In a regular build a protected region dispatches raised errors to the
// first matching handler, exactly like native recover-based handling:
//
//	xtry.Protect(func() {
//	    xtry.Raise(err)
//	}, xtry.On[*ParseError](func(e *ParseError) {
//	    // handle
//	}), xtry.Any(func(e error) {
//	    // fallback
//	}))
//
// Building with -tags xtry_nounwind compiles the same source into a
// non-unwinding form: bodies run exactly once, handlers are type-checked but
// never invoked, and Raise becomes a loud, overridable fatal stop. The
// success path behaves identically in both modes.
//
// Additional build tags: xtry_debug selects a more permissive default log
// level; xtry_nowarn and xtry_noerror compile the Warnf and Errorf alert
// paths down to no-ops.
package xtry
