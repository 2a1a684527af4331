//go:build xtry_nounwind

package xtry

// Unwinding reports whether this build supports raise/handle unwinding.
const Unwinding = false

// Protect runs body exactly once. Handlers are still compiled and
// type-checked so call sites stay identical across build modes, but no
// raise can occur here and no handler is ever invoked.
func Protect(body func(), handlers ...Handler) {
	_ = handlers
	body()
}

// Raise is fatal in builds without unwinding: there is no safe generic
// unwind target, and swallowing the error silently would be worse than
// stopping. Override the outcome with SetFatalHook.
func Raise(err error) {
	msg := "raise with unwinding disabled"
	if err != nil {
		msg += ": " + err.Error()
	}
	abort(2, msg)
}

// Reraise is likewise fatal in this build.
func Reraise() {
	abort(2, "reraise with unwinding disabled")
}

// Guard runs fn once and reports success unconditionally: no failure
// channel exists in this build.
func Guard(fn func()) bool {
	fn()
	return true
}
