//go:build !xtry_nounwind

package xtry

// Unwinding reports whether this build supports raise/handle unwinding.
const Unwinding = true

// raised carries an error through the unwind so handler dispatch can tell a
// Raise apart from a foreign panic.
type raised struct{ err error }

// reraiseSignal is the panic value Reraise uses to reach the dispatching
// frame of the currently running handler.
type reraiseSignal struct{}

// Protect runs body as a protected region. A raise inside body (or inside
// anything it calls) is dispatched to the first handler whose matcher
// accepts it; an unmatched raise propagates to the enclosing Protect, or
// crashes the program when there is none, as the runtime defines.
func Protect(body func(), handlers ...Handler) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := toError(r)
		for _, h := range handlers {
			if h.match == nil || !h.match(err) {
				continue
			}
			runHandler(h, err)
			return
		}
		panic(r)
	}()
	body()
}

// runHandler executes h and translates a Reraise inside it into propagation
// of the currently handled error. A fresh Raise inside h propagates as-is.
func runHandler(h Handler, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(reraiseSignal); ok {
				panic(raised{err: err})
			}
			panic(r)
		}
	}()
	h.run(err)
}

// Raise begins unwinding with err, stopping at the nearest matching handler
// or terminating the program if none matches.
func Raise(err error) {
	panic(raised{err: err})
}

// Reraise propagates the currently handled error to the enclosing protected
// region. It is only meaningful inside a running handler body; calling it
// anywhere else is a precondition violation and is deliberately not guarded.
func Reraise() {
	panic(reraiseSignal{})
}

// Guard evaluates fn for its side effects inside a protected region and
// reports whether it completed without raising.
func Guard(fn func()) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	fn()
	return true
}

func toError(r any) error {
	switch v := r.(type) {
	case raised:
		return v.err
	case error:
		return v
	default:
		return &PanicError{Value: v}
	}
}
