package xtry

import (
	"errors"
	"fmt"
)

// Handler pairs an error matcher with a body. Construct with On or Any and
// pass handlers to Protect in the order they should be tried: the first
// match in argument order wins, so ordering most-specific-first is the
// caller's responsibility, exactly as with native handler dispatch.
type Handler struct {
	match func(error) bool
	run   func(error)
}

// On builds a typed handler. It matches when the raised error resolves to T
// under errors.As, so a broad T (an interface, or a widely wrapped type)
// declared early will shadow narrower handlers declared after it.
func On[T error](fn func(T)) Handler {
	return Handler{
		match: func(err error) bool {
			var t T
			return errors.As(err, &t)
		},
		run: func(err error) {
			var t T
			errors.As(err, &t)
			fn(t)
		},
	}
}

// Any builds a catch-all handler. It matches every raised error not taken
// by an earlier handler, including non-error panic values (delivered as
// *PanicError).
func Any(fn func(error)) Handler {
	return Handler{
		match: func(error) bool { return true },
		run:   fn,
	}
}

// PanicError wraps a panic value that was not an error so catch-all
// handlers always receive an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }
