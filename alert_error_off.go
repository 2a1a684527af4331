//go:build xtry_noerror

package xtry

// Errorf is compiled out in this build. Arguments are still evaluated by
// the caller.
func Errorf(format string, args ...any) {}

// ErrorAlert reports whether the error alert path is compiled in.
const ErrorAlert = false
