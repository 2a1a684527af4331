//go:build xtry_nowarn

package xtry

// Warnf is compiled out in this build. Arguments are still evaluated by
// the caller.
func Warnf(format string, args ...any) {}

// WarnAlert reports whether the warn alert path is compiled in.
const WarnAlert = false
