//go:build !xtry_nowarn

package xtry

import "github.com/trickstertwo/xtry/log"

// Warnf forwards to the default dispatcher at warn severity with the
// caller's origin. Build with -tags xtry_nowarn to elide this path
// entirely, bypassing even the runtime level check.
func Warnf(format string, args ...any) {
	log.Output(2, log.LevelWarn, format, args...)
}

// WarnAlert reports whether the warn alert path is compiled in.
const WarnAlert = true
