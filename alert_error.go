//go:build !xtry_noerror

package xtry

import "github.com/trickstertwo/xtry/log"

// Errorf forwards to the default dispatcher at error severity with the
// caller's origin. Build with -tags xtry_noerror to elide this path
// entirely, bypassing even the runtime level check.
func Errorf(format string, args ...any) {
	log.Output(2, log.LevelError, format, args...)
}

// ErrorAlert reports whether the error alert path is compiled in.
const ErrorAlert = true
