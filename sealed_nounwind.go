//go:build xtry_nounwind

package xtry

import (
	"fmt"
	"os"

	"github.com/trickstertwo/xtry/log"
)

// Sealed affirms that no error escapes fn. Nothing can unwind in this
// build, so a panic escaping the returned function is a contract violation
// and takes the fatal path with the origin of the Sealed call site.
func Sealed(fn func()) func() {
	o := log.Here(1)
	return func() {
		defer func() {
			if r := recover(); r != nil {
				fatalHook.Load().(FatalHook)(o, fmt.Sprintf("panic escaped sealed function: %v", r))
				os.Exit(1)
			}
		}()
		fn()
	}
}
