//go:build !xtry_nounwind

package xtry

// Sealed marks fn as non-propagating. In unwinding builds the marker
// imposes no constraint and returns fn unchanged, so the same declaration
// compiles in both modes while stating the strongest guarantee each mode
// can honor.
func Sealed(fn func()) func() { return fn }
