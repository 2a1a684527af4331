//go:build xtry_debug

package xtry

// DebugBuild reports whether this is a debug-style build. It widens the
// default minimum log level to debug.
const DebugBuild = true
