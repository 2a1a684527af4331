//go:build !xtry_debug

package xtry

// DebugBuild reports whether this is a debug-style build.
const DebugBuild = false
