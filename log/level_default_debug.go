//go:build xtry_debug

package log

// defaultLevel widens to debug in debug-style builds.
const defaultLevel = LevelDebug
