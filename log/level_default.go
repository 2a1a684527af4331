//go:build !xtry_debug

package log

// defaultLevel is the initial minimum for new and default dispatchers.
const defaultLevel = LevelInfo
