package log

import (
	"runtime"
	"strings"
)

// Origin identifies the source location a log call or fatal diagnostic was
// issued from.
type Origin struct {
	File string // full path as reported by the runtime
	Line int
	Func string // bare function name, package path stripped
}

// Here captures the origin skip frames above the caller: Here(0) reports
// the caller itself, Here(1) its caller, and so on.
func Here(skip int) Origin {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Origin{File: "???", Func: "???"}
	}
	o := Origin{File: file, Line: line, Func: "???"}
	if f := runtime.FuncForPC(pc); f != nil {
		o.Func = trimFuncName(f.Name())
	}
	return o
}

// trimFuncName reduces "github.com/acme/pkg.(*T).Method" to "(*T).Method".
func trimFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
