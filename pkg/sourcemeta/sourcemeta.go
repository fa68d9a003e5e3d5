// Package sourcemeta captures where a dump was requested from.
package sourcemeta

import (
	"fmt"
	"runtime"
	"strings"
)

// Meta locates a call site
type Meta struct {
	File     string
	Line     int
	Function string
	Package  string
}

// Capture returns the location of the caller skip frames above the caller
// of Capture. Capture(0) describes the function that called Capture.
func Capture(skip int) Meta {
	if skip < 0 {
		skip = 0
	}

	pcs := make([]uintptr, skip+1)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for i := 0; n > 0; i++ {
		frame, more := frames.Next()
		if i == skip {
			m := Meta{File: frame.File, Line: frame.Line}
			m.Package, m.Function = splitFuncName(frame.Function)
			return m
		}
		if !more {
			break
		}
	}
	return Meta{}
}

// IsZero reports whether no location was captured
func (m Meta) IsZero() bool {
	return m.File == "" && m.Line == 0
}

// String renders one "Key: value" line per known field
func (m Meta) String() string {
	var b strings.Builder
	if m.File != "" {
		fmt.Fprintf(&b, "File: %s\n", m.File)
	}
	if m.Line > 0 {
		fmt.Fprintf(&b, "Line: %d\n", m.Line)
	}
	if m.Function != "" {
		fmt.Fprintf(&b, "Function: %s\n", m.Function)
	}
	return b.String()
}

// splitFuncName splits "github.com/a/b/pkg.(*T).Method" into the package
// path and the function part.
func splitFuncName(name string) (pkg, fn string) {
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return "", name
	}
	dot += slash + 1
	return name[:dot], name[dot+1:]
}
