//go:build debug

package core

import "fmt"

// AssertionsEnabled is true in builds tagged debug
const AssertionsEnabled = true

// Assert panics with the formatted message when cond is false
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
