//go:build !debug

package core

// AssertionsEnabled is false outside debug builds, contract violations are not checked
const AssertionsEnabled = false

// Assert is a no-op in release builds
func Assert(bool, string, ...any) {}
