//go:build !debug

package core

import "testing"

func TestAssertNoOpInRelease(t *testing.T) {
	if AssertionsEnabled {
		t.Fatal("AssertionsEnabled = true without the debug tag")
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Assert(false) panicked in a release build: %v", r)
		}
	}()
	Assert(false, "radius %d", -3)
}
