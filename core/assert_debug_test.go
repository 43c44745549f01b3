//go:build debug

package core

import (
	"strings"
	"testing"
)

func TestAssertPanicsInDebug(t *testing.T) {
	if !AssertionsEnabled {
		t.Fatal("AssertionsEnabled = false in a debug build")
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Assert(false) did not panic")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("panic value %T, want string", r)
		}
		if !strings.Contains(msg, "assertion failed") || !strings.Contains(msg, "radius -3") {
			t.Errorf("panic message = %q", msg)
		}
	}()
	Assert(false, "radius %d", -3)
}

func TestAssertPassesInDebug(t *testing.T) {
	Assert(true, "never formatted %d", 1)
}
