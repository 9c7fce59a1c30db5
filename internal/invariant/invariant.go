// Package invariant provides the precondition checks guarding the scanning
// primitives. Checks run only in builds tagged lexkitdebug; release builds
// compile them to no-ops and a violated precondition is undefined behavior.
//
// All checks panic on violation. These are programming errors, not input
// errors: malformed input is reported through return values.
package invariant

import (
	"fmt"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false and Enabled.
func Precondition(condition bool, format string, args ...interface{}) {
	if Enabled && !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Invariant checks an internal consistency condition.
// Panics with INVARIANT VIOLATION if condition is false and Enabled.
func Invariant(condition bool, format string, args ...interface{}) {
	if Enabled && !condition {
		fail("INVARIANT", format, args...)
	}
}

// Cursor checks that pos addresses a byte of buf.
func Cursor(buf []byte, pos int, name string) {
	if Enabled && (pos < 0 || pos >= len(buf)) {
		fail("PRECONDITION", "%s cursor %d outside [0, %d)", name, pos, len(buf))
	}
}

// fail panics with a formatted message including the caller position.
func fail(kind, format string, args ...interface{}) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)

	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
