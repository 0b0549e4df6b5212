package heap

import (
	"fmt"
	"runtime"
	"strings"
)

// FatalError is the panic value raised by every irrecoverable condition
// named in the allocator's error-handling design: out-of-arena, segment
// capacity exceeded, free of an unknown pointer (including double free),
// and check-pointer assertion mismatches. None of these are meant to be
// recovered from in normal operation; the type exists so a caller that
// does recover (tests, mainly) can distinguish an allocator fatal from an
// unrelated panic.
type FatalError struct {
	// Op names the operation that failed (e.g. "carve", "free", "check_pointer").
	Op string
	// Msg is a human-readable description of what went wrong.
	Msg string
	// Stack is a trimmed stack trace captured at the point of failure.
	Stack string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("heap: %s: %s", e.Op, e.Msg)
}

// fatalf panics with a *FatalError describing op and a formatted message,
// capturing the stack for diagnosis. The captured trace begins at fatalf's
// own frame.
func fatalf(op, format string, args ...any) {
	panic(&FatalError{
		Op:    op,
		Msg:   fmt.Sprintf(format, args...),
		Stack: captureStack(2),
	})
}

// captureStack is adapted from flier-goutil's internal/debug.Stack: a
// skip-aware, readable stack trace, used only to enrich FatalError instead
// of runtime/debug.Stack's raw byte dump.
func captureStack(skip int) string {
	var out strings.Builder

	trace := make([]uintptr, 32)
	for {
		n := runtime.Callers(skip, trace)
		if n < len(trace) {
			trace = trace[:n]
			break
		}
		trace = make([]uintptr, len(trace)*2)
	}

	frames := runtime.CallersFrames(trace)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&out, "- %s() %s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}

	return out.String()
}
