package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// maxStackFrames bounds captured stack text. Deep recursion below this
// point is never interesting for diagnosing where an error was built.
const maxStackFrames = 16

// captureStack renders the current call stack as text. skip counts the
// frames to drop, starting at captureStack itself; New and Wrap pass 2 so
// the text begins at their caller, the construction site. The format is
// one frame per line:
//
//	package.Function
//		file.go:123
func captureStack(skip int) string {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip+1, pc)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}

// ParseStackTop returns the function name of the first frame in stack
// text produced by captureStack, or "" when the text is empty or foreign.
// It tolerates both tab-indented and space-indented location lines, so
// stack text recorded on other runtimes still yields a best-effort answer.
func ParseStackTop(stack string) string {
	for _, line := range strings.Split(stack, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "\t") || strings.HasPrefix(line, " ") {
			continue // location line
		}
		return line
	}
	return ""
}
