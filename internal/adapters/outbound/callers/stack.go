package callers

import (
	"context"
	"runtime"

	"github.com/sufield/pixelprops/internal/ports"
)

const maxStackDepth = 64

// StackResolver resolves callers by walking the current goroutine's stack.
// Identifiers are fully qualified function names, e.g.
// "example.com/droidguard.(*Client).Attest".
type StackResolver struct {
	// Skip drops this many additional innermost frames (the guard's own
	// frames, typically).
	Skip int
}

var _ ports.CallerResolver = StackResolver{}

// ResolveCallers returns the function names on the stack, innermost first,
// starting with the caller of ResolveCallers.
func (s StackResolver) ResolveCallers(ctx context.Context) ([]string, error) {
	pcs := make([]uintptr, maxStackDepth)
	// 0 = runtime.Callers, 1 = ResolveCallers
	n := runtime.Callers(2+s.Skip, pcs)
	if n == 0 {
		return nil, ports.ErrCallerUnresolved
	}

	frames := runtime.CallersFrames(pcs[:n])
	names := make([]string, 0, n)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			names = append(names, frame.Function)
		}
		if !more {
			break
		}
	}
	return names, nil
}
