//go:build !debug

package debug

import "context"

// Serve is unavailable in production builds and returns ErrServerUnavailable.
func Serve(_ context.Context, _ string, _ Introspector) error {
	return ErrServerUnavailable
}
