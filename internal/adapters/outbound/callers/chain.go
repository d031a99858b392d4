package callers

import (
	"context"
	"errors"

	"github.com/sufield/pixelprops/internal/ports"
)

// Chain tries each resolver in order and returns the first result.
// Resolvers reporting ports.ErrCallerUnresolved are skipped; any other
// error stops the chain.
type Chain []ports.CallerResolver

var _ ports.CallerResolver = Chain(nil)

// ResolveCallers implements ports.CallerResolver.
func (c Chain) ResolveCallers(ctx context.Context) ([]string, error) {
	for _, r := range c {
		callers, err := r.ResolveCallers(ctx)
		if errors.Is(err, ports.ErrCallerUnresolved) {
			continue
		}
		return callers, err
	}
	return nil, ports.ErrCallerUnresolved
}
