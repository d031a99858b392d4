package callers

import (
	"context"

	"github.com/sufield/pixelprops/internal/ports"
)

type callersKey struct{}

// WithCallers returns a context carrying caller identifiers, innermost first.
func WithCallers(ctx context.Context, callers ...string) context.Context {
	cp := append([]string(nil), callers...)
	return context.WithValue(ctx, callersKey{}, cp)
}

// ContextResolver resolves callers from identifiers attached with WithCallers.
type ContextResolver struct{}

var _ ports.CallerResolver = ContextResolver{}

// ResolveCallers returns the attached identifiers or ports.ErrCallerUnresolved.
func (ContextResolver) ResolveCallers(ctx context.Context) ([]string, error) {
	callers, ok := ctx.Value(callersKey{}).([]string)
	if !ok {
		return nil, ports.ErrCallerUnresolved
	}
	return append([]string(nil), callers...), nil
}
