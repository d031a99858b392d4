package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sufield/pixelprops/internal/debug"
	"github.com/sufield/pixelprops/internal/ports"
)

// PropertyStore is a read-only system-property store seeded at construction.
type PropertyStore struct {
	mu     sync.RWMutex
	props  map[string]string
	faults *debug.FaultProfile
}

var _ ports.SystemProperties = (*PropertyStore)(nil)

// StoreOption configures a PropertyStore.
type StoreOption func(*PropertyStore)

// WithStoreFaults consults f for one-shot injected read failures (defaults to debug.Faults).
func WithStoreFaults(f *debug.FaultProfile) StoreOption {
	return func(s *PropertyStore) { s.faults = f }
}

// NewPropertyStore copies props into a new store.
func NewPropertyStore(props map[string]string, opts ...StoreOption) *PropertyStore {
	s := &PropertyStore{props: make(map[string]string, len(props)), faults: debug.Faults}
	for k, v := range props {
		s.props[k] = v
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the value of key, or "" if unset.
func (s *PropertyStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrPropertyStoreUnavailable, err)
	}
	if s.faults.ShouldFailPropertyRead() {
		return "", fmt.Errorf("%w: %s (injected)", ports.ErrPropertyStoreUnavailable, key)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.props[key], nil
}
