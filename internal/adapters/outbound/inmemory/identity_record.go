package inmemory

import (
	"fmt"
	"sync"

	"github.com/sufield/pixelprops/internal/debug"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/ports"
)

// IdentityRecord is a process-wide identity structure whose attributes can
// only be changed through WriteAttribute.
//
// Attributes absent from the record behave like a renamed field on the host
// (ErrConfigurationMiss); sealed attributes reject writes
// (ErrWritePermissionDenied).
type IdentityRecord struct {
	mu     sync.RWMutex
	values map[domain.AttributeKey]string
	sealed map[domain.AttributeKey]bool
	writes int
	faults *debug.FaultProfile
}

// Compile-time checks that IdentityRecord implements the host ports
var (
	_ ports.AttributeWriter = (*IdentityRecord)(nil)
	_ ports.AttributeReader = (*IdentityRecord)(nil)
)

// RecordOption configures an IdentityRecord.
type RecordOption func(*IdentityRecord)

// WithSealed marks attributes whose writes the host rejects.
func WithSealed(keys ...domain.AttributeKey) RecordOption {
	return func(r *IdentityRecord) {
		for _, k := range keys {
			r.sealed[k] = true
		}
	}
}

// WithFaults consults f for one-shot injected failures (defaults to debug.Faults).
func WithFaults(f *debug.FaultProfile) RecordOption {
	return func(r *IdentityRecord) { r.faults = f }
}

// NewIdentityRecord creates a record holding the real device values.
func NewIdentityRecord(values map[domain.AttributeKey]string, opts ...RecordOption) *IdentityRecord {
	r := &IdentityRecord{
		values: make(map[domain.AttributeKey]string, len(values)),
		sealed: make(map[domain.AttributeKey]bool),
		faults: debug.Faults,
	}
	for k, v := range values {
		r.values[k] = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WriteAttribute replaces the value of key.
func (r *IdentityRecord) WriteAttribute(key domain.AttributeKey, value string) error {
	if r.faults.ShouldHideAttribute() {
		return fmt.Errorf("%w: %s (injected)", domain.ErrConfigurationMiss, key)
	}
	if r.faults.ShouldRejectWrite() {
		return fmt.Errorf("%w: %s (injected)", domain.ErrWritePermissionDenied, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.values[key]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrConfigurationMiss, key)
	}
	if r.sealed[key] {
		return fmt.Errorf("%w: %s is sealed", domain.ErrWritePermissionDenied, key)
	}
	r.values[key] = value
	r.writes++
	return nil
}

// ReadAttribute returns the current value of key.
func (r *IdentityRecord) ReadAttribute(key domain.AttributeKey) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrConfigurationMiss, key)
	}
	return v, nil
}

// Snapshot returns a copy of all attribute values.
func (r *IdentityRecord) Snapshot() map[domain.AttributeKey]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[domain.AttributeKey]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Writes returns the number of successful writes, for tests asserting that
// reapplying an override does no work.
func (r *IdentityRecord) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}
