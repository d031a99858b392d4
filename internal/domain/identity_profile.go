package domain

import (
	"fmt"
	"strings"
)

// IdentityProfile is the reference-device attribute set applied to spoofed
// packages.
//
// Immutable after construction - values are unexported and accessors return copies.
type IdentityProfile struct {
	values map[AttributeKey]string
}

// NewIdentityProfile creates a profile from key/value pairs.
//
// Validations:
//   - every key must be a valid AttributeKey
//   - values must not be empty or whitespace-only
//
// Returns ErrProfileInvalid if validation fails.
func NewIdentityProfile(values map[AttributeKey]string) (*IdentityProfile, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: profile has no attributes", ErrProfileInvalid)
	}

	copied := make(map[AttributeKey]string, len(values))
	for k, v := range values {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrProfileInvalid, k)
		}
		if strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("%w: %s has an empty value", ErrProfileInvalid, k)
		}
		copied[k] = v
	}

	return &IdentityProfile{values: copied}, nil
}

// Value returns the profile value for key.
// Safe on nil receiver.
func (p *IdentityProfile) Value(key AttributeKey) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.values[key]
	return v, ok
}

// Keys returns the keys present in the profile, in application order.
func (p *IdentityProfile) Keys() []AttributeKey {
	if p == nil {
		return nil
	}
	keys := make([]AttributeKey, 0, len(p.values))
	for _, k := range AllAttributeKeys() {
		if _, ok := p.values[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Directives returns one directive per profile attribute, in application order.
func (p *IdentityProfile) Directives() []Directive {
	keys := p.Keys()
	out := make([]Directive, 0, len(keys))
	for _, k := range keys {
		out = append(out, Directive{Key: k, Value: p.values[k]})
	}
	return out
}

// Len returns the number of attributes in the profile.
func (p *IdentityProfile) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}

// String returns a compact representation suitable for logging.
func (p *IdentityProfile) String() string {
	if p == nil {
		return "profile<nil>"
	}
	parts := make([]string, 0, len(p.values))
	for _, d := range p.Directives() {
		parts = append(parts, d.String())
	}
	return "profile{" + strings.Join(parts, ",") + "}"
}
