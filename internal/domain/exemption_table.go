package domain

// KeySet is an immutable set of attribute keys.
type KeySet struct {
	keys map[AttributeKey]struct{}
}

// NewKeySet builds a set from keys. Invalid keys are dropped.
func NewKeySet(keys ...AttributeKey) KeySet {
	m := make(map[AttributeKey]struct{}, len(keys))
	for _, k := range keys {
		if k.Valid() {
			m[k] = struct{}{}
		}
	}
	return KeySet{keys: m}
}

// Contains reports whether k is in the set. The zero KeySet is empty.
func (s KeySet) Contains(k AttributeKey) bool {
	_, ok := s.keys[k]
	return ok
}

// Len returns the number of keys in the set.
func (s KeySet) Len() int {
	return len(s.keys)
}

// Keys returns the members in application order.
func (s KeySet) Keys() []AttributeKey {
	out := make([]AttributeKey, 0, len(s.keys))
	for _, k := range AllAttributeKeys() {
		if s.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}

// ExemptionTable maps package names to the attribute keys that must be left
// untouched for them even when the package is otherwise spoofed.
type ExemptionTable struct {
	byPackage map[string]KeySet
}

// NewExemptionTable copies entries into an immutable table.
func NewExemptionTable(entries map[string][]AttributeKey) *ExemptionTable {
	t := &ExemptionTable{byPackage: make(map[string]KeySet, len(entries))}
	for pkg, keys := range entries {
		t.byPackage[pkg] = NewKeySet(keys...)
	}
	return t
}

// For returns the exempted keys for pkg; the empty set when none are configured.
// Safe on nil receiver.
func (t *ExemptionTable) For(pkg string) KeySet {
	if t == nil {
		return KeySet{}
	}
	return t.byPackage[pkg]
}
