package domain

import (
	"fmt"
	"strings"
)

// AttributeKey names one of the process-wide identity attributes.
//
// The zero value is not a valid key; valid keys iterate in declaration order,
// which is also the order overrides are applied in.
type AttributeKey int

const (
	Brand AttributeKey = iota + 1
	Manufacturer
	DeviceCodename
	ProductCodename
	ModelName
	BuildFingerprint
)

// attributeNames are the field names on the host identity structure.
var attributeNames = map[AttributeKey]string{
	Brand:            "BRAND",
	Manufacturer:     "MANUFACTURER",
	DeviceCodename:   "DEVICE",
	ProductCodename:  "PRODUCT",
	ModelName:        "MODEL",
	BuildFingerprint: "FINGERPRINT",
}

// AllAttributeKeys returns every valid key in application order.
func AllAttributeKeys() []AttributeKey {
	return []AttributeKey{Brand, Manufacturer, DeviceCodename, ProductCodename, ModelName, BuildFingerprint}
}

// String returns the identity structure field name, e.g. "MODEL".
func (k AttributeKey) String() string {
	if name, ok := attributeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("AttributeKey(%d)", int(k))
}

// Valid reports whether k is one of the six identity attributes.
func (k AttributeKey) Valid() bool {
	_, ok := attributeNames[k]
	return ok
}

// ParseAttributeKey maps a field name back to its key. Matching is
// case-insensitive and ignores surrounding whitespace.
//
// Returns ErrUnknownAttribute for names outside the enum.
func ParseAttributeKey(name string) (AttributeKey, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, k := range AllAttributeKeys() {
		if attributeNames[k] == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// MarshalText implements encoding.TextMarshaler.
func (k AttributeKey) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAttribute, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AttributeKey) UnmarshalText(text []byte) error {
	parsed, err := ParseAttributeKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
