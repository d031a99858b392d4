package ports

import (
	"context"

	"github.com/sufield/pixelprops/internal/domain"
)

// SystemProperties provides read-only lookups in the host system-property store.
//
// Error Contract:
// - Get returns ("", nil) for keys that are not set
// - Get returns ErrPropertyStoreUnavailable if the store cannot be read
type SystemProperties interface {
	Get(ctx context.Context, key string) (string, error)
}

// AttributeWriter is the privileged capability granting write access to the
// otherwise read-only identity record of the current process.
//
// Error Contract:
// - WriteAttribute returns domain.ErrConfigurationMiss if the record has no such attribute
// - WriteAttribute returns domain.ErrWritePermissionDenied if the host rejects the write
type AttributeWriter interface {
	WriteAttribute(key domain.AttributeKey, value string) error
}

// AttributeReader reads the current value of an identity attribute.
// Implemented by identity records that also expose their state for inspection.
//
// Error Contract:
// - ReadAttribute returns domain.ErrConfigurationMiss if the record has no such attribute
type AttributeReader interface {
	ReadAttribute(key domain.AttributeKey) (string, error)
}

// CallerResolver describes the call context of the current operation as a
// list of identifiers (class, module or function names), innermost first.
//
// Error Contract:
// - ResolveCallers returns ErrCallerUnresolved if no context is available
type CallerResolver interface {
	ResolveCallers(ctx context.Context) ([]string, error)
}
