package ports

import "errors"

// Infrastructure errors for adapter layer.
//
// These errors represent host/adapter concerns and are separate from domain
// errors which represent override and attestation outcomes.

// ErrPropertyStoreUnavailable indicates the host system-property store could not be read.
//
// Used by:
//   - SystemProperties adapters when the backing store is not reachable
var ErrPropertyStoreUnavailable = errors.New("system property store unavailable")

// ErrCallerUnresolved indicates the host could not describe the current call context.
//
// Used by:
//   - CallerResolver adapters when no call-context record is available
var ErrCallerUnresolved = errors.New("caller context unresolved")

// Compile-time check that errors implement error interface
var (
	_ error = ErrPropertyStoreUnavailable
	_ error = ErrCallerUnresolved
)
