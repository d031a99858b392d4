package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common domain failures
// Use with errors.Is() for checking and fmt.Errorf("%w", ...) for wrapping with context

var (
	// ErrConfigurationMiss indicates the identity structure has no attribute with the requested key
	ErrConfigurationMiss = errors.New("identity attribute not found")

	// ErrWritePermissionDenied indicates the host rejected the privileged write
	ErrWritePermissionDenied = errors.New("identity attribute write rejected")

	// ErrNotSupported is the signal surfaced to callers of a refused operation
	ErrNotSupported = errors.New("operation not supported")

	// ErrAttestationRefused indicates certificate chain retrieval was refused for a spoofed process.
	// It wraps ErrNotSupported so callers checking either sentinel see the refusal.
	ErrAttestationRefused = fmt.Errorf("attestation refused: %w", ErrNotSupported)
)

// Validation errors for specific entities

var (
	// ErrUnknownAttribute indicates an attribute name outside the identity enum
	ErrUnknownAttribute = errors.New("unknown identity attribute")

	// ErrProcessInvalid indicates process validation failed
	ErrProcessInvalid = errors.New("process validation failed")

	// ErrProfileInvalid indicates identity profile validation failed
	ErrProfileInvalid = errors.New("identity profile validation failed")
)
