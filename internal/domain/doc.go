// Package domain contains the domain model for device identity masking.
//
// This package is the CORE of the hexagonal layout: value objects and domain
// errors with ZERO dependencies on the host platform, property stores or
// logging. Everything that touches the host lives behind internal/ports.
//
// Files and types
// -----------------------
//   - attribute.go
//   - AttributeKey: the fixed enum of identity attributes (BRAND, MANUFACTURER,
//     DEVICE, PRODUCT, MODEL, FINGERPRINT).
//
//   - identity_profile.go
//   - IdentityProfile: the ordered reference-device attribute set. Immutable.
//
//   - exemption_table.go
//   - ExemptionTable: per-package keys that must never be overridden.
//
//   - package_class.go
//   - PackageClass: dominant-rule summary of one classification.
//
//   - directive.go
//   - Directive / DirectiveSet: the accumulated (key, value) overrides a
//     classification produces.
//
//   - process.go
//   - Process and DeviceFacts: the inputs of a classification.
//
//   - errors.go
//   - Sentinel errors for the override and attestation paths.
package domain
