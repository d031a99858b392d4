// Package ports defines the inbound and outbound ports used to decouple the
// classification and override core from the host platform.
//
// Purpose
// -------
// The host owns the process lifecycle, the system-property store, the
// privileged write primitive and the call stack. None of these are
// reimplemented here; the core depends only on the interfaces below and the
// host (or the in-memory adapters in tests) supplies implementations.
//
// Files and responsibilities
// --------------------------
//   - inbound.go
//   - StartupHook: invoked by the host once per process at application start.
//   - CertificateChainGuard: invoked by the host before certificate chain
//     retrieval.
//   - outbound.go
//   - SystemProperties, AttributeWriter, CallerResolver: capabilities the
//     host injects. Each interface documents its error contract.
//   - errors.go
//   - Infrastructure errors returned by adapters.
package ports
