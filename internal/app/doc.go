// Package app contains the application's composition root.
// It wires the profile store, classifier, override mechanism and
// attestation guard around the host capabilities of one application process.
//
// Responsibilities
//   - Bootstrap the per-process runtime via `Bootstrap` (see bootstrap.go).
//     Bootstrap validates the profile document, builds the store and returns
//     a wired Application.
//   - Drive the startup path once per process (`OnApplicationStart`): read the
//     real device facts, classify, apply overrides, set the spoof state.
//   - Serve the guarded call (`GuardCertificateChainRetrieval`) for the rest
//     of the process lifetime.
//
// Files
// - application.go
//   - Application: the context object carried from startup to the guard.
//     It implements ports.StartupHook and ports.CertificateChainGuard.
//
// - session.go
//   - Session: what startup decided and applied for this process.
//   - SnapshotData for the debug introspection server.
//   - ServeDebug: runs that server until its context is done (debug builds only).
//
// - bootstrap.go
//   - Bootstrap(cfg, host): composition from a profile document.
//
// Architectural notes
//   - There is no package-level state here. The spoof state lives in the
//     override mechanism owned by one Application and reaches the guard only
//     as a read-only view.
//   - Host I/O stays in adapters; this package only calls ports.
package app
