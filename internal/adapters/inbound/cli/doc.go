// Package cli provides an inbound adapter that drives one simulated
// application process through the startup hook and a guarded call.
//
// Responsibilities:
//   - Presentation and orchestration only: fire the startup hook, print the
//     identity record before and after, consult the certificate chain guard.
//   - No dependency wiring or configuration loading: those are provided by the
//     application composition root (internal/app) and the caller.
package cli
