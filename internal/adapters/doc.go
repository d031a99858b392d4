// Package adapters contains infrastructure implementations of port interfaces.
//
// This package is the ADAPTER LAYER in hexagonal architecture - it implements
// the port interfaces defined in internal/ports against concrete host
// capabilities and translates between them and the domain.
//
// Hexagonal Architecture Boundaries:
//   - Adapters implement: internal/ports interfaces
//   - Adapters import from: internal/domain, internal/ports, internal/debug, standard library
//   - Adapters are instantiated: by cmd/propsctl or tests (composition root is internal/app)
//   - Domain/App layers: NEVER import concrete adapters directly
//
// Adapter Organization
//
//   - inbound/   - Adapters that drive the application (startup hook, guarded call)
//   - outbound/  - Adapters the application drives (identity record, property store, call context)
//
// Inbound Adapters (Driving Adapters)
//
// Example: cli (inbound/cli/)
//   - Drives: ports.StartupHook, ports.CertificateChainGuard via app.Application
//   - Purpose: Simulates one process start and one guarded call for maintainers
//
// Outbound Adapters (Driven Adapters)
//
// Example: inmemory (outbound/inmemory/)
//   - Implements: ports.AttributeWriter, ports.AttributeReader, ports.SystemProperties
//   - Purpose: A process-wide identity record and property store with
//     sealed attributes and one-shot injected faults
//
// Example: callers (outbound/callers/)
//   - Implements: ports.CallerResolver
//   - Technology: context tags, runtime.Callers
//   - Purpose: Attributes a guarded call to the subsystem that made it
//
// Design Principles
//
// 1. **Interface-First**: Adapters implement port interfaces, not the other way around
// 2. **One-Way Dependencies**: Adapters depend on ports/domain; domain never depends on adapters
// 3. **Error Contract**: Adapters report failures with the sentinels named in internal/ports
package adapters
