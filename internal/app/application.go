package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sufield/pixelprops/internal/classify"
	"github.com/sufield/pixelprops/internal/debug"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/guard"
	"github.com/sufield/pixelprops/internal/override"
	"github.com/sufield/pixelprops/internal/ports"
	"github.com/sufield/pixelprops/internal/profile"
)

// ErrAlreadyStarted is returned when the startup hook fires again for a
// different process than the one this Application was started for.
var ErrAlreadyStarted = errors.New("application already started")

// Host bundles the capabilities the host process injects.
type Host struct {
	Properties ports.SystemProperties
	Writer     ports.AttributeWriter
	Callers    ports.CallerResolver
}

// Option configures an Application.
type Option func(*Application)

// WithLogger overrides the logger (defaults to debug.GetLogger()).
func WithLogger(l debug.Logger) Option {
	return func(a *Application) { a.logger = l }
}

// Application is the per-process context object. It is created before the
// startup hook fires and lives as long as the process.
type Application struct {
	store     *profile.Store
	props     ports.SystemProperties
	engine    *classify.Engine
	mechanism *override.Mechanism
	guard     *guard.Guard
	logger    debug.Logger

	mu      sync.Mutex
	session *Session
}

var (
	_ ports.StartupHook           = (*Application)(nil)
	_ ports.CertificateChainGuard = (*Application)(nil)
	_ debug.Introspector          = (*Application)(nil)
)

// New wires an application and validates required deps.
func New(store *profile.Store, host Host, opts ...Option) (*Application, error) {
	if store == nil {
		return nil, fmt.Errorf("profile store is nil")
	}
	if host.Properties == nil {
		return nil, fmt.Errorf("system properties are nil")
	}
	if host.Writer == nil {
		return nil, fmt.Errorf("attribute writer is nil")
	}
	if host.Callers == nil {
		return nil, fmt.Errorf("caller resolver is nil")
	}

	a := &Application{
		store:  store,
		props:  host.Properties,
		engine: classify.NewEngine(store),
		logger: debug.GetLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.mechanism = override.NewMechanism(host.Writer, override.WithLogger(a.logger))
	a.guard = guard.New(a.mechanism.State(), host.Callers, store.CallerMarker(), a.logger)
	return a, nil
}

// OnApplicationStart classifies proc and applies its overrides. Write
// failures are logged and contained; the returned error is only
// ErrAlreadyStarted.
//
// A repeated call for the same process is a no-op.
func (a *Application) OnApplicationStart(ctx context.Context, proc domain.Process) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.session != nil {
		if a.session.Process == proc {
			a.logger.Debugf("Startup hook repeated for %s, ignoring", proc)
			return nil
		}
		return fmt.Errorf("%w: started as %s, got %s", ErrAlreadyStarted, a.session.Process, proc)
	}

	facts := a.readFacts(ctx)
	decision := a.engine.Classify(proc, facts)
	if !decision.IsNone() {
		a.logger.Debugf("Classified %s on %s as %s", proc, facts.Codename, decision.Class)
	}
	report := a.mechanism.ApplyDecision(decision)

	a.session = &Session{
		Process:  proc,
		Facts:    facts,
		Decision: decision,
		Report:   report,
	}
	return nil
}

// readFacts queries the real device facts. A failed lookup degrades to the
// empty value: the device is then treated as non-reference.
func (a *Application) readFacts(ctx context.Context) domain.DeviceFacts {
	keys := a.store.PropertyKeys()
	return domain.DeviceFacts{
		Codename:  a.property(ctx, keys.DeviceCodename),
		Model:     a.property(ctx, keys.ProductModel),
		BuildDate: a.property(ctx, keys.BuildDate),
	}
}

func (a *Application) property(ctx context.Context, key string) string {
	v, err := a.props.Get(ctx, key)
	if err != nil {
		a.logger.Warnf("Failed to read %s: %v", key, err)
		return ""
	}
	return v
}

// GuardCertificateChainRetrieval delegates to the attestation guard bound to
// this process's spoof state.
func (a *Application) GuardCertificateChainRetrieval(ctx context.Context) error {
	return a.guard.GuardCertificateChainRetrieval(ctx)
}

// Session returns what startup decided, or nil before the startup hook ran.
func (a *Application) Session() *Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

// Spoofed reports whether this process entered the spoofed state.
func (a *Application) Spoofed() bool {
	return a.mechanism.State().IsSpoofed()
}
