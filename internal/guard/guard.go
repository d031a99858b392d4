// Package guard refuses certificate chain retrieval on behalf of the
// attestation subsystem once the process identity has been spoofed.
package guard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sufield/pixelprops/internal/debug"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/override"
	"github.com/sufield/pixelprops/internal/ports"
)

const maxRecentDecisions = 16

// Guard implements ports.CertificateChainGuard.
//
// It is safe for concurrent use: the spoof state is atomic and the caller
// resolver is consulted per call.
type Guard struct {
	state    override.SpoofStateReader
	resolver ports.CallerResolver
	marker   string
	logger   debug.Logger

	mu     sync.Mutex
	recent []debug.GuardDecision
}

var _ ports.CertificateChainGuard = (*Guard)(nil)

// New creates a guard that refuses callers whose identifier contains marker.
func New(state override.SpoofStateReader, resolver ports.CallerResolver, marker string, logger debug.Logger) *Guard {
	if logger == nil {
		logger = debug.GetLogger()
	}
	return &Guard{state: state, resolver: resolver, marker: marker, logger: logger}
}

// GuardCertificateChainRetrieval returns an error wrapping
// domain.ErrAttestationRefused when the process is spoofed and the call
// context is attributable to the attestation subsystem. It returns nil in
// every other case, including when the call context cannot be resolved.
func (g *Guard) GuardCertificateChainRetrieval(ctx context.Context) error {
	if !g.state.IsSpoofed() {
		g.record("ALLOW", "", "process not spoofed")
		return nil
	}

	caller, err := g.attestationCaller(ctx)
	if err != nil {
		g.logger.Warnf("Caller resolution failed, allowing certificate chain retrieval: %v", err)
		g.record("ALLOW", "", "caller unresolved")
		return nil
	}
	if caller == "" {
		g.record("ALLOW", "", "caller is not the attestation subsystem")
		return nil
	}

	g.logger.Debugf("Refusing certificate chain retrieval for %s", caller)
	g.record("REFUSE", caller, "spoofed process, attestation caller")
	return fmt.Errorf("%w: caller %s", domain.ErrAttestationRefused, caller)
}

// attestationCaller returns the first call-context identifier containing the
// marker, or "" when none does.
func (g *Guard) attestationCaller(ctx context.Context) (string, error) {
	if g.marker == "" {
		return "", nil
	}
	callers, err := g.resolver.ResolveCallers(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrCallerUnresolved) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ports.ErrCallerUnresolved, err)
	}
	for _, c := range callers {
		if strings.Contains(c, g.marker) {
			return c, nil
		}
	}
	return "", nil
}

func (g *Guard) record(decision, caller, reason string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.recent = append(g.recent, debug.GuardDecision{Decision: decision, Caller: caller, Reason: reason})
	if len(g.recent) > maxRecentDecisions {
		g.recent = g.recent[len(g.recent)-maxRecentDecisions:]
	}
}

// RecentDecisions returns a copy of the most recent guard decisions, oldest first.
func (g *Guard) RecentDecisions() []debug.GuardDecision {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]debug.GuardDecision(nil), g.recent...)
}
