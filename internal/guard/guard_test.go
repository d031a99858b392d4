package guard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sufield/pixelprops/internal/adapters/outbound/callers"
	"github.com/sufield/pixelprops/internal/debug"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/guard"
	"github.com/sufield/pixelprops/internal/ports"
)

const marker = "DroidGuard"

type fixedState bool

func (s fixedState) IsSpoofed() bool { return bool(s) }

type errResolver struct{ err error }

func (e errResolver) ResolveCallers(context.Context) ([]string, error) { return nil, e.err }

func newGuard(spoofed bool, resolver ports.CallerResolver) (*guard.Guard, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return guard.New(fixedState(spoofed), resolver, marker, debug.NewLogger(core)), logs
}

func TestGuard_Quadrants(t *testing.T) {
	t.Parallel()

	attestation := callers.WithCallers(context.Background(),
		"android.security.keystore.AndroidKeyStoreSpi.engineGetCertificateChain",
		"com.google.ccc.abuse.droidguard.DroidGuard.attest",
	)
	other := callers.WithCallers(context.Background(),
		"android.security.keystore.AndroidKeyStoreSpi.engineGetCertificateChain",
		"com.example.wallet.TokenProvider.fetch",
	)

	tests := []struct {
		name    string
		spoofed bool
		ctx     context.Context
		refuse  bool
	}{
		{"clean, attestation caller", false, attestation, false},
		{"clean, other caller", false, other, false},
		{"spoofed, attestation caller", true, attestation, true},
		{"spoofed, other caller", true, other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, _ := newGuard(tt.spoofed, callers.ContextResolver{})
			err := g.GuardCertificateChainRetrieval(tt.ctx)
			if !tt.refuse {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrAttestationRefused)
			assert.ErrorIs(t, err, domain.ErrNotSupported)
			assert.Contains(t, err.Error(), "DroidGuard")
		})
	}
}

func TestGuard_UnresolvedCallerAllows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"unresolved", ports.ErrCallerUnresolved},
		{"resolver failure", errors.New("stack unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, logs := newGuard(true, errResolver{tt.err})
			assert.NoError(t, g.GuardCertificateChainRetrieval(context.Background()))
			assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
		})
	}
}

func TestGuard_CleanDoesNotResolve(t *testing.T) {
	t.Parallel()

	g, logs := newGuard(false, errResolver{errors.New("must not be called")})
	assert.NoError(t, g.GuardCertificateChainRetrieval(context.Background()))
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

// DroidGuardAttester stands in for the attestation subsystem; its name lands
// on the goroutine stack.
type DroidGuardAttester struct {
	guard ports.CertificateChainGuard
}

//go:noinline
func (a *DroidGuardAttester) CertificateChain(ctx context.Context) error {
	return a.guard.GuardCertificateChainRetrieval(ctx)
}

type walletProvider struct {
	guard ports.CertificateChainGuard
}

//go:noinline
func (w *walletProvider) CertificateChain(ctx context.Context) error {
	return w.guard.GuardCertificateChainRetrieval(ctx)
}

func TestGuard_StackResolution(t *testing.T) {
	t.Parallel()

	g, _ := newGuard(true, callers.StackResolver{})

	err := (&DroidGuardAttester{guard: g}).CertificateChain(context.Background())
	assert.ErrorIs(t, err, domain.ErrAttestationRefused)

	assert.NoError(t, (&walletProvider{guard: g}).CertificateChain(context.Background()))
}

func TestGuard_RecentDecisions(t *testing.T) {
	t.Parallel()

	g, _ := newGuard(true, callers.ContextResolver{})
	ctx := callers.WithCallers(context.Background(), "DroidGuard")

	_ = g.GuardCertificateChainRetrieval(ctx)
	_ = g.GuardCertificateChainRetrieval(callers.WithCallers(context.Background(), "other"))

	got := g.RecentDecisions()
	require.Len(t, got, 2)
	assert.Equal(t, "REFUSE", got[0].Decision)
	assert.Equal(t, "DroidGuard", got[0].Caller)
	assert.Equal(t, "ALLOW", got[1].Decision)

	for range 40 {
		_ = g.GuardCertificateChainRetrieval(ctx)
	}
	assert.LessOrEqual(t, len(g.RecentDecisions()), 16)
}
