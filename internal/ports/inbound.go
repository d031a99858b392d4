package ports

import (
	"context"

	"github.com/sufield/pixelprops/internal/domain"
)

// StartupHook is driven by the host process lifecycle once per application
// process, before application code reads identity attributes.
type StartupHook interface {
	OnApplicationStart(ctx context.Context, proc domain.Process) error
}

// CertificateChainGuard is consulted by the host immediately before it
// performs a certificate chain retrieval for the current process.
//
// Error Contract:
// - GuardCertificateChainRetrieval returns an error wrapping domain.ErrAttestationRefused
//   when the retrieval must not proceed; nil otherwise
type CertificateChainGuard interface {
	GuardCertificateChainRetrieval(ctx context.Context) error
}
