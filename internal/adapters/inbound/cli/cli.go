package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sufield/pixelprops/internal/app"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/ports"
)

// CLI is an inbound adapter that drives the application via command-line interface
// Responsibility: ONLY I/O presentation and orchestration of the startup path
// Does NOT configure or wire dependencies
type CLI struct {
	application *app.Application
	identity    ports.AttributeReader
	out         io.Writer
}

// New creates a CLI adapter over a bootstrapped application and the identity
// record it writes to.
func New(application *app.Application, identity ports.AttributeReader, out io.Writer) *CLI {
	return &CLI{
		application: application,
		identity:    identity,
		out:         out,
	}
}

// Run starts proc, prints the resulting identity, then consults the guard
// with ctx, whose call context decides whether attestation is refused.
//
// A refusal is printed, not returned; errors are reserved for failures to
// drive the application.
func (c *CLI) Run(ctx context.Context, proc domain.Process) error {
	before := c.readAll()

	if err := c.application.OnApplicationStart(ctx, proc); err != nil {
		return fmt.Errorf("startup hook: %w", err)
	}
	after := c.readAll()

	fmt.Fprintf(c.out, "Started %s\n", proc)
	if s := c.application.Session(); s != nil {
		fmt.Fprintf(c.out, "  Class: %s\n", s.Decision.Class)
		for _, f := range s.Report.Failed {
			fmt.Fprintf(c.out, "  ✗ %s: %v\n", f.Directive, f.Err)
		}
	}
	fmt.Fprintln(c.out)

	width := len("ATTRIBUTE")
	for _, k := range domain.AllAttributeKeys() {
		width = max(width, len(k.String()))
	}
	fmt.Fprintf(c.out, "  %-*s  %s\n", width, "ATTRIBUTE", "VALUE")
	for _, k := range domain.AllAttributeKeys() {
		marker := " "
		if before[k] != after[k] {
			marker = "*"
		}
		fmt.Fprintf(c.out, "%s %-*s  %q\n", marker, width, k, after[k])
	}
	fmt.Fprintln(c.out)

	fmt.Fprintf(c.out, "Spoofed: %t\n", c.application.Spoofed())
	err := c.application.GuardCertificateChainRetrieval(ctx)
	switch {
	case err == nil:
		fmt.Fprintln(c.out, "Certificate chain retrieval: allowed")
	case errors.Is(err, domain.ErrAttestationRefused):
		fmt.Fprintf(c.out, "Certificate chain retrieval: refused (%v)\n", err)
	default:
		return fmt.Errorf("guard: %w", err)
	}
	return nil
}

func (c *CLI) readAll() map[domain.AttributeKey]string {
	out := make(map[domain.AttributeKey]string, len(domain.AllAttributeKeys()))
	for _, k := range domain.AllAttributeKeys() {
		v, err := c.identity.ReadAttribute(k)
		if err != nil {
			v = "<" + strings.ToLower(k.String()) + " unavailable>"
		}
		out[k] = v
	}
	return out
}
