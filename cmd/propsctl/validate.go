package main

import (
	"fmt"
	"io"

	"github.com/sufield/pixelprops/internal/config"
	"github.com/sufield/pixelprops/internal/profile"
)

func validateCommand(cmd *Command, args []string, w io.Writer) error {
	fs := cmd.NewFlagSet(w)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("profile file path required")
	}
	path := fs.Arg(0)

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	store, err := profile.New(cfg)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "✓ Valid identity profile: %s\n", path)
	fmt.Fprintf(w, "  Attributes:         %d\n", store.Profile().Len())
	fmt.Fprintf(w, "  Exempted packages:  %d\n", len(cfg.Exemptions))
	fmt.Fprintf(w, "  Reference devices:  %d\n", len(cfg.ReferenceCodenames))
	fmt.Fprintf(w, "  Privileged client:  %s\n", cfg.PrivilegedClient.Process)
	return nil
}
