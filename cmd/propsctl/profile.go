package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sufield/pixelprops/internal/profile"
)

func profileCommand(cmd *Command, args []string, w io.Writer) error {
	fs := cmd.NewFlagSet(w)
	configPath := fs.String("config", "", "Profile document (defaults to the compiled-in profile)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	store, err := profile.New(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Identity profile:")
	table := NewTableWriter("Attribute", "Value")
	for _, d := range store.Profile().Directives() {
		table.AddRow(d.Key.String(), d.Value)
	}
	table.Print(w)

	fmt.Fprintln(w, "\nExemptions:")
	ex := NewTableWriter("Package", "Never overridden")
	for _, pkg := range sortedKeys(cfg.Exemptions) {
		ex.AddRow(pkg, strings.Join(cfg.Exemptions[pkg], ", "))
	}
	ex.Print(w)

	client := store.PrivilegedClient()
	fmt.Fprintln(w, "\nPackage rules:")
	rules := NewTableWriter("Rule", "Value")
	rules.AddRow("first-party prefix", cfg.Packages.FirstPartyPrefix)
	rules.AddRow("extra packages", strings.Join(cfg.Packages.Extra, ", "))
	rules.AddRow("kept packages", strings.Join(cfg.Packages.Keep, ", "))
	rules.AddRow("diagnostics", cfg.Packages.Diagnostics)
	rules.AddRow("privileged client", client.Package+" / "+client.Process)
	rules.AddRow("attestation marker", store.CallerMarker())
	rules.AddRow("reference devices", strings.Join(cfg.ReferenceCodenames, ", "))
	rules.Print(w)

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
