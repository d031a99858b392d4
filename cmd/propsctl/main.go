// Command propsctl inspects the compiled-in identity profile and validates
// edited profile documents before they are embedded.
package main

import (
	"fmt"
	"io"
	"os"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	registry := NewCommandRegistry(VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	registerCommands(registry)

	if err := registry.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func registerCommands(r *CommandRegistry) {
	r.Register(&Command{
		Name:        "classify",
		Description: "Show the overrides a process would receive",
		Usage:       "propsctl classify --package <name> [--process <name>] [flags]",
		Examples: []string{
			"propsctl classify --package com.google.android.apps.photos",
			"propsctl classify --package com.google.android.gms --process com.google.android.gms.unstable",
			"propsctl classify --package com.google.android.gms --process com.google.android.gms.unstable --codename coral --model \"Pixel 4 XL\"",
		},
		Run: classifyCommand,
	})

	r.Register(&Command{
		Name:        "simulate",
		Description: "Start a process against an in-memory device and consult the guard",
		Usage:       "propsctl simulate --package <name> [--serve [--addr <host:port>]] [flags]",
		Examples: []string{
			"propsctl simulate --package com.google.android.gms --process com.google.android.gms.unstable",
			"propsctl simulate --package com.android.vending --sealed FINGERPRINT",
			"propsctl simulate --package com.google.android.gms --process com.google.android.gms.unstable --caller com.example.Wallet",
			"propsctl simulate --package com.google.android.gms --process com.google.android.gms.unstable --serve",
		},
		Run: simulateCommand,
	})

	r.Register(&Command{
		Name:        "profile",
		Description: "Print the identity profile and package rules",
		Usage:       "propsctl profile [--config <file>]",
		Examples: []string{
			"propsctl profile",
			"propsctl profile --config ./profile.yaml",
		},
		Run: profileCommand,
	})

	r.Register(&Command{
		Name:        "validate",
		Description: "Validate an identity profile document",
		Usage:       "propsctl validate <profile-file>",
		Examples: []string{
			"propsctl validate internal/config/profile.yaml",
		},
		Run: validateCommand,
	})

	r.Register(&Command{
		Name:        "version",
		Description: "Show version information",
		Usage:       "propsctl version [--verbose]",
		Examples: []string{
			"propsctl version",
			"propsctl version --verbose",
		},
		Run: func(cmd *Command, args []string, w io.Writer) error {
			return versionCommand(cmd, r.version, args, w)
		},
	})
}
