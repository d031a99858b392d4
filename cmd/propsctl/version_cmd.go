package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

func versionCommand(cmd *Command, v VersionInfo, args []string, w io.Writer) error {
	fs := cmd.NewFlagSet(w)
	verbose := fs.Bool("verbose", false, "Show module dependencies")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(w, "propsctl %s (commit: %s, built: %s)\n", v.Version, v.Commit, v.Date)
	fmt.Fprintf(w, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)

	if !*verbose {
		return nil
	}

	info, ok := debug.ReadBuildInfo()
	if !ok || len(info.Deps) == 0 {
		fmt.Fprintln(w, "\nNo module information available.")
		return nil
	}

	fmt.Fprintln(w, "\nDependencies:")
	table := NewTableWriter("Module", "Version")
	for _, dep := range info.Deps {
		table.AddRow(dep.Path, dep.Version)
	}
	table.Print(w)
	return nil
}
