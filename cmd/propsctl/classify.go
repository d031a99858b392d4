package main

import (
	"fmt"
	"io"

	"github.com/sufield/pixelprops/internal/classify"
	"github.com/sufield/pixelprops/internal/domain"
)

func classifyCommand(cmd *Command, args []string, w io.Writer) error {
	fs := cmd.NewFlagSet(w)
	pkg := fs.String("package", "", "Application package name (required)")
	proc := fs.String("process", "", "Process name (defaults to the package name)")
	codename := fs.String("codename", "", "Real device codename")
	model := fs.String("model", "", "Real device model")
	buildDate := fs.String("build-date", "", "Real build date")
	configPath := fs.String("config", "", "Profile document (defaults to the compiled-in profile)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	procName := *proc
	if procName == "" {
		procName = *pkg
	}
	p, err := domain.NewProcessValidated(*pkg, procName)
	if err != nil {
		fs.Usage()
		return err
	}

	store, err := loadStore(*configPath)
	if err != nil {
		return err
	}

	facts := domain.DeviceFacts{Codename: *codename, Model: *model, BuildDate: *buildDate}
	d := classify.NewEngine(store).Classify(p, facts)

	fmt.Fprintf(w, "Process:  %s\n", p)
	fmt.Fprintf(w, "Class:    %s\n", d.Class)
	fmt.Fprintf(w, "Spoofed:  %s\n", yesNo(d.MarkSpoofed))
	if d.MarkSpoofed {
		fmt.Fprintf(w, "Guarded:  certificate chain retrieval refused for callers matching %q\n", store.CallerMarker())
	}

	if len(d.Directives) == 0 {
		fmt.Fprintln(w, "\nNo overrides.")
		return nil
	}

	fmt.Fprintln(w)
	table := NewTableWriter("Attribute", "Value")
	for _, dir := range d.Directives {
		table.AddRow(dir.Key.String(), fmt.Sprintf("%q", dir.Value))
	}
	table.Print(w)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
