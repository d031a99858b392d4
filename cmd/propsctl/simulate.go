package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sufield/pixelprops/internal/adapters/inbound/cli"
	"github.com/sufield/pixelprops/internal/adapters/outbound/callers"
	"github.com/sufield/pixelprops/internal/adapters/outbound/inmemory"
	"github.com/sufield/pixelprops/internal/app"
	"github.com/sufield/pixelprops/internal/debug"
	"github.com/sufield/pixelprops/internal/domain"
)

func simulateCommand(cmd *Command, args []string, w io.Writer) error {
	fs := cmd.NewFlagSet(w)
	pkg := fs.String("package", "", "Application package name (required)")
	proc := fs.String("process", "", "Process name (defaults to the package name)")
	codename := fs.String("codename", "lavender", "Real device codename")
	model := fs.String("model", "Redmi Note 7", "Real device model")
	buildDate := fs.String("build-date", "Mon Jun  6 12:00:00 UTC 2022", "Real build date")
	caller := fs.String("caller", "com.google.ccc.abuse.droidguard.DroidGuard", "Caller identifier presented to the guard")
	sealed := fs.String("sealed", "", "Comma-separated attributes whose writes the device rejects")
	configPath := fs.String("config", "", "Profile document (defaults to the compiled-in profile)")
	serve := fs.Bool("serve", false, "Keep the process running and serve /_debug until interrupted (debug builds)")
	addr := fs.String("addr", "", "Debug server address (defaults to PIXELPROPS_DEBUG_ADDR or "+debug.DefaultServerAddr+")")

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

	var sealedKeys []domain.AttributeKey
	if *sealed != "" {
		for _, name := range strings.Split(*sealed, ",") {
			k, err := domain.ParseAttributeKey(name)
			if err != nil {
				return err
			}
			sealedKeys = append(sealedKeys, k)
		}
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	faults := &debug.FaultProfile{}
	record := inmemory.NewIdentityRecord(map[domain.AttributeKey]string{
		domain.Brand:            "generic",
		domain.Manufacturer:     "generic",
		domain.DeviceCodename:   *codename,
		domain.ProductCodename:  *codename,
		domain.ModelName:        *model,
		domain.BuildFingerprint: fmt.Sprintf("generic/%s/%s:12/SIM/1:user/release-keys", *codename, *codename),
	}, inmemory.WithSealed(sealedKeys...), inmemory.WithFaults(faults))
	props := inmemory.NewPropertyStore(map[string]string{
		cfg.Properties.DeviceCodename: *codename,
		cfg.Properties.ProductModel:   *model,
		cfg.Properties.BuildDate:      *buildDate,
	}, inmemory.WithStoreFaults(faults))

	application, err := app.Bootstrap(cfg, app.Host{
		Properties: props,
		Writer:     record,
		Callers:    callers.ContextResolver{},
	})
	if err != nil {
		return err
	}

	ctx := callers.WithCallers(context.Background(), *caller)
	if err := cli.New(application, record, w).Run(ctx, p); err != nil {
		return err
	}
	if !*serve {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintln(w, "\nServing /_debug until interrupted")
	return application.ServeDebug(ctx, *addr)
}
