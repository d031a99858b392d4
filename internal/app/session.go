package app

import (
	"context"

	"github.com/sufield/pixelprops/internal/classify"
	"github.com/sufield/pixelprops/internal/debug"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/override"
)

// Session records the startup outcome for one process. It is written once
// by OnApplicationStart and not modified afterwards.
type Session struct {
	Process  domain.Process
	Facts    domain.DeviceFacts
	Decision classify.Decision
	Report   override.Report
}

// SnapshotData returns the debug view of the session and the guard's recent
// decisions.
func (a *Application) SnapshotData(_ context.Context) debug.Snapshot {
	snap := debug.Snapshot{
		Class:          domain.NoneClass().String(),
		Spoofed:        a.Spoofed(),
		GuardDecisions: a.guard.RecentDecisions(),
	}

	s := a.Session()
	if s == nil {
		return snap
	}

	snap.Package = s.Process.PackageName()
	snap.Process = s.Process.ProcessName()
	snap.Class = s.Decision.Class.String()
	for _, d := range s.Report.Applied {
		snap.Applied = append(snap.Applied, d.String())
	}
	for _, f := range s.Report.Failed {
		snap.Failed = append(snap.Failed, debug.FailedOverride{
			Directive: f.Directive.String(),
			Error:     f.Err.Error(),
		})
	}
	return snap
}

// ServeDebug exposes this application's snapshot on the /_debug routes until
// ctx is done. Builds without the debug tag return debug.ErrServerUnavailable.
func (a *Application) ServeDebug(ctx context.Context, addr string) error {
	return debug.Serve(ctx, addr, a)
}
