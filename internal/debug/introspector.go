package debug

import (
	"context"
	"errors"
)

// Introspector is implemented by components that can provide debug snapshots.
//
// This interface is safe to compile in all builds (no build tags) because
// it's just an interface definition.
type Introspector interface {
	// SnapshotData returns a view of the current process's override state.
	SnapshotData(ctx context.Context) Snapshot
}

// ErrServerUnavailable is returned by Serve in builds without the debug tag.
var ErrServerUnavailable = errors.New("debug server not compiled in (rebuild with -tags debug)")
