package app

import (
	"fmt"
	"sync"

	"github.com/sufield/pixelprops/internal/config"
	"github.com/sufield/pixelprops/internal/debug"
	"github.com/sufield/pixelprops/internal/profile"
)

var debugOnce sync.Once

// Bootstrap wires application components:
// - Reads the debug toggles from the environment
// - Validates the profile document and builds the store
// - Returns an Application bound to the host capabilities
//
// Pass config.Default() for the compiled-in profile.
func Bootstrap(cfg config.FileConfig, host Host, opts ...Option) (*Application, error) {
	debugOnce.Do(func() {
		debug.Init()
		debug.InitLogger()
	})

	store, err := profile.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build profile store: %w", err)
	}
	return New(store, host, opts...)
}
