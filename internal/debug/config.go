package debug

import (
	"os"
	"strconv"
)

// DefaultServerAddr is where the debug server listens unless told otherwise.
const DefaultServerAddr = "127.0.0.1:6061"

// Config holds debug mode configuration
type Config struct {
	// Enabled raises the global logger to debug level
	Enabled bool

	// DebugServerAddr is the address Serve listens on when none is given
	DebugServerAddr string
}

// Active is the global debug configuration
var Active = Config{DebugServerAddr: DefaultServerAddr}

// FromEnv reads the debug toggles through getenv:
//   - PIXELPROPS_DEBUG: debug logging (strconv.ParseBool syntax; invalid means off)
//   - PIXELPROPS_DEBUG_ADDR: debug server address
func FromEnv(getenv func(string) string) Config {
	enabled, _ := strconv.ParseBool(getenv("PIXELPROPS_DEBUG"))
	addr := getenv("PIXELPROPS_DEBUG_ADDR")
	if addr == "" {
		addr = DefaultServerAddr
	}
	return Config{Enabled: enabled, DebugServerAddr: addr}
}

// Init initializes debug configuration from environment variables
func Init() {
	Active = FromEnv(os.Getenv)
}
