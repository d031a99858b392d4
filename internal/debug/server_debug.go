//go:build debug

package debug

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	maxRequestBodyBytes = 10 * 1024 // 10KB max for fault injection requests
	shutdownTimeout     = 2 * time.Second
)

// FaultRequest represents a fault injection request
type FaultRequest struct {
	RejectNextWrite      *bool `json:"reject_next_write,omitempty"`
	HideNextAttribute    *bool `json:"hide_next_attribute,omitempty"`
	FailNextPropertyRead *bool `json:"fail_next_property_read,omitempty"`
}

// Serve runs the debug HTTP server on addr (Active.DebugServerAddr when
// empty) until ctx is done, then shuts it down. It should only ever listen on
// localhost.
//
// The introspector provides the session snapshot. It can be nil, in which
// case /_debug/session answers 501.
func Serve(ctx context.Context, addr string, introspector Introspector) error {
	if addr == "" {
		addr = Active.DebugServerAddr
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("debug server listen on %s: %w", addr, err)
	}

	logger := GetLogger()
	logger.Warnf("DEBUG SERVER RUNNING ON %s - DO NOT USE IN PRODUCTION", ln.Addr())

	httpServer := &http.Server{
		Handler:           NewRouter(introspector),
		ReadHeaderTimeout: 2 * time.Second, // Prevent Slowloris attacks
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("debug server shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("debug server: %w", err)
	}
}

// NewRouter returns the debug routes.
func NewRouter(introspector Introspector) http.Handler {
	r := chi.NewRouter()
	r.Route("/_debug", func(r chi.Router) {
		r.Get("/state", handleState)
		r.Get("/config", handleConfig)
		r.Get("/faults", handleGetFaults)
		r.Post("/faults", handleSetFaults)
		r.Post("/faults/reset", handleFaultsReset)
		r.Get("/session", func(w http.ResponseWriter, req *http.Request) {
			if introspector == nil {
				http.Error(w, "Session introspection not available (no introspector provided)", http.StatusNotImplemented)
				return
			}
			writeJSON(w, introspector.SnapshotData(req.Context()))
		})
	})
	return r
}

func handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"debug_enabled": Active.Enabled,
		"faults":        Faults.Snapshot(),
	})
}

func handleConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"enabled":           Active.Enabled,
		"debug_server_addr": Active.DebugServerAddr,
	})
}

func handleGetFaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Faults.Snapshot())
}

// handleSetFaults applies fault injection configuration from JSON request.
func handleSetFaults(w http.ResponseWriter, r *http.Request) {
	logger := GetLogger()

	// Limit request body size to prevent DoS
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req FaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Debugf("Failed to decode fault request: %v", err)
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	if req.RejectNextWrite != nil {
		Faults.SetRejectNextWrite(*req.RejectNextWrite)
		logger.Debugf("Fault set: reject_next_write=%v", *req.RejectNextWrite)
	}
	if req.HideNextAttribute != nil {
		Faults.SetHideNextAttribute(*req.HideNextAttribute)
		logger.Debugf("Fault set: hide_next_attribute=%v", *req.HideNextAttribute)
	}
	if req.FailNextPropertyRead != nil {
		Faults.SetFailNextPropertyRead(*req.FailNextPropertyRead)
		logger.Debugf("Fault set: fail_next_property_read=%v", *req.FailNextPropertyRead)
	}

	writeJSON(w, Faults.Snapshot())
}

func handleFaultsReset(w http.ResponseWriter, r *http.Request) {
	Faults.Reset()
	GetLogger().Debug("All faults reset")

	writeJSON(w, map[string]string{"status": "reset"})
}

// writeJSON writes a JSON response with proper content type.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
