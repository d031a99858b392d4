package override

import "sync/atomic"

// SpoofStateReader is the read-only view of SpoofState handed to the guard.
type SpoofStateReader interface {
	IsSpoofed() bool
}

// SpoofState is the process-wide flag marking that the privileged client
// process has been spoofed. It moves from false to true at most once and is
// never reset.
//
// The zero value is ready to use (Clean). Reads are safe from any goroutine.
type SpoofState struct {
	spoofed atomic.Bool
}

// IsSpoofed reports whether the process has entered the spoofed state.
func (s *SpoofState) IsSpoofed() bool {
	return s.spoofed.Load()
}

// markSpoofed sets the flag and reports whether this call made the transition.
func (s *SpoofState) markSpoofed() bool {
	return s.spoofed.CompareAndSwap(false, true)
}
