package debug

import "sync"

// FaultProfile defines faults that can be injected for testing the
// best-effort override path.
// All faults are one-shot (consumed after check) to ensure predictable,
// isolated test behavior.
type FaultProfile struct {
	mu sync.RWMutex

	// RejectNextWrite makes the next attribute write fail as permission denied (one-shot)
	RejectNextWrite bool

	// HideNextAttribute makes the next attribute write fail as not found (one-shot)
	HideNextAttribute bool

	// FailNextPropertyRead makes the next system property lookup fail (one-shot)
	FailNextPropertyRead bool
}

// Faults is the global fault profile
var Faults = &FaultProfile{}

// SetRejectNextWrite enables/disables write rejection
func (f *FaultProfile) SetRejectNextWrite(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RejectNextWrite = enabled
}

// ShouldRejectWrite checks and consumes the reject write flag
func (f *FaultProfile) ShouldRejectWrite() bool {
	return f.consume(&f.RejectNextWrite)
}

// SetHideNextAttribute enables/disables attribute hiding
func (f *FaultProfile) SetHideNextAttribute(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.HideNextAttribute = enabled
}

// ShouldHideAttribute checks and consumes the hide attribute flag
func (f *FaultProfile) ShouldHideAttribute() bool {
	return f.consume(&f.HideNextAttribute)
}

// SetFailNextPropertyRead enables/disables property read failure
func (f *FaultProfile) SetFailNextPropertyRead(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailNextPropertyRead = enabled
}

// ShouldFailPropertyRead checks and consumes the property read flag
func (f *FaultProfile) ShouldFailPropertyRead() bool {
	return f.consume(&f.FailNextPropertyRead)
}

func (f *FaultProfile) consume(flag *bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if *flag {
		*flag = false // One-shot
		return true
	}
	return false
}

// Reset clears all fault flags
func (f *FaultProfile) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RejectNextWrite = false
	f.HideNextAttribute = false
	f.FailNextPropertyRead = false
}

// Snapshot returns the current state of all faults as a map.
// The snapshot is a point-in-time view and won't reflect subsequent changes.
func (f *FaultProfile) Snapshot() map[string]any {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return map[string]any{
		"reject_next_write":       f.RejectNextWrite,
		"hide_next_attribute":     f.HideNextAttribute,
		"fail_next_property_read": f.FailNextPropertyRead,
	}
}
