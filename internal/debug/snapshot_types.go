package debug

// Snapshot is what we expose over /_debug/session.
//
// This type is safe to compile in all builds (no build tags) because
// it's just a struct definition. The endpoints that use it are only
// available in debug builds.
type Snapshot struct {
	Package        string           `json:"package"`
	Process        string           `json:"process"`
	Class          string           `json:"class"`
	Spoofed        bool             `json:"spoofed"`
	Applied        []string         `json:"applied"`
	Failed         []FailedOverride `json:"failed,omitempty"`
	GuardDecisions []GuardDecision  `json:"guardDecisions,omitempty"`
}

// FailedOverride records a directive the host refused.
type FailedOverride struct {
	Directive string `json:"directive"`
	Error     string `json:"error"`
}

// GuardDecision records one consultation of the certificate chain guard.
type GuardDecision struct {
	Decision string `json:"decision"` // "ALLOW" or "REFUSE"
	Caller   string `json:"caller,omitempty"`
	Reason   string `json:"reason"`
}
