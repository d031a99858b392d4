package domain

import (
	"fmt"
	"strings"
)

// Process identifies an application process at startup.
//
// Immutable after construction - all fields are unexported and read-only via accessors.
type Process struct {
	packageName string
	processName string
}

// NewProcess creates a process without validation.
//
// An empty package name is allowed: the classifier treats it as a process
// that is never spoofed rather than as an error.
func NewProcess(packageName, processName string) Process {
	return Process{packageName: packageName, processName: processName}
}

// NewProcessValidated creates a process and rejects an empty package name.
//
// Returns ErrProcessInvalid if validation fails.
func NewProcessValidated(packageName, processName string) (Process, error) {
	if strings.TrimSpace(packageName) == "" {
		return Process{}, fmt.Errorf("%w: package name cannot be empty", ErrProcessInvalid)
	}
	return NewProcess(packageName, processName), nil
}

// PackageName returns the application package name.
func (p Process) PackageName() string {
	return p.packageName
}

// ProcessName returns the process name; for the main process this equals
// the package name.
func (p Process) ProcessName() string {
	return p.processName
}

// IsZero reports whether the process has no package name.
func (p Process) IsZero() bool {
	return p.packageName == ""
}

// Is reports whether p runs packageName in processName.
func (p Process) Is(packageName, processName string) bool {
	return p.packageName == packageName && p.processName == processName
}

// String returns a representation suitable for logging.
//
// Format: process{package="com.example",name="com.example:remote"}
func (p Process) String() string {
	return fmt.Sprintf("process{package=%q,name=%q}", p.packageName, p.processName)
}

// DeviceFacts are the real device values read from the host property store.
type DeviceFacts struct {
	// Codename is the real device codename, e.g. "lavender".
	Codename string
	// Model is the real model name.
	Model string
	// BuildDate is the real build date string.
	BuildDate string
}
