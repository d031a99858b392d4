// Package config defines the on-disk format of the identity profile document.
//
// The document is compiled into the binary (see Default) and is never read
// from the device at runtime; Load exists for tooling that validates edited
// copies before they are embedded.
package config

// PropertiesSection names the host system-property keys the core reads.
type PropertiesSection struct {
	// DeviceCodename holds the real device codename, e.g. "ro.statix.device".
	DeviceCodename string `yaml:"device_codename"`
	// ProductModel holds the real model name, e.g. "ro.product.model".
	ProductModel string `yaml:"product_model"`
	// BuildDate holds the real build date, e.g. "ro.build.date".
	BuildDate string `yaml:"build_date"`
}

// ClientSection identifies the privileged client and its background process.
type ClientSection struct {
	Package string `yaml:"package"`
	Process string `yaml:"process"`
}

// PackagesSection lists the package-name rules of the classifier.
type PackagesSection struct {
	// FirstPartyPrefix marks packages eligible for full spoofing.
	FirstPartyPrefix string `yaml:"first_party_prefix"`
	// Extra are spoofed even without the prefix.
	Extra []string `yaml:"extra"`
	// Keep are never spoofed even with the prefix.
	Keep []string `yaml:"keep"`
	// Diagnostics receives the build-date fingerprint.
	Diagnostics string `yaml:"diagnostics"`
}

// AttestationSection configures the certificate chain guard.
type AttestationSection struct {
	// CallerMarker is the substring identifying the attestation subsystem in
	// a call-context identifier.
	CallerMarker string `yaml:"caller_marker"`
}

// FileConfig represents an identity profile document.
//
// The format is versioned to support future evolution without breaking changes.
type FileConfig struct {
	// Version is the document format version (optional, currently always 1)
	Version int `yaml:"version,omitempty"`

	// Profile maps attribute names (BRAND, MODEL, ...) to reference values.
	Profile map[string]string `yaml:"profile"`

	// Exemptions maps package names to attribute names left untouched.
	Exemptions map[string][]string `yaml:"exemptions"`

	// ReferenceCodenames are devices that need no spoofing.
	ReferenceCodenames []string `yaml:"reference_codenames"`

	Properties       PropertiesSection  `yaml:"properties"`
	PrivilegedClient ClientSection      `yaml:"privileged_client"`
	Packages         PackagesSection    `yaml:"packages"`
	Attestation      AttestationSection `yaml:"attestation"`
}

// CurrentVersion is the newest document format this package understands.
const CurrentVersion = 1
