package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var embeddedProfile []byte

// Load reads and parses an identity profile document.
func Load(path string) (FileConfig, error) {
	// Clean the path to prevent directory traversal attacks
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - path comes from the maintainer running the tool
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a document. Unknown fields are rejected so that a typo in a
// section name does not silently drop a rule.
func Parse(data []byte) (FileConfig, error) {
	var cfg FileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Default returns the compiled-in document.
//
// It panics if the embedded document does not parse: that is a build defect,
// caught by the package tests.
func Default() FileConfig {
	cfg, err := Parse(embeddedProfile)
	if err != nil {
		panic(fmt.Sprintf("embedded profile: %v", err))
	}
	return cfg
}
