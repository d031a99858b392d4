package main

import (
	"fmt"

	"github.com/sufield/pixelprops/internal/config"
	"github.com/sufield/pixelprops/internal/profile"
)

// loadConfig returns the document at path, or the compiled-in one.
func loadConfig(path string) (config.FileConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func loadStore(path string) (*profile.Store, error) {
	if path == "" {
		return profile.Default(), nil
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	return profile.New(cfg)
}
