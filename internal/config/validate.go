package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sufield/pixelprops/internal/domain"
)

// Validate checks an identity profile document.
//
// Ensures:
//   - Version is 0 (unset) or CurrentVersion
//   - Profile is non-empty and uses only known attribute names with non-empty values
//   - Exemption entries use only known attribute names
//   - Privileged client package/process and property keys are set
//   - First-party prefix, diagnostics package and caller marker are set
//
// All problems are reported together, joined with errors.Join.
func Validate(cfg FileConfig) error {
	var errs []error

	if cfg.Version != 0 && cfg.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported version %d (want %d)", cfg.Version, CurrentVersion))
	}

	if len(cfg.Profile) == 0 {
		errs = append(errs, errors.New("profile must define at least one attribute"))
	}
	for _, name := range sortedKeys(cfg.Profile) {
		if _, err := domain.ParseAttributeKey(name); err != nil {
			errs = append(errs, fmt.Errorf("profile: %w", err))
			continue
		}
		if strings.TrimSpace(cfg.Profile[name]) == "" {
			errs = append(errs, fmt.Errorf("profile.%s must not be empty", name))
		}
	}

	for _, pkg := range sortedKeys(cfg.Exemptions) {
		if pkg == "" {
			errs = append(errs, errors.New("exemptions: package name must not be empty"))
		}
		for _, name := range cfg.Exemptions[pkg] {
			if _, err := domain.ParseAttributeKey(name); err != nil {
				errs = append(errs, fmt.Errorf("exemptions.%s: %w", pkg, err))
			}
		}
	}

	for i, codename := range cfg.ReferenceCodenames {
		if strings.TrimSpace(codename) == "" {
			errs = append(errs, fmt.Errorf("reference_codenames[%d] must not be empty", i))
		}
	}

	required := []struct {
		field string
		value string
	}{
		{"properties.device_codename", cfg.Properties.DeviceCodename},
		{"properties.product_model", cfg.Properties.ProductModel},
		{"properties.build_date", cfg.Properties.BuildDate},
		{"privileged_client.package", cfg.PrivilegedClient.Package},
		{"privileged_client.process", cfg.PrivilegedClient.Process},
		{"packages.first_party_prefix", cfg.Packages.FirstPartyPrefix},
		{"packages.diagnostics", cfg.Packages.Diagnostics},
		{"attestation.caller_marker", cfg.Attestation.CallerMarker},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%s must be set", r.field))
		}
	}

	return errors.Join(errs...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
