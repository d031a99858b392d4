// Package profile is the identity profile store: the immutable, compiled-in
// rule data consulted by the classifier.
package profile

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sufield/pixelprops/internal/config"
	"github.com/sufield/pixelprops/internal/domain"
)

// PrivilegedClient identifies the client process that receives the minimal,
// attestation-guarded override.
type PrivilegedClient struct {
	Package string
	Process string
}

// PropertyKeys are the host system-property keys holding the real device facts.
type PropertyKeys struct {
	DeviceCodename string
	ProductModel   string
	BuildDate      string
}

// Store holds the identity profile and package rules. It is never mutated
// after construction and is safe for concurrent readers.
type Store struct {
	profile            *domain.IdentityProfile
	exemptions         *domain.ExemptionTable
	extraPackages      map[string]struct{}
	keptPackages       map[string]struct{}
	referenceCodenames map[string]struct{}
	firstPartyPrefix   string
	diagnostics        string
	client             PrivilegedClient
	callerMarker       string
	properties         PropertyKeys
}

// New builds a store from a profile document after validating it.
func New(cfg config.FileConfig) (*Store, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProfileInvalid, err)
	}

	values := make(map[domain.AttributeKey]string, len(cfg.Profile))
	for name, v := range cfg.Profile {
		k, err := domain.ParseAttributeKey(name)
		if err != nil {
			return nil, err
		}
		values[k] = v
	}
	p, err := domain.NewIdentityProfile(values)
	if err != nil {
		return nil, err
	}

	exemptions := make(map[string][]domain.AttributeKey, len(cfg.Exemptions))
	for pkg, names := range cfg.Exemptions {
		for _, name := range names {
			k, err := domain.ParseAttributeKey(name)
			if err != nil {
				return nil, err
			}
			exemptions[pkg] = append(exemptions[pkg], k)
		}
	}

	return &Store{
		profile:            p,
		exemptions:         domain.NewExemptionTable(exemptions),
		extraPackages:      toSet(cfg.Packages.Extra),
		keptPackages:       toSet(cfg.Packages.Keep),
		referenceCodenames: toSet(cfg.ReferenceCodenames),
		firstPartyPrefix:   cfg.Packages.FirstPartyPrefix,
		diagnostics:        cfg.Packages.Diagnostics,
		client: PrivilegedClient{
			Package: cfg.PrivilegedClient.Package,
			Process: cfg.PrivilegedClient.Process,
		},
		callerMarker: cfg.Attestation.CallerMarker,
		properties: PropertyKeys{
			DeviceCodename: cfg.Properties.DeviceCodename,
			ProductModel:   cfg.Properties.ProductModel,
			BuildDate:      cfg.Properties.BuildDate,
		},
	}, nil
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the store built from the compiled-in document.
// It panics if the embedded document is invalid.
func Default() *Store {
	defaultOnce.Do(func() {
		s, err := New(config.Default())
		if err != nil {
			panic(fmt.Sprintf("compiled-in identity profile: %v", err))
		}
		defaultStore = s
	})
	return defaultStore
}

func toSet(items []string) map[string]struct{} {
	m := make(map[string]struct{}, len(items))
	for _, it := range items {
		m[it] = struct{}{}
	}
	return m
}

// Profile returns the reference identity profile.
func (s *Store) Profile() *domain.IdentityProfile { return s.profile }

// Exemptions returns the keys never overridden for pkg.
func (s *Store) Exemptions(pkg string) domain.KeySet { return s.exemptions.For(pkg) }

// IsExtraPackage reports whether pkg is spoofed regardless of its prefix.
func (s *Store) IsExtraPackage(pkg string) bool {
	_, ok := s.extraPackages[pkg]
	return ok
}

// IsKeptPackage reports whether pkg is exempt from spoofing entirely.
func (s *Store) IsKeptPackage(pkg string) bool {
	_, ok := s.keptPackages[pkg]
	return ok
}

// HasFirstPartyPrefix reports whether pkg carries the first-party prefix.
func (s *Store) HasFirstPartyPrefix(pkg string) bool {
	return strings.HasPrefix(pkg, s.firstPartyPrefix)
}

// IsReferenceCodename reports whether codename is already a reference device.
func (s *Store) IsReferenceCodename(codename string) bool {
	_, ok := s.referenceCodenames[codename]
	return ok
}

// IsDiagnosticsPackage reports whether pkg is the indexing/diagnostics package.
func (s *Store) IsDiagnosticsPackage(pkg string) bool { return pkg == s.diagnostics }

// PrivilegedClient returns the privileged client package and process.
func (s *Store) PrivilegedClient() PrivilegedClient { return s.client }

// CallerMarker returns the substring identifying the attestation subsystem.
func (s *Store) CallerMarker() string { return s.callerMarker }

// PropertyKeys returns the host property keys for the real device facts.
func (s *Store) PropertyKeys() PropertyKeys { return s.properties }
