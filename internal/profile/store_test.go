package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/pixelprops/internal/config"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/profile"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	s := profile.Default()
	require.NotNil(t, s)
	assert.Same(t, s, profile.Default(), "default store is built once")

	model, ok := s.Profile().Value(domain.ModelName)
	require.True(t, ok)
	assert.Equal(t, "Pixel 5", model)
	assert.Equal(t, 6, s.Profile().Len())

	assert.Equal(t, profile.PrivilegedClient{
		Package: "com.google.android.gms",
		Process: "com.google.android.gms.unstable",
	}, s.PrivilegedClient())
	assert.Equal(t, "DroidGuard", s.CallerMarker())
	assert.Equal(t, "ro.statix.device", s.PropertyKeys().DeviceCodename)
}

func TestStore_PackageRules(t *testing.T) {
	t.Parallel()

	s := profile.Default()

	tests := []struct {
		name  string
		check func(string) bool
		pkg   string
		want  bool
	}{
		{"prefix match", s.HasFirstPartyPrefix, "com.google.android.apps.maps", true},
		{"prefix requires dot", s.HasFirstPartyPrefix, "com.googlex.app", false},
		{"extra package", s.IsExtraPackage, "com.android.vending", true},
		{"not extra", s.IsExtraPackage, "com.android.settings", false},
		{"kept camera", s.IsKeptPackage, "com.google.android.GoogleCamera", true},
		{"kept camera go", s.IsKeptPackage, "com.google.android.GoogleCamera.Go", true},
		{"not kept", s.IsKeptPackage, "com.google.android.apps.photos", false},
		{"reference codename", s.IsReferenceCodename, "oriole", true},
		{"non reference codename", s.IsReferenceCodename, "lavender", false},
		{"empty codename", s.IsReferenceCodename, "", false},
		{"diagnostics", s.IsDiagnosticsPackage, "com.google.android.settings.intelligence", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.check(tt.pkg))
		})
	}
}

func TestStore_Exemptions(t *testing.T) {
	t.Parallel()

	s := profile.Default()
	assert.Equal(t, []domain.AttributeKey{domain.ModelName}, s.Exemptions("com.google.android.gms").Keys())
	assert.Equal(t, []domain.AttributeKey{domain.BuildFingerprint},
		s.Exemptions("com.google.android.settings.intelligence").Keys())
	assert.Equal(t, 0, s.Exemptions("com.google.android.apps.maps").Len())
}

func TestNew_RejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Profile["IMEI"] = "123"

	s, err := profile.New(cfg)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, domain.ErrProfileInvalid)
}
