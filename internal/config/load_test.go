package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.NoError(t, Validate(cfg), "embedded profile must validate")
	assert.Equal(t, CurrentVersion, cfg.Version)
	assert.Equal(t, "Pixel 5", cfg.Profile["MODEL"])
	assert.Equal(t, "google/redfin/redfin:12/SQ3A.220605.009.A1/8643238:user/release-keys", cfg.Profile["FINGERPRINT"])
	assert.Len(t, cfg.Profile, 6)
	assert.Equal(t, []string{"MODEL"}, cfg.Exemptions["com.google.android.gms"])
	assert.Equal(t, []string{"FINGERPRINT"}, cfg.Exemptions["com.google.android.settings.intelligence"])
	assert.Contains(t, cfg.ReferenceCodenames, "redfin")
	assert.Len(t, cfg.ReferenceCodenames, 8)
	assert.Equal(t, "com.google.android.gms.unstable", cfg.PrivilegedClient.Process)
	assert.Equal(t, "com.google.", cfg.Packages.FirstPartyPrefix)
	assert.Equal(t, "DroidGuard", cfg.Attestation.CallerMarker)
	assert.Equal(t, "ro.statix.device", cfg.Properties.DeviceCodename)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, embeddedProfile, 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("version: 1\nprofiles:\n  BRAND: google\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("profile: [unterminated"))
	require.Error(t, err)
}
