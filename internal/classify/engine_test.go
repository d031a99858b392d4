package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/pixelprops/internal/classify"
	"github.com/sufield/pixelprops/internal/config"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/profile"
)

const (
	gms         = "com.google.android.gms"
	gmsUnstable = "com.google.android.gms.unstable"
	intel       = "com.google.android.settings.intelligence"
	fingerprint = "google/redfin/redfin:12/SQ3A.220605.009.A1/8643238:user/release-keys"
)

var (
	nonReference = domain.DeviceFacts{Codename: "lavender", Model: "Redmi Note 7", BuildDate: "Mon Jun  6 12:00:00 UTC 2022"}
	reference    = domain.DeviceFacts{Codename: "coral", Model: "Pixel 4 XL", BuildDate: "Tue Jul  5 09:00:00 UTC 2022"}
)

func newEngine(t *testing.T) *classify.Engine {
	t.Helper()
	return classify.NewEngine(profile.Default())
}

func fullProfile() []domain.Directive {
	return []domain.Directive{
		{Key: domain.Brand, Value: "google"},
		{Key: domain.Manufacturer, Value: "Google"},
		{Key: domain.DeviceCodename, Value: "redfin"},
		{Key: domain.ProductCodename, Value: "redfin"},
		{Key: domain.ModelName, Value: "Pixel 5"},
		{Key: domain.BuildFingerprint, Value: fingerprint},
	}
}

func TestClassify_NoMatch(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	tests := []struct {
		name  string
		proc  domain.Process
		facts domain.DeviceFacts
	}{
		{"empty package", domain.NewProcess("", "x"), nonReference},
		{"empty package on reference device", domain.NewProcess("", gmsUnstable), reference},
		{"third party app", domain.NewProcess("org.mozilla.firefox", "org.mozilla.firefox"), nonReference},
		{"kept camera", domain.NewProcess("com.google.android.GoogleCamera", "com.google.android.GoogleCamera"), nonReference},
		{"kept camera go", domain.NewProcess("com.google.android.GoogleCamera.Go", "com.google.android.GoogleCamera.Go"), nonReference},
		{"prefix without dot", domain.NewProcess("com.googleplex.app", "com.googleplex.app"), nonReference},
		{"first party app on reference device", domain.NewProcess("com.google.android.apps.maps", "com.google.android.apps.maps"), reference},
		{"client main process on reference device", domain.NewProcess(gms, gms), reference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := engine.Classify(tt.proc, tt.facts)
			assert.True(t, d.IsNone())
			assert.Equal(t, domain.ClassNone, d.Class.Kind)
			assert.Empty(t, d.Directives)
			assert.False(t, d.MarkSpoofed)
		})
	}
}

func TestClassify_FirstPartyPackageGetsWholeProfile(t *testing.T) {
	t.Parallel()

	d := newEngine(t).Classify(domain.NewProcess("com.google.android.apps.maps", "com.google.android.apps.maps"), nonReference)

	assert.Equal(t, domain.ClassFullOverride, d.Class.Kind)
	assert.Equal(t, 0, d.Class.ExemptedKeys.Len())
	assert.Equal(t, fullProfile(), d.Directives)
	assert.False(t, d.MarkSpoofed)
}

func TestClassify_ExtraPackages(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	for _, pkg := range []string{"com.android.vending", "com.breel.wallpapers20"} {
		d := engine.Classify(domain.NewProcess(pkg, pkg), nonReference)
		assert.Equal(t, domain.ClassFullOverride, d.Class.Kind, pkg)
		assert.Equal(t, fullProfile(), d.Directives, pkg)
	}
}

func TestClassify_ExemptedKeysLeftUntouched(t *testing.T) {
	t.Parallel()

	d := newEngine(t).Classify(domain.NewProcess(gms, gms), nonReference)

	assert.Equal(t, domain.ClassFullOverride, d.Class.Kind)
	assert.True(t, d.Class.ExemptedKeys.Contains(domain.ModelName))
	for _, dir := range d.Directives {
		assert.NotEqual(t, domain.ModelName, dir.Key, "MODEL is exempt for %s", gms)
	}
	assert.Len(t, d.Directives, 5)
	assert.False(t, d.MarkSpoofed, "only the unstable process marks the spoofed state")
}

func TestClassify_PrivilegedClientOnNonReferenceDevice(t *testing.T) {
	t.Parallel()

	d := newEngine(t).Classify(domain.NewProcess(gms, gmsUnstable), nonReference)

	assert.True(t, d.MarkSpoofed)
	assert.Equal(t, domain.ClassFullOverride, d.Class.Kind)
	require.NotEmpty(t, d.Directives)
	assert.Equal(t, domain.Directive{Key: domain.ModelName, Value: "Pixel 5 "}, d.Directives[0],
		"client model carries one trailing space and is queued first")
	assert.Equal(t, []domain.Directive{
		{Key: domain.ModelName, Value: "Pixel 5 "},
		{Key: domain.Brand, Value: "google"},
		{Key: domain.Manufacturer, Value: "Google"},
		{Key: domain.DeviceCodename, Value: "redfin"},
		{Key: domain.ProductCodename, Value: "redfin"},
		{Key: domain.BuildFingerprint, Value: fingerprint},
	}, d.Directives)
}

func TestClassify_PrivilegedClientModelWinsOverProfileModel(t *testing.T) {
	t.Parallel()

	// Without the MODEL exemption rules 3 and 4 both target MODEL.
	cfg := config.Default()
	delete(cfg.Exemptions, gms)
	store, err := profile.New(cfg)
	require.NoError(t, err)

	d := classify.NewEngine(store).Classify(domain.NewProcess(gms, gmsUnstable), nonReference)

	var models []string
	for _, dir := range d.Directives {
		if dir.Key == domain.ModelName {
			models = append(models, dir.Value)
		}
	}
	assert.Equal(t, []string{"Pixel 5 "}, models)
}

func TestClassify_PrivilegedClientOnReferenceDevice(t *testing.T) {
	t.Parallel()

	d := newEngine(t).Classify(domain.NewProcess(gms, gmsUnstable), reference)

	assert.True(t, d.MarkSpoofed)
	assert.Equal(t, domain.ClassReferenceDeviceClient, d.Class.Kind)
	assert.Equal(t, "coral", d.Class.RealCodename)
	assert.Equal(t, []domain.Directive{
		{Key: domain.ModelName, Value: "Pixel 4 XL "},
		{Key: domain.ProductCodename, Value: "coral"},
	}, d.Directives)
}

func TestClassify_DiagnosticsPackageUsesBuildDate(t *testing.T) {
	t.Parallel()

	d := newEngine(t).Classify(domain.NewProcess(intel, intel), nonReference)

	fp := make([]string, 0, 1)
	for _, dir := range d.Directives {
		if dir.Key == domain.BuildFingerprint {
			fp = append(fp, dir.Value)
		}
	}
	assert.Equal(t, []string{nonReference.BuildDate}, fp, "exactly one fingerprint, the real build date")
	assert.Equal(t, domain.ClassFullOverride, d.Class.Kind)
	assert.False(t, d.MarkSpoofed)
}

func TestClassify_DiagnosticsOverwritesQueuedFingerprint(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	delete(cfg.Exemptions, intel)
	store, err := profile.New(cfg)
	require.NoError(t, err)

	d := classify.NewEngine(store).Classify(domain.NewProcess(intel, intel), nonReference)

	require.Len(t, d.Directives, 6)
	assert.Equal(t, domain.Directive{Key: domain.BuildFingerprint, Value: nonReference.BuildDate}, d.Directives[5])
}

func TestClassify_DiagnosticsAloneIsFingerprintOnly(t *testing.T) {
	t.Parallel()

	// Diagnostics package outside the first-party prefix.
	cfg := config.Default()
	cfg.Packages.Diagnostics = "org.example.indexer"
	store, err := profile.New(cfg)
	require.NoError(t, err)

	d := classify.NewEngine(store).Classify(domain.NewProcess("org.example.indexer", "org.example.indexer"), nonReference)

	assert.Equal(t, domain.ClassFingerprintOnly, d.Class.Kind)
	assert.Equal(t, nonReference.BuildDate, d.Class.Value)
	assert.Equal(t, []domain.Directive{{Key: domain.BuildFingerprint, Value: nonReference.BuildDate}}, d.Directives)
}

func TestClassify_Invariant_Idempotent(t *testing.T) {
	t.Parallel()

	engine := newEngine(t)
	procs := []domain.Process{
		domain.NewProcess(gms, gmsUnstable),
		domain.NewProcess(intel, intel),
		domain.NewProcess("com.google.android.apps.maps", "com.google.android.apps.maps"),
		domain.NewProcess("org.mozilla.firefox", "org.mozilla.firefox"),
	}

	for _, proc := range procs {
		for _, facts := range []domain.DeviceFacts{nonReference, reference} {
			first := engine.Classify(proc, facts)
			second := engine.Classify(proc, facts)
			assert.Equal(t, first, second, "%s on %s", proc, facts.Codename)
		}
	}
}
