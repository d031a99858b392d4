package classify_test

import (
	"testing"

	"github.com/sufield/pixelprops/internal/classify"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/profile"
)

// FuzzClassify checks structural properties that hold for every input:
// no panic, no duplicate keys, only valid keys, and exemptions honored.
func FuzzClassify(f *testing.F) {
	f.Add("com.google.android.gms", "com.google.android.gms.unstable", "lavender", "Redmi", "date")
	f.Add("com.google.android.gms", "com.google.android.gms.unstable", "redfin", "Pixel 5", "date")
	f.Add("com.google.android.settings.intelligence", "com.google.android.settings.intelligence", "", "", "")
	f.Add("", "", "", "", "")
	f.Add("com.android.vending", "com.android.vending:background", "x", "y", "z")

	store := profile.Default()
	engine := classify.NewEngine(store)

	f.Fuzz(func(t *testing.T, pkg, proc, codename, model, date string) {
		d := engine.Classify(domain.NewProcess(pkg, proc), domain.DeviceFacts{
			Codename: codename, Model: model, BuildDate: date,
		})

		seen := make(map[domain.AttributeKey]bool)
		for _, dir := range d.Directives {
			if !dir.Key.Valid() {
				t.Fatalf("invalid key %v", dir.Key)
			}
			if seen[dir.Key] {
				t.Fatalf("duplicate directive for %s", dir.Key)
			}
			seen[dir.Key] = true
		}

		if pkg == "" && !d.IsNone() {
			t.Fatalf("empty package produced %+v", d)
		}

		if d.Class.Kind == domain.ClassFullOverride && !store.IsDiagnosticsPackage(pkg) {
			for _, k := range store.Exemptions(pkg).Keys() {
				if k == domain.ModelName && d.MarkSpoofed {
					continue // client model directive, not a profile value
				}
				if seen[k] {
					t.Fatalf("exempted key %s overridden for %s", k, pkg)
				}
			}
		}
	})
}
