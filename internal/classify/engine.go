// Package classify decides, per application process, which identity
// attributes are overridden and whether the process enters the spoofed state.
package classify

import (
	"github.com/sufield/pixelprops/internal/assert"
	"github.com/sufield/pixelprops/internal/domain"
	"github.com/sufield/pixelprops/internal/profile"
)

// clientModelSuffix is appended to the model reported to the privileged
// client process so it differs from the literal profile value.
const clientModelSuffix = " "

// Rules is the read-only view of the identity profile store the engine needs.
// *profile.Store satisfies it.
type Rules interface {
	Profile() *domain.IdentityProfile
	Exemptions(pkg string) domain.KeySet
	IsExtraPackage(pkg string) bool
	IsKeptPackage(pkg string) bool
	HasFirstPartyPrefix(pkg string) bool
	IsReferenceCodename(codename string) bool
	IsDiagnosticsPackage(pkg string) bool
	PrivilegedClient() profile.PrivilegedClient
}

var _ Rules = (*profile.Store)(nil)

// Decision is the outcome of classifying one process.
type Decision struct {
	// Class is the dominant rule, for logging and introspection.
	Class domain.PackageClass
	// Directives are the overrides to apply, in order.
	Directives []domain.Directive
	// MarkSpoofed is set when the privileged client process is overridden.
	MarkSpoofed bool
}

// IsNone reports whether the decision changes nothing.
func (d Decision) IsNone() bool {
	return len(d.Directives) == 0 && !d.MarkSpoofed
}

// Engine evaluates the fixed decision table. It holds no mutable state, so
// classification is idempotent and safe to call from any goroutine.
type Engine struct {
	rules Rules
}

// NewEngine creates an engine over rules.
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Classify evaluates the rules for proc on a device described by facts.
//
// Rules, in order:
//  1. empty package name: nothing.
//  2. reference device: only the privileged client process is touched, with
//     its own model and codename; everything else is left alone.
//  3. privileged client process: spoofed state plus the suffixed profile model.
//  4. first-party (not kept) or extra package: the whole profile minus the
//     package's exemptions. Keys queued by rule 3 keep their value.
//  5. diagnostics package: fingerprint set to the real build date, replacing
//     any fingerprint queued earlier.
func (e *Engine) Classify(proc domain.Process, facts domain.DeviceFacts) Decision {
	pkg := proc.PackageName()
	if pkg == "" {
		return Decision{Class: domain.NoneClass()}
	}

	client := e.rules.PrivilegedClient()
	isClient := proc.Is(client.Package, client.Process)

	if e.rules.IsReferenceCodename(facts.Codename) {
		if !isClient {
			return Decision{Class: domain.NoneClass()}
		}
		return Decision{
			Class: domain.ReferenceDeviceClientClass(facts.Codename),
			Directives: []domain.Directive{
				{Key: domain.ModelName, Value: facts.Model + clientModelSuffix},
				{Key: domain.ProductCodename, Value: facts.Codename},
			},
			MarkSpoofed: true,
		}
	}

	set := domain.NewDirectiveSet()
	d := Decision{Class: domain.NoneClass()}
	profileValues := e.rules.Profile()

	if isClient {
		d.MarkSpoofed = true
		if model, ok := profileValues.Value(domain.ModelName); ok {
			set.Add(domain.ModelName, model+clientModelSuffix)
		}
	}

	if e.matchesFullOverride(pkg) {
		exempted := e.rules.Exemptions(pkg)
		d.Class = domain.FullOverrideClass(profileValues, exempted)
		for _, dir := range profileValues.Directives() {
			if exempted.Contains(dir.Key) {
				continue
			}
			set.Add(dir.Key, dir.Value)
		}
		want := profileValues.Len() - exempted.Len()
		assert.Invariant(set.Len() >= want, "full override queued %d of %d attributes", set.Len(), want)
	}

	if e.rules.IsDiagnosticsPackage(pkg) {
		set.Overwrite(domain.BuildFingerprint, facts.BuildDate)
		if d.Class.IsNone() {
			d.Class = domain.FingerprintOnlyClass(facts.BuildDate)
		}
	}

	assert.Invariant(set.Len() <= len(domain.AllAttributeKeys()), "directive set grew past %d keys", set.Len())
	d.Directives = set.Directives()
	assert.UniqueKeys(d.Directives)
	return d
}

func (e *Engine) matchesFullOverride(pkg string) bool {
	if e.rules.HasFirstPartyPrefix(pkg) && !e.rules.IsKeptPackage(pkg) {
		return true
	}
	return e.rules.IsExtraPackage(pkg)
}
