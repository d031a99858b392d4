package domain

import "fmt"

// ClassKind tags the variant held by a PackageClass.
type ClassKind int

const (
	ClassNone ClassKind = iota
	ClassReferenceDeviceClient
	ClassFullOverride
	ClassFingerprintOnly
)

func (k ClassKind) String() string {
	switch k {
	case ClassNone:
		return "None"
	case ClassReferenceDeviceClient:
		return "ReferenceDeviceClient"
	case ClassFullOverride:
		return "FullOverride"
	case ClassFingerprintOnly:
		return "FingerprintOnlyOverride"
	default:
		return fmt.Sprintf("ClassKind(%d)", int(k))
	}
}

// PackageClass summarizes the dominant rule of one classification.
//
// Only the fields of the active variant are populated:
//   - ClassReferenceDeviceClient: RealCodename
//   - ClassFullOverride: Profile, ExemptedKeys
//   - ClassFingerprintOnly: Value
type PackageClass struct {
	Kind         ClassKind
	RealCodename string
	Profile      *IdentityProfile
	ExemptedKeys KeySet
	Value        string
}

// NoneClass is the outcome for processes that are not spoofed.
func NoneClass() PackageClass {
	return PackageClass{Kind: ClassNone}
}

// ReferenceDeviceClientClass is the minimal override for the privileged client
// on a device that already is a reference device.
func ReferenceDeviceClientClass(realCodename string) PackageClass {
	return PackageClass{Kind: ClassReferenceDeviceClient, RealCodename: realCodename}
}

// FullOverrideClass applies every profile key except exempted ones.
func FullOverrideClass(profile *IdentityProfile, exempted KeySet) PackageClass {
	return PackageClass{Kind: ClassFullOverride, Profile: profile, ExemptedKeys: exempted}
}

// FingerprintOnlyClass overrides only the build fingerprint.
func FingerprintOnlyClass(value string) PackageClass {
	return PackageClass{Kind: ClassFingerprintOnly, Value: value}
}

// IsNone reports whether no spoofing applies.
func (c PackageClass) IsNone() bool {
	return c.Kind == ClassNone
}

// String returns a representation suitable for logging.
func (c PackageClass) String() string {
	switch c.Kind {
	case ClassReferenceDeviceClient:
		return fmt.Sprintf("%s{realCodename=%q}", c.Kind, c.RealCodename)
	case ClassFullOverride:
		return fmt.Sprintf("%s{exempted=%v}", c.Kind, c.ExemptedKeys.Keys())
	case ClassFingerprintOnly:
		return fmt.Sprintf("%s{value=%q}", c.Kind, c.Value)
	default:
		return c.Kind.String()
	}
}
