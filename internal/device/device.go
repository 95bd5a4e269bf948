// Package device holds the per-row device model: the immutable Spec read
// from input, the tagged Device built from it, and the Catalog that keeps
// every device of a run in input order.
package device

import "strings"

// Sentinel marks a dependency field that intentionally names nothing.
// It is substituted as an empty value instead of being resolved.
const Sentinel = "NONE"

// Field names a dependency-bearing column of a Spec.
type Field string

const (
	FieldGauge1 Field = "gauge1"
	FieldGauge2 Field = "gauge2"
	FieldPump1  Field = "pump1"
	FieldValve1 Field = "valve1"
	FieldVolume Field = "volume"
	FieldVol1   Field = "vol1"
	FieldVol2   Field = "vol2"
)

// Spec is one input row. It is built once and never mutated.
type Spec struct {
	Name   string
	Tag    string
	Gauge1 string
	Gauge2 string
	Pump1  string
	Valve1 string
	Volume string
	Vol1   string
	Vol2   string
	// Unit is the program unit the device's output lands in.
	Unit string
}

// Dep returns the raw value of a dependency field.
func (s Spec) Dep(f Field) string {
	switch f {
	case FieldGauge1:
		return s.Gauge1
	case FieldGauge2:
		return s.Gauge2
	case FieldPump1:
		return s.Pump1
	case FieldValve1:
		return s.Valve1
	case FieldVolume:
		return s.Volume
	case FieldVol1:
		return s.Vol1
	case FieldVol2:
		return s.Vol2
	default:
		return ""
	}
}

// VolumeRefs returns the volume names this device references as location,
// inlet or outlet, skipping empty and sentinel fields. Order is volume,
// vol1, vol2 with repeats removed.
func (s Spec) VolumeRefs() []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range []string{s.Volume, s.Vol1, s.Vol2} {
		if v == "" || IsSentinel(v) || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// IsSentinel reports whether v is the "no dependency" marker.
func IsSentinel(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), Sentinel)
}

// Class is the coarse kind of a device.
type Class int

const (
	ClassUnknown Class = iota
	ClassValve
	ClassGauge
	ClassPump
	ClassVolume
)

func (c Class) String() string {
	switch c {
	case ClassValve:
		return "valve"
	case ClassGauge:
		return "gauge"
	case ClassPump:
		return "pump"
	case ClassVolume:
		return "volume"
	default:
		return "unknown"
	}
}

// Family subdivides a Class by the generation rules it follows.
type Family string

const (
	FamilyIsolationGauged Family = "isolation-gauged"
	FamilyIsolation       Family = "isolation"
	FamilyNeedle          Family = "needle"
	FamilyColdCathode     Family = "cold-cathode"
	FamilyPirani          Family = "pirani"
	FamilyIonPump         Family = "ion"
	FamilyTurboPump       Family = "turbo"
	FamilyRoughingPump    Family = "roughing"
)

// Device is a tagged instance wrapping a Spec.
type Device struct {
	Spec   Spec
	Class  Class
	Family Family
}

func (d Device) Name() string { return d.Spec.Name }
