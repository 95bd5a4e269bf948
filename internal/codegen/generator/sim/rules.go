package sim

import (
	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/device"
)

// StructRule produces the simulation struct of a device type. Init, when
// set, is the struct initializer.
type StructRule struct {
	Type string
	Init string
}

func (rule *StructRule) Build(d device.Device) artifact.Artifact {
	name := artifact.ObjectName(artifact.KindStruct, d.Name())
	decl := artifact.SimpleDecl(name, rule.Type)
	if rule.Init != "" {
		decl = artifact.InitDecl(name, rule.Type, rule.Init)
	}
	return artifact.New(d.Name(), artifact.KindStruct, d.Class, rule.Type, d.Spec.Unit, decl, nil)
}

// Binding assigns one function block parameter.
type Binding struct {
	Param string
	// Ref is resolved against the run's structs. A zero Field binds the
	// device's own struct.
	Ref artifact.Ref
}

// FBRule produces the simulation function block of a device type.
type FBRule struct {
	Type     string
	Bindings []Binding
}

func (rule *FBRule) Build(d device.Device) artifact.Artifact {
	name := artifact.ObjectName(artifact.KindFunctionBlock, d.Name())
	spec := d.Spec
	return artifact.New(d.Name(), artifact.KindFunctionBlock, d.Class, rule.Type, spec.Unit,
		artifact.SimpleDecl(name, rule.Type),
		func(r artifact.Resolver) (string, error) {
			args := make([]string, 0, len(rule.Bindings))
			for _, b := range rule.Bindings {
				var (
					v   string
					err error
				)
				if b.Ref.Field == "" {
					v, err = artifact.Self(r, spec, artifact.KindStruct)
				} else {
					v, err = artifact.Resolve(r, spec, b.Ref)
				}
				if err != nil {
					return "", err
				}
				args = append(args, b.Param+" := "+v)
			}
			return artifact.Call(name, args...), nil
		})
}

func volumeRef(f device.Field) artifact.Ref {
	return artifact.Ref{Field: f, Kind: artifact.KindStruct, Class: device.ClassVolume}
}

// locationRef is the primary volume; a located device always sits in one.
func locationRef() artifact.Ref {
	ref := volumeRef(device.FieldVolume)
	ref.Required = true
	return ref
}

func self(param string) Binding { return Binding{Param: param} }

// ValveFB connects a valve between its upstream (vol1) and downstream
// (vol2) volumes.
func ValveFB(typ string) *FBRule {
	return &FBRule{Type: typ, Bindings: []Binding{
		{Param: "stAVol", Ref: volumeRef(device.FieldVol1)},
		{Param: "stBvol", Ref: volumeRef(device.FieldVol2)},
		self("stValve"),
	}}
}

// LocatedFB places a gauge or pump in its primary volume; param names the
// parameter that takes the device's own struct.
func LocatedFB(typ, param string) *FBRule {
	return &FBRule{Type: typ, Bindings: []Binding{
		{Param: "stVolume", Ref: locationRef()},
		self(param),
	}}
}

// TurboFB pumps from an inlet volume (vol1) into an outlet volume (vol2).
func TurboFB(typ string) *FBRule {
	return &FBRule{Type: typ, Bindings: []Binding{
		{Param: "stInletVolume", Ref: volumeRef(device.FieldVol1)},
		{Param: "stOutletVolume", Ref: volumeRef(device.FieldVol2)},
		self("stPump"),
	}}
}

// RoughingFB pumps from a single inlet volume (vol1) to atmosphere.
func RoughingFB(typ string) *FBRule {
	return &FBRule{Type: typ, Bindings: []Binding{
		{Param: "stInletVolume", Ref: volumeRef(device.FieldVol1)},
		self("stPump"),
	}}
}
