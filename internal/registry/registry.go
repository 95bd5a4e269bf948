// Package registry maps device type tags to the rules that generate their
// control and simulation artifacts.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/codegen/generator/plc"
	"github.com/vacgen/vacgen/internal/codegen/generator/sim"
	"github.com/vacgen/vacgen/internal/device"
)

var (
	ErrDuplicateTag   = errors.New("device type already registered")
	ErrUnsupportedTag = errors.New("unsupported device type")
	// ErrNotSupported marks a rule a device type does not provide yet.
	// Callers skip the artifact instead of failing the run.
	ErrNotSupported = errors.New("not yet supported")
)

// Descriptor describes a device type. A nil rule means the type does not
// produce that artifact yet.
type Descriptor struct {
	Class     device.Class
	Family    device.Family
	PLC       *plc.Rule
	SimFB     *sim.FBRule
	SimStruct *sim.StructRule
}

// ControlFB builds the control-side function block of d.
func (desc *Descriptor) ControlFB(d device.Device) (artifact.Artifact, error) {
	if desc.PLC == nil {
		return artifact.Artifact{}, fmt.Errorf("control function block for %s: %w", d.Spec.Tag, ErrNotSupported)
	}
	return desc.PLC.Build(d), nil
}

// SimulationFB builds the simulation function block of d.
func (desc *Descriptor) SimulationFB(d device.Device) (artifact.Artifact, error) {
	if desc.SimFB == nil {
		return artifact.Artifact{}, fmt.Errorf("simulation function block for %s: %w", d.Spec.Tag, ErrNotSupported)
	}
	return desc.SimFB.Build(d), nil
}

// SimulationStruct builds the simulation struct of d.
func (desc *Descriptor) SimulationStruct(d device.Device) (artifact.Artifact, error) {
	if desc.SimStruct == nil {
		return artifact.Artifact{}, fmt.Errorf("simulation struct for %s: %w", d.Spec.Tag, ErrNotSupported)
	}
	return desc.SimStruct.Build(d), nil
}

// Registry is the tag -> descriptor table. Tags are case-insensitive and
// stored upper-cased.
type Registry struct {
	types map[string]*Descriptor
}

func New() *Registry {
	return &Registry{types: make(map[string]*Descriptor)}
}

// Register adds a device type.
func (r *Registry) Register(tag string, desc Descriptor) error {
	key := normalize(tag)
	if key == "" {
		return errors.New("empty device type tag")
	}
	if _, exists := r.types[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTag, key)
	}
	r.types[key] = &desc
	return nil
}

func (r *Registry) IsSupported(tag string) bool {
	_, ok := r.types[normalize(tag)]
	return ok
}

// Descriptor retrieves the descriptor of a tag.
func (r *Registry) Descriptor(tag string) (*Descriptor, bool) {
	desc, ok := r.types[normalize(tag)]
	return desc, ok
}

// CreateDevice instantiates the device variant selected by spec.Tag.
func (r *Registry) CreateDevice(spec device.Spec) (device.Device, error) {
	desc, ok := r.Descriptor(spec.Tag)
	if !ok {
		return device.Device{}, fmt.Errorf("device %s: %w: %q", spec.Name, ErrUnsupportedTag, spec.Tag)
	}
	return device.Device{Spec: spec, Class: desc.Class, Family: desc.Family}, nil
}

// Tags returns the registered tags sorted.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.types))
	for tag := range r.types {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func normalize(tag string) string {
	return strings.ToUpper(strings.TrimSpace(tag))
}
