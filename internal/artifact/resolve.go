package artifact

import (
	"fmt"
	"strings"

	"github.com/vacgen/vacgen/internal/device"
)

// UnresolvedError reports a dependency that could not be substituted.
type UnresolvedError struct {
	Device     string
	Field      device.Field
	Dependency string
	// Want is set when the dependency exists but has the wrong class.
	Want device.Class
	Got  device.Class
}

func (e *UnresolvedError) Error() string {
	if e.Dependency == "" {
		return fmt.Sprintf("device %s: dependency field %s is empty", e.Device, e.Field)
	}
	if device.IsSentinel(e.Dependency) {
		return fmt.Sprintf("device %s: dependency field %s is required, got %s", e.Device, e.Field, e.Dependency)
	}
	if e.Want != device.ClassUnknown {
		return fmt.Sprintf("device %s: dependency %s in field %s is a %s, want %s",
			e.Device, e.Dependency, e.Field, e.Got, e.Want)
	}
	return fmt.Sprintf("device %s: unresolved dependency %s in field %s", e.Device, e.Dependency, e.Field)
}

// Ref describes one substitution slot of a code template.
type Ref struct {
	Field device.Field
	Kind  Kind
	// Class restricts the dependency's device class; ClassUnknown accepts any.
	Class device.Class
	// Member, when set, is appended as "object.member".
	Member string
	// Required rejects the sentinel.
	Required bool
}

// Resolve substitutes the dependency named by ref.Field of spec. The
// sentinel yields an empty string unless ref is required; an empty or
// unknown name is an error.
func Resolve(r Resolver, spec device.Spec, ref Ref) (string, error) {
	dep := strings.TrimSpace(spec.Dep(ref.Field))
	if device.IsSentinel(dep) {
		if ref.Required {
			return "", &UnresolvedError{Device: spec.Name, Field: ref.Field, Dependency: dep}
		}
		return "", nil
	}
	if dep == "" {
		return "", &UnresolvedError{Device: spec.Name, Field: ref.Field}
	}
	a, ok := r.Lookup(dep, ref.Kind)
	if !ok {
		return "", &UnresolvedError{Device: spec.Name, Field: ref.Field, Dependency: dep}
	}
	if ref.Class != device.ClassUnknown && a.Class != ref.Class {
		return "", &UnresolvedError{Device: spec.Name, Field: ref.Field, Dependency: dep, Want: ref.Class, Got: a.Class}
	}
	if ref.Member != "" {
		return a.Name + "." + ref.Member, nil
	}
	return a.Name, nil
}

// Self resolves the artifact of kind owned by spec's own device.
func Self(r Resolver, spec device.Spec, kind Kind) (string, error) {
	a, ok := r.Lookup(spec.Name, kind)
	if !ok {
		return "", &UnresolvedError{Device: spec.Name, Field: "self", Dependency: spec.Name}
	}
	return a.Name, nil
}
