// Package artifact stores generated declaration/code units per device and
// resolves the dependency references used while rendering code.
package artifact

import (
	"strings"

	"github.com/vacgen/vacgen/internal/device"
)

// Kind is the artifact category.
type Kind int

const (
	KindFunctionBlock Kind = iota
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindFunctionBlock:
		return "function block"
	case KindStruct:
		return "struct"
	default:
		return "unknown"
	}
}

const (
	prefixFB     = "fb_"
	prefixStruct = "st_"
)

// ObjectName derives the generated identifier for a device name.
func ObjectName(kind Kind, deviceName string) string {
	base := strings.ReplaceAll(deviceName, "-", "_")
	if kind == KindStruct {
		return prefixStruct + base
	}
	return prefixFB + base
}

// CodeFunc renders the invocation fragment of an artifact. It runs only
// after the owning Container is sealed, so every device of the run is
// visible through r.
type CodeFunc func(r Resolver) (string, error)

// Artifact is one generated unit tied to a device (or shared volume).
type Artifact struct {
	Device string
	Kind   Kind
	Class  device.Class
	Name   string
	Type   string
	Unit   string
	Decl   string
	Pragma string

	code CodeFunc
}

// New builds an artifact. code may be nil for declaration-only artifacts.
func New(owner string, kind Kind, class device.Class, typ, unit, decl string, code CodeFunc) Artifact {
	return Artifact{
		Device: owner,
		Kind:   kind,
		Class:  class,
		Name:   ObjectName(kind, owner),
		Type:   typ,
		Unit:   unit,
		Decl:   decl,
		code:   code,
	}
}

// HasCode reports whether the artifact produces invocation code.
func (a *Artifact) HasCode() bool { return a.code != nil }

// Declarations returns the declaration lines, pragma first when present.
func (a *Artifact) Declarations() []string {
	if a.Pragma == "" {
		return []string{a.Decl}
	}
	return []string{a.Pragma, a.Decl}
}

const (
	openParen  = "("
	closeParen = ")"
	terminator = ";"
)

// SimpleDecl renders "name : TYPE;".
func SimpleDecl(name, typ string) string {
	return name + " : " + typ + terminator
}

// InitDecl renders "name : TYPE := (init);".
func InitDecl(name, typ, init string) string {
	return name + " : " + typ + " := " + openParen + init + closeParen + terminator
}

// Call renders "name(args);".
func Call(name string, args ...string) string {
	return name + openParen + strings.Join(args, ", ") + closeParen + terminator
}

// Pragma renders the pytmc attribute that exposes an object as a PV.
func Pragma(name string) string {
	return "{attribute 'pytmc' := ' pv: " + name + " '}"
}
