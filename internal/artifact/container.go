package artifact

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateArtifact = errors.New("artifact already registered")
	ErrSealed            = errors.New("container is sealed")
	ErrNotSealed         = errors.New("container is not sealed")
	ErrNoCode            = errors.New("artifact has no code")
)

// Key addresses an artifact inside a Container.
type Key struct {
	Device string
	Kind   Kind
}

// Resolver looks up artifacts by owner name and kind.
type Resolver interface {
	Lookup(device string, kind Kind) (*Artifact, bool)
}

// Container is the arena of artifacts for one side of a run. Artifacts are
// registered during the register phase; Seal closes registration and
// opens code rendering.
type Container struct {
	side   string
	arena  []Artifact
	index  map[Key]int
	sealed bool
}

func NewContainer(side string) *Container {
	return &Container{side: side, index: make(map[Key]int)}
}

func (c *Container) Side() string { return c.side }

// Add registers a at most once per (device, kind).
func (c *Container) Add(a Artifact) error {
	if c.sealed {
		return fmt.Errorf("%s: add %s for %s: %w", c.side, a.Kind, a.Device, ErrSealed)
	}
	k := Key{Device: a.Device, Kind: a.Kind}
	if _, exists := c.index[k]; exists {
		return fmt.Errorf("%s: %s for %s: %w", c.side, a.Kind, a.Device, ErrDuplicateArtifact)
	}
	c.index[k] = len(c.arena)
	c.arena = append(c.arena, a)
	return nil
}

func (c *Container) Get(device string, kind Kind) (*Artifact, bool) {
	i, ok := c.index[Key{Device: device, Kind: kind}]
	if !ok {
		return nil, false
	}
	return &c.arena[i], true
}

func (c *Container) Has(device string, kind Kind) bool {
	_, ok := c.index[Key{Device: device, Kind: kind}]
	return ok
}

// Lookup implements Resolver.
func (c *Container) Lookup(device string, kind Kind) (*Artifact, bool) {
	return c.Get(device, kind)
}

func (c *Container) Len() int { return len(c.arena) }

// All returns the artifacts in registration order.
func (c *Container) All() []*Artifact {
	out := make([]*Artifact, len(c.arena))
	for i := range c.arena {
		out[i] = &c.arena[i]
	}
	return out
}

// Seal ends the register phase.
func (c *Container) Seal() { c.sealed = true }

func (c *Container) Sealed() bool { return c.sealed }

// Code renders the invocation fragment of a, resolving its dependencies
// against the complete container.
func (c *Container) Code(a *Artifact) (string, error) {
	if !c.sealed {
		return "", fmt.Errorf("%s: code for %s: %w", c.side, a.Device, ErrNotSealed)
	}
	if a.code == nil {
		return "", fmt.Errorf("%s: %s for %s: %w", c.side, a.Kind, a.Device, ErrNoCode)
	}
	return a.code(c)
}
