package meta

import (
	"github.com/google/uuid"

	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/codegen/volume"
	"github.com/vacgen/vacgen/internal/device"
	"github.com/vacgen/vacgen/internal/log"
)

const (
	SidePLC = "plc"
	SideSim = "sim"
)

// Run holds all state of one generation run.
// Shared between generator orchestrator and the per-side generators; it is
// built fresh for every run and discarded afterwards.
type Run struct {
	ID        uuid.UUID
	Catalog   *device.Catalog
	PLC       *artifact.Container
	Sim       *artifact.Container
	Volumes   *volume.Tracker
	Fragments log.FragmentLogger
}

// NewRun creates an empty run. A nil fragments logger discards fragments.
func NewRun(fragments log.FragmentLogger) *Run {
	if fragments == nil {
		fragments = log.NewFragments(nil)
	}
	sim := artifact.NewContainer(SideSim)
	return &Run{
		ID:        uuid.New(),
		Catalog:   device.NewCatalog(),
		PLC:       artifact.NewContainer(SidePLC),
		Sim:       sim,
		Volumes:   volume.NewTracker(sim),
		Fragments: fragments,
	}
}

// Seal closes the register phase on both sides.
func (r *Run) Seal() {
	r.PLC.Seal()
	r.Sim.Seal()
}

func (r *Run) Sealed() bool {
	return r.PLC.Sealed() && r.Sim.Sealed()
}
