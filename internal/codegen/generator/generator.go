// Package generator runs a generation: it registers every input row into a
// fresh run, seals it, and renders the requested sides together with the
// cross-reference map.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/codegen/common"
	"github.com/vacgen/vacgen/internal/codegen/document"
	"github.com/vacgen/vacgen/internal/codegen/generator/plc"
	"github.com/vacgen/vacgen/internal/codegen/generator/sim"
	"github.com/vacgen/vacgen/internal/codegen/meta"
	"github.com/vacgen/vacgen/internal/codegen/volume"
	"github.com/vacgen/vacgen/internal/codegen/xref"
	"github.com/vacgen/vacgen/internal/device"
	"github.com/vacgen/vacgen/internal/input"
	"github.com/vacgen/vacgen/internal/log"
	"github.com/vacgen/vacgen/internal/output"
	"github.com/vacgen/vacgen/internal/registry"
)

// ErrReservedUnit is returned for a program unit that collides with a
// fixed output unit.
var ErrReservedUnit = errors.New("reserved program unit")

var reservedUnits = []string{document.MainUnit, "DIAGNOSTIC", "SYSTEM"}

// RowError reports a malformed input row.
type RowError struct {
	Line   int
	Device string
	Field  string
	Err    error
}

func (e *RowError) Error() string {
	name := e.Device
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("row %d (device %s): %s: %v", e.Line, name, e.Field, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

var errMissing = errors.New("required field is empty")

type SideGenerator func(logger *slog.Logger, md *meta.Run) ([]output.File, error)

var generators = map[string]SideGenerator{
	meta.SidePLC: plc.Generate,
	meta.SideSim: sim.Generate,
}

// Sides lists the supported sides in output order.
var Sides = []string{meta.SidePLC, meta.SideSim}

// Options configures a generation.
type Options struct {
	// Sides to render. Empty means all.
	Sides      []string
	XrefFormat string
	Manifest   bool
	Filter     input.Filter
}

type Generator struct {
	registry  *registry.Registry
	logger    *slog.Logger
	fragments log.FragmentLogger
	opts      Options
}

func New(reg *registry.Registry, logger *slog.Logger, fragments log.FragmentLogger, opts Options) *Generator {
	if len(opts.Sides) == 0 {
		opts.Sides = Sides
	}
	return &Generator{
		registry:  reg,
		logger:    logger,
		fragments: fragments,
		opts:      opts,
	}
}

// Load reads the device table and keeps the rows selected by the filter.
func (g *Generator) Load(path string) ([]input.Row, error) {
	rows, err := input.ReadDevicesFile(path)
	if err != nil {
		return nil, err
	}
	if g.opts.Filter.Empty() {
		g.logger.Info("Loaded device table", "path", path, "rows", len(rows))
		return rows, nil
	}
	var kept []input.Row
	for _, r := range rows {
		if g.opts.Filter.Match(r.Spec) {
			kept = append(kept, r)
		}
	}
	g.logger.Info("Loaded device table", "path", path, "rows", len(rows), "selected", len(kept))
	return kept, nil
}

// Register builds and seals a run from rows. It stops at the first fatal
// row; nothing is rendered from a run that failed to register.
func (g *Generator) Register(rows []input.Row) (*meta.Run, error) {
	md := meta.NewRun(g.fragments)

	for _, row := range rows {
		if err := g.register(md, row); err != nil {
			return nil, err
		}
	}
	md.Seal()

	g.logger.Info("devices created",
		"run", md.ID,
		"devices", md.Catalog.Len(),
		"plc", md.PLC.Len(),
		"sim", md.Sim.Len(),
		"volumes", len(md.Volumes.Names()))
	return md, nil
}

func (g *Generator) register(md *meta.Run, row input.Row) error {
	spec := row.Spec
	if spec.Name == "" && spec.Tag == "" && spec.Volume == "" {
		return nil
	}
	if spec.Name == "" {
		return &RowError{Line: row.Line, Field: input.ColName, Err: errMissing}
	}
	if spec.Tag == "" {
		g.logger.Warn("Skipping row without device type", "row", row.Line, "device", spec.Name)
		return nil
	}
	if spec.Volume == "" || device.IsSentinel(spec.Volume) {
		return &RowError{Line: row.Line, Device: spec.Name, Field: input.ColVolume, Err: errMissing}
	}
	if slices.Contains(reservedUnits, strings.ToUpper(spec.Unit)) {
		return &RowError{Line: row.Line, Device: spec.Name, Field: input.ColUnit,
			Err: fmt.Errorf("%w: %s", ErrReservedUnit, spec.Unit)}
	}

	d, err := g.registry.CreateDevice(spec)
	if err != nil {
		return err
	}
	if err := md.Catalog.Add(d); err != nil {
		return err
	}
	desc, _ := g.registry.Descriptor(spec.Tag)

	fb, err := desc.ControlFB(d)
	if err := g.add(md.PLC, fb, err); err != nil {
		return err
	}

	for _, v := range spec.VolumeRefs() {
		created, err := md.Volumes.Ensure(v, spec.Unit)
		if err != nil {
			return err
		}
		if created {
			g.logger.Debug("Created volume", "volume", v, "unit", spec.Unit, "device", d.Name())
		}
	}

	if md.Volumes.Has(d.Name()) {
		return fmt.Errorf("device %s: %w", d.Name(), volume.ErrNameCollision)
	}
	st, err := desc.SimulationStruct(d)
	if err := g.add(md.Sim, st, err); err != nil {
		return err
	}
	simFB, err := desc.SimulationFB(d)
	if err := g.add(md.Sim, simFB, err); err != nil {
		return err
	}
	return nil
}

// add registers a built artifact. Rules a type does not provide are logged
// and skipped.
func (g *Generator) add(c *artifact.Container, a artifact.Artifact, buildErr error) error {
	if errors.Is(buildErr, registry.ErrNotSupported) {
		g.logger.Warn("Skipping artifact", "side", c.Side(), "error", buildErr)
		return nil
	}
	if buildErr != nil {
		return buildErr
	}
	if err := c.Add(a); err != nil {
		return fmt.Errorf("%s side: %w", c.Side(), err)
	}
	return nil
}

// Render produces every output file of a sealed run in memory.
func (g *Generator) Render(md *meta.Run) ([]output.File, error) {
	if !md.Sealed() {
		return nil, artifact.ErrNotSealed
	}

	var files []output.File
	for _, side := range g.opts.Sides {
		gen, ok := generators[side]
		if !ok {
			return nil, fmt.Errorf("unsupported side '%s' (supported: %v)", side, Sides)
		}
		g.logger.Info("Generating", "side", side)
		sideFiles, err := gen(g.logger, md)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", side, err)
		}
		files = append(files, sideFiles...)
	}

	xf, err := xref.Build(md).File(g.opts.XrefFormat)
	if err != nil {
		return nil, err
	}
	files = append(files, xf)

	if g.opts.Manifest {
		mf, err := output.ManifestFile(output.NewManifest(md.ID.String(), common.MustVersion(), files))
		if err != nil {
			return nil, err
		}
		files = append(files, mf)
	}
	return files, nil
}

// Generate registers rows and renders the run.
func (g *Generator) Generate(rows []input.Row) ([]output.File, error) {
	md, err := g.Register(rows)
	if err != nil {
		return nil, err
	}
	return g.Render(md)
}

// Tags classifies the device types of rows without generating anything.
// Both lists are sorted and free of repeats.
func (g *Generator) Tags(rows []input.Row) (supported, unsupported []string) {
	seen := map[string]bool{}
	for _, row := range rows {
		tag := row.Spec.Tag
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		if g.registry.IsSupported(tag) {
			supported = append(supported, tag)
		} else {
			unsupported = append(unsupported, tag)
		}
	}
	sort.Strings(supported)
	sort.Strings(unsupported)
	return supported, unsupported
}
