package sim

import (
	"fmt"
	"log/slog"

	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/codegen/common"
	"github.com/vacgen/vacgen/internal/codegen/document"
	"github.com/vacgen/vacgen/internal/codegen/meta"
	"github.com/vacgen/vacgen/internal/codegen/volume"
	"github.com/vacgen/vacgen/internal/output"
)

// Sections is the canonical section order of simulation documents.
var Sections = []document.Section{
	{Type: volume.StructType, Label: "Volumes"},
	{Type: "ST_VacuumValve", Label: "Valve Structs"},
	{Type: "ST_MKS_275", Label: "MKS275 Gauge Structs"},
	{Type: "ST_MKS_317", Label: "MKS317 Gauge Structs"},
	{Type: "ST_MKS_422", Label: "MKS422 Gauge Structs"},
	{Type: "ST_MKS_500", Label: "MKS500 Gauge Structs"},
	{Type: "ST_GAM_PIP", Label: "PIP_Gamma Pump Structs"},
	{Type: "ST_PTM", Label: "Turbo Pump Structs"},
	{Type: "ST_RoughPump", Label: "Roughing Pump Structs"},
	{Type: "FB_VacuumValve", Label: "Valves"},
	{Type: "FB_MKS_275", Label: "MKS275 Gauges"},
	{Type: "FB_MKS_422", Label: "MKS422 Gauges"},
	{Type: "FB_MKS_500", Label: "MKS500 Gauges"},
	{Type: "FB_GAM_PIP", Label: "PIP_Gamma Pumps"},
	{Type: "FB_Sim_PTM", Label: "Turbo Pumps"},
	{Type: "FB_Sim_RoughPump", Label: "Roughing Pumps"},
}

// Generate renders the simulation side of a sealed run. Volume structs are
// declared first, then each device's struct and function block in catalog
// order.
func Generate(logger *slog.Logger, md *meta.Run) ([]output.File, error) {
	vars := document.NewSet()
	progs := document.NewSet()

	for _, name := range md.Volumes.Names() {
		st, ok := md.Sim.Get(name, artifact.KindStruct)
		if !ok {
			return nil, fmt.Errorf("volume %s: struct missing", name)
		}
		vars.Add(st.Unit, st.Type, st.Decl)
	}

	for _, d := range md.Catalog.Devices() {
		if st, ok := md.Sim.Get(d.Name(), artifact.KindStruct); ok {
			vars.Add(st.Unit, st.Type, st.Decl)
		}

		fb, ok := md.Sim.Get(d.Name(), artifact.KindFunctionBlock)
		if !ok {
			continue
		}
		vars.Add(fb.Unit, fb.Type, fb.Decl)

		code, err := md.Sim.Code(fb)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", d.Name(), err)
		}
		md.Fragments.Log(meta.SideSim, fb.Name, code)
		progs.Add(fb.Unit, fb.Type, code)
	}

	files := document.Files(meta.SideSim, vars, progs, Sections, common.DiagnosticProgramName)
	fixed, err := common.Boilerplate(meta.SideSim)
	if err != nil {
		return nil, err
	}
	files = append(files, fixed...)

	logger.Info("Generated simulation code", "units", len(progs.Units()), "volumes", len(md.Volumes.Names()), "files", len(files))
	return files, nil
}
