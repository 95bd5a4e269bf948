package plc

import (
	"fmt"
	"log/slog"

	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/codegen/common"
	"github.com/vacgen/vacgen/internal/codegen/document"
	"github.com/vacgen/vacgen/internal/codegen/meta"
	"github.com/vacgen/vacgen/internal/output"
)

// Sections is the canonical section order of control-side documents.
var Sections = []document.Section{
	{Type: "FB_MKS275", Label: "MKS275 Gauges"},
	{Type: "FB_MKS500", Label: "MKS500 Gauges"},
	{Type: "FB_MKS500_EP", Label: "MKS500_EP Gauges"},
	{Type: "FB_VGC", Label: "VGC Valves"},
	{Type: "FB_PIP_GAMMA", Label: "PIP_Gamma Pumps"},
}

// Generate renders the control side of a sealed run.
// It produces:
// - gen.plc.GVL_<UNIT> (pragmas and declarations per unit)
// - gen.plc.PRG_<UNIT> (invocations per unit)
// - gen.plc.PRG_MAIN, gen.plc.GVL_SYSTEM, gen.plc.PRG_DIAGNOSTIC
func Generate(logger *slog.Logger, md *meta.Run) ([]output.File, error) {
	vars := document.NewSet()
	progs := document.NewSet()

	for _, d := range md.Catalog.Devices() {
		fb, ok := md.PLC.Get(d.Name(), artifact.KindFunctionBlock)
		if !ok {
			continue
		}
		vars.Add(fb.Unit, fb.Type, fb.Declarations()...)

		code, err := md.PLC.Code(fb)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", d.Name(), err)
		}
		md.Fragments.Log(meta.SidePLC, fb.Name, code)
		progs.Add(fb.Unit, fb.Type, code)
	}

	files := document.Files(meta.SidePLC, vars, progs, Sections, common.DiagnosticProgramName)
	fixed, err := common.Boilerplate(meta.SidePLC)
	if err != nil {
		return nil, err
	}
	files = append(files, fixed...)

	logger.Info("Generated control code", "units", len(progs.Units()), "files", len(files))
	return files, nil
}
