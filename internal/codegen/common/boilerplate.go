package common

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/vacgen/vacgen/internal/output"
)

// DiagnosticProgramName is the fixed diagnostic unit called by every main
// program.
const DiagnosticProgramName = "PRG_DIAGNOSTIC"

const systemVariablesTemplate = `
// System

xSystemOverrideMode : BOOL := FALSE;
{{- if eq .Side "sim"}}
Global_Pressure : REAL := 760;
Global_Leak : REAL := 1E-6;
{{- end}}

// Diagnostics

nHeartbeat : UDINT;
fbLocalTime : FB_LocalSystemTime := (bEnable := TRUE, dwCycle := 1);
sTimestamp : STRING;
`

const diagnosticProgramTemplate = `
// Heartbeat

GVL_SYSTEM.nHeartbeat := GVL_SYSTEM.nHeartbeat + 1;

// Timestamp

GVL_SYSTEM.fbLocalTime();
GVL_SYSTEM.sTimestamp := SYSTEMTIME_TO_STRING(GVL_SYSTEM.fbLocalTime.systemTime);
`

var (
	systemVariablesTpl   = template.Must(template.New("system").Parse(systemVariablesTemplate))
	diagnosticProgramTpl = template.Must(template.New("diagnostic").Parse(diagnosticProgramTemplate))
)

func render(tpl *template.Template, side string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, struct{ Side string }{Side: side}); err != nil {
		return nil, fmt.Errorf("render %s for %s: %w", tpl.Name(), side, err)
	}
	return buf.Bytes(), nil
}

// Boilerplate returns the fixed system variable list and diagnostic
// program of a side. Neither depends on device data.
func Boilerplate(side string) ([]output.File, error) {
	vars, err := render(systemVariablesTpl, side)
	if err != nil {
		return nil, err
	}
	diag, err := render(diagnosticProgramTpl, side)
	if err != nil {
		return nil, err
	}
	return []output.File{
		{Name: "gen." + side + ".GVL_SYSTEM", Data: vars},
		{Name: "gen." + side + "." + DiagnosticProgramName, Data: diag},
	}, nil
}
