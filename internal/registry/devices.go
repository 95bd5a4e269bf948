package registry

import (
	"github.com/vacgen/vacgen/internal/codegen/generator/plc"
	"github.com/vacgen/vacgen/internal/codegen/generator/sim"
	"github.com/vacgen/vacgen/internal/device"
)

var (
	valveStruct = &sim.StructRule{Type: "ST_VacuumValve", Init: "q_xClsLS := TRUE, q_xOpnLS := FALSE"}
	valveFB     = sim.ValveFB("FB_VacuumValve")
)

func gaugeStruct(typ string) *sim.StructRule {
	return &sim.StructRule{Type: typ, Init: "q_xGaugeConnected := TRUE"}
}

// builtin is the closed set of supported device types.
var builtin = []struct {
	tag  string
	desc Descriptor
}{
	// Valves
	{"VGC", Descriptor{
		Class: device.ClassValve, Family: device.FamilyIsolationGauged,
		PLC:   plc.GaugedValve("FB_VGC"),
		SimFB: valveFB, SimStruct: valveStruct,
	}},
	{"VRC", Descriptor{
		Class: device.ClassValve, Family: device.FamilyIsolation,
		PLC:   plc.Fixed("FB_VRC", "i_xExtILK_OK := TRUE", "i_xOverrideMode := xSystemOverrideMode"),
		SimFB: valveFB, SimStruct: valveStruct,
	}},
	{"VCN", Descriptor{
		Class: device.ClassValve, Family: device.FamilyNeedle,
		PLC:   plc.Fixed("FB_VCN", "i_xExtIlkOK := TRUE", "i_ReqPos := 0"),
		SimFB: valveFB, SimStruct: valveStruct,
	}},

	// Cold cathode gauges
	{"MKS422", Descriptor{
		Class: device.ClassGauge, Family: device.FamilyColdCathode,
		PLC:   plc.ColdCathode("FB_MKS422"),
		SimFB: sim.LocatedFB("FB_MKS_422", "stGauge"), SimStruct: gaugeStruct("ST_MKS_422"),
	}},
	{"MKS500", Descriptor{
		Class: device.ClassGauge, Family: device.FamilyColdCathode,
		PLC:   plc.ColdCathode("FB_MKS500"),
		SimFB: sim.LocatedFB("FB_MKS_500", "stGauge"), SimStruct: gaugeStruct("ST_MKS_500"),
	}},
	{"MKS500_EP", Descriptor{
		Class: device.ClassGauge, Family: device.FamilyColdCathode,
		PLC:   plc.ColdCathode("FB_MKS500_EP"),
		SimFB: sim.LocatedFB("FB_MKS_500", "stGauge"), SimStruct: gaugeStruct("ST_MKS_500"),
	}},

	// Pirani gauges
	{"MKS275", Descriptor{
		Class: device.ClassGauge, Family: device.FamilyPirani,
		PLC:   plc.Fixed("FB_MKS275", "PG=>"),
		SimFB: sim.LocatedFB("FB_MKS_275", "stGauge"), SimStruct: gaugeStruct("ST_MKS_275"),
	}},
	// TODO: add the MKS317 simulation function block once the simulation library ships one.
	{"MKS317", Descriptor{
		Class: device.ClassGauge, Family: device.FamilyPirani,
		PLC:       plc.Fixed("FB_MKS317", "PG=>"),
		SimStruct: gaugeStruct("ST_MKS_317"),
	}},

	// Pumps
	{"PIP_GAMMA", Descriptor{
		Class: device.ClassPump, Family: device.FamilyIonPump,
		PLC:   plc.GaugeBackedPump("FB_PIP_GAMMA"),
		SimFB: sim.LocatedFB("FB_GAM_PIP", "stPip"), SimStruct: &sim.StructRule{Type: "ST_GAM_PIP"},
	}},
	{"PTM_TWISTORR", Descriptor{
		Class: device.ClassPump, Family: device.FamilyTurboPump,
		PLC:   plc.Fixed("FB_PTM_TwisTorr", "i_xExtILKOk := TRUE"),
		SimFB: sim.TurboFB("FB_Sim_PTM"), SimStruct: &sim.StructRule{Type: "ST_PTM"},
	}},
	{"PRO_EBARA", Descriptor{
		Class: device.ClassPump, Family: device.FamilyRoughingPump,
		PLC:   plc.Fixed("FB_PRO_Ebara", "i_xExtILKOk := TRUE"),
		SimFB: sim.RoughingFB("FB_Sim_RoughPump"), SimStruct: &sim.StructRule{Type: "ST_RoughPump"},
	}},
}

// Builtin returns a registry populated with every supported device type.
func Builtin() *Registry {
	r := New()
	for _, b := range builtin {
		if err := r.Register(b.tag, b.desc); err != nil {
			// The table is static; a duplicate is a programming error.
			panic(err)
		}
	}
	return r
}
