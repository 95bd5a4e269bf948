package plc

import (
	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/device"
)

// ArgsFunc returns the parameter assignments of an invocation.
type ArgsFunc func(spec device.Spec, r artifact.Resolver) ([]string, error)

// Rule produces the control-side function block of a device type.
type Rule struct {
	Type string
	Args ArgsFunc
}

// Build creates the function block artifact for d. Its code is rendered
// later, once every device of the run is registered.
func (rule *Rule) Build(d device.Device) artifact.Artifact {
	name := artifact.ObjectName(artifact.KindFunctionBlock, d.Name())
	spec := d.Spec
	a := artifact.New(d.Name(), artifact.KindFunctionBlock, d.Class, rule.Type, spec.Unit,
		artifact.SimpleDecl(name, rule.Type),
		func(r artifact.Resolver) (string, error) {
			args, err := rule.Args(spec, r)
			if err != nil {
				return "", err
			}
			return artifact.Call(name, args...), nil
		})
	a.Pragma = artifact.Pragma(name)
	return a
}

func gaugeRef(f device.Field, member string) artifact.Ref {
	return artifact.Ref{Field: f, Kind: artifact.KindFunctionBlock, Class: device.ClassGauge, Member: member}
}

// Fixed is a rule without substitutions.
func Fixed(typ string, args ...string) *Rule {
	return &Rule{
		Type: typ,
		Args: func(device.Spec, artifact.Resolver) ([]string, error) {
			return args, nil
		},
	}
}

// GaugedValve wires the upstream (gauge1) and downstream (gauge2) gauges
// into an isolation valve's differential-pressure interlock.
func GaugedValve(typ string) *Rule {
	return &Rule{
		Type: typ,
		Args: func(spec device.Spec, r artifact.Resolver) ([]string, error) {
			up, err := artifact.Resolve(r, spec, gaugeRef(device.FieldGauge1, "IG"))
			if err != nil {
				return nil, err
			}
			down, err := artifact.Resolve(r, spec, gaugeRef(device.FieldGauge2, "IG"))
			if err != nil {
				return nil, err
			}
			return []string{
				"i_stUSG := " + up,
				"i_stDSG := " + down,
				"i_xDis_DPIlk := FALSE",
				"i_xEPS_OK := TRUE",
				"i_xPMPS_OK := TRUE",
				"i_xExt_OK := TRUE",
				"i_xOverrideMode := xSystemOverrideMode",
			}, nil
		},
	}
}

// ColdCathode feeds the pressure reading of the gauge in gauge1 into a
// cold-cathode gauge's protection input.
func ColdCathode(typ string) *Rule {
	return &Rule{
		Type: typ,
		Args: func(spec device.Spec, r artifact.Resolver) ([]string, error) {
			pg, err := artifact.Resolve(r, spec, gaugeRef(device.FieldGauge1, "PG"))
			if err != nil {
				return nil, err
			}
			return []string{"PG := " + pg}, nil
		},
	}
}

// GaugeBackedPump feeds the cold-cathode reading in gauge1 into a pump.
func GaugeBackedPump(typ string) *Rule {
	return &Rule{
		Type: typ,
		Args: func(spec device.Spec, r artifact.Resolver) ([]string, error) {
			pg, err := artifact.Resolve(r, spec, gaugeRef(device.FieldGauge1, "PG"))
			if err != nil {
				return nil, err
			}
			return []string{"i_stGauge := " + pg}, nil
		},
	}
}
