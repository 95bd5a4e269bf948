// Package xref builds the cross-reference map linking each control-side
// function block to its paired simulation struct. The map is consumed by
// the signal remapping tool.
package xref

import (
	"bytes"
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/codegen/meta"
	"github.com/vacgen/vacgen/internal/output"
)

// Entry is one record of the map, keyed by the control-side object name.
type Entry struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Type string `json:"type" yaml:"type" toml:"type"`
	// Sim is empty when the device type has no simulation struct.
	Sim string `json:"sim" yaml:"sim" toml:"sim"`
}

// Map is the ordered cross-reference table.
type Map struct {
	Entries []Entry `json:"devices" yaml:"devices" toml:"devices"`
}

// Build walks the catalog in order and pairs each control function block
// with the simulation struct of the same device.
func Build(md *meta.Run) Map {
	var m Map
	for _, d := range md.Catalog.Devices() {
		fb, ok := md.PLC.Get(d.Name(), artifact.KindFunctionBlock)
		if !ok {
			continue
		}
		e := Entry{Name: fb.Name, Type: fb.Type}
		if st, ok := md.Sim.Get(d.Name(), artifact.KindStruct); ok {
			e.Sim = st.Name
		}
		m.Entries = append(m.Entries, e)
	}
	return m
}

// Lookup finds the entry for a control-side object name.
func (m Map) Lookup(name string) (Entry, bool) {
	for _, e := range m.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Formats lists the supported serializations.
var Formats = []string{"yaml", "json", "toml"}

// Marshal serializes m in the given format.
func (m Map) Marshal(format string) ([]byte, error) {
	switch format {
	case "yaml", "":
		return yaml.Marshal(m)
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(m); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "toml":
		return toml.Marshal(m)
	default:
		return nil, fmt.Errorf("unsupported cross-reference format: %s", format)
	}
}

// Unmarshal parses a map written by Marshal.
func Unmarshal(format string, data []byte) (Map, error) {
	var m Map
	var err error
	switch format {
	case "yaml", "":
		err = yaml.Unmarshal(data, &m)
	case "json":
		err = json.Unmarshal(data, &m)
	case "toml":
		err = toml.Unmarshal(data, &m)
	default:
		err = fmt.Errorf("unsupported cross-reference format: %s", format)
	}
	return m, err
}

// File serializes m into its output file, gen.xref.<format>.
func (m Map) File(format string) (output.File, error) {
	if format == "" {
		format = "yaml"
	}
	data, err := m.Marshal(format)
	if err != nil {
		return output.File{}, fmt.Errorf("marshal cross-reference map: %w", err)
	}
	return output.File{Name: "gen.xref." + format, Data: data}, nil
}
