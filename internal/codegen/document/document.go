// Package document groups generated lines into per-unit documents and
// renders them with a deterministic section order.
package document

import (
	"bytes"
	"io"
	"strings"
)

// Section names an artifact type and the label of its header comment.
type Section struct {
	Type  string
	Label string
}

// Document holds the lines of one program unit, grouped by artifact type.
type Document struct {
	Name    string
	types   []string
	content map[string][]string
}

func newDocument(name string) *Document {
	return &Document{Name: name, content: make(map[string][]string)}
}

// Add appends lines under typ, keeping insertion order within the type.
func (d *Document) Add(typ string, lines ...string) {
	if _, ok := d.content[typ]; !ok {
		d.types = append(d.types, typ)
		d.content[typ] = nil
	}
	d.content[typ] = append(d.content[typ], lines...)
}

// Lines returns the lines recorded for typ.
func (d *Document) Lines(typ string) []string {
	return d.content[typ]
}

// Order returns the section order: priority types in list order, then the
// remaining types of the document in first-seen order.
func (d *Document) Order(priority []Section) []Section {
	out := make([]Section, 0, len(priority)+len(d.types))
	listed := make(map[string]bool, len(priority))
	for _, s := range priority {
		listed[s.Type] = true
		out = append(out, s)
	}
	for _, typ := range d.types {
		if !listed[typ] {
			out = append(out, Section{Type: typ, Label: typ})
		}
	}
	return out
}

// Render writes every non-empty section as a header comment followed by
// its lines.
func (d *Document) Render(w io.Writer, priority []Section) error {
	for _, s := range d.Order(priority) {
		lines, ok := d.content[s.Type]
		if !ok {
			continue
		}
		label := s.Label
		if label == "" {
			label = s.Type
		}
		if _, err := io.WriteString(w, "\n// "+label+"\n\n"); err != nil {
			return err
		}
		for _, l := range lines {
			if _, err := io.WriteString(w, l+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Bytes renders the document into memory.
func (d *Document) Bytes(priority []Section) []byte {
	var buf bytes.Buffer
	_ = d.Render(&buf, priority)
	return buf.Bytes()
}

// Set is a collection of documents keyed by program unit.
type Set struct {
	order []string
	docs  map[string]*Document
}

func NewSet() *Set {
	return &Set{docs: make(map[string]*Document)}
}

// Add appends lines to the typ section of unit's document, creating the
// document on first use.
func (s *Set) Add(unit, typ string, lines ...string) {
	d, ok := s.docs[unit]
	if !ok {
		d = newDocument(unit)
		s.docs[unit] = d
		s.order = append(s.order, unit)
	}
	d.Add(typ, lines...)
}

func (s *Set) Get(unit string) (*Document, bool) {
	d, ok := s.docs[unit]
	return d, ok
}

// Documents returns the documents in first-use order.
func (s *Set) Documents() []*Document {
	out := make([]*Document, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.docs[name])
	}
	return out
}

// Units returns the program unit names in first-use order.
func (s *Set) Units() []string {
	return append([]string(nil), s.order...)
}

// ProgramName is the generated program identifier of a unit.
func ProgramName(unit string) string {
	return "PRG_" + strings.ToUpper(unit)
}

// VariablesName is the generated global variable list identifier of a unit.
func VariablesName(unit string) string {
	return "GVL_" + strings.ToUpper(unit)
}

// MainProgram lists a call to each program unit in order, followed by the
// diagnostic program.
func MainProgram(units []string, diagnostic string) string {
	var b strings.Builder
	for _, u := range units {
		b.WriteString(ProgramName(u) + "();\n")
	}
	b.WriteString(diagnostic + "();\n")
	return b.String()
}
