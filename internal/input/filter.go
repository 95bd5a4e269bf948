package input

import "github.com/vacgen/vacgen/internal/device"

// Filter restricts a run to named devices or program units. The zero
// Filter matches everything.
type Filter struct {
	devices map[string]bool
	units   map[string]bool
}

func NewFilter(devices, units []string) Filter {
	f := Filter{}
	if len(devices) > 0 {
		f.devices = toSet(devices)
	}
	if len(units) > 0 {
		f.units = toSet(units)
	}
	return f
}

func toSet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Empty reports whether the filter restricts nothing.
func (f Filter) Empty() bool {
	return len(f.devices) == 0 && len(f.units) == 0
}

// Match reports whether a spec is in scope: it is listed by name, or its
// program unit or volume is listed.
func (f Filter) Match(s device.Spec) bool {
	if f.Empty() {
		return true
	}
	if f.devices[s.Name] {
		return true
	}
	return f.units[s.Unit] || f.units[s.Volume]
}
