package cmd

import (
	"github.com/vacgen/vacgen/internal/input"
)

// Selection restricts a command to part of the device table.
type Selection struct {
	Devices string `help:"File listing the device names to include (first column)" type:"existingfile" env:"VACGEN_DEVICES"`
	Units   string `help:"File listing the program units or volumes to include (first column)" type:"existingfile" env:"VACGEN_UNITS"`
}

// Filter reads the side files.
func (s *Selection) Filter() (input.Filter, error) {
	devices, err := input.ReadNameListFile(s.Devices)
	if err != nil {
		return input.Filter{}, err
	}
	units, err := input.ReadNameListFile(s.Units)
	if err != nil {
		return input.Filter{}, err
	}
	return input.NewFilter(devices, units), nil
}
