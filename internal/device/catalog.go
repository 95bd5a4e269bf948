package device

import (
	"errors"
	"fmt"
)

var ErrDuplicateDevice = errors.New("duplicate device name")

// Catalog keeps the devices of one run in input order with a name index.
// It is write-once: there is no removal.
type Catalog struct {
	order  []string
	byName map[string]Device
}

func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]Device)}
}

// Add appends d. Names are unique across the run.
func (c *Catalog) Add(d Device) error {
	name := d.Name()
	if _, exists := c.byName[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDevice, name)
	}
	c.order = append(c.order, name)
	c.byName[name] = d
	return nil
}

func (c *Catalog) Get(name string) (Device, bool) {
	d, ok := c.byName[name]
	return d, ok
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

func (c *Catalog) Len() int { return len(c.order) }

// Devices returns all devices in the order they were added.
func (c *Catalog) Devices() []Device {
	out := make([]Device, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}
