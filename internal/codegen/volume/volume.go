// Package volume provisions the shared simulation volume structs.
package volume

import (
	"errors"
	"fmt"

	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/device"
)

// StructType is the simulation type of a shared volume.
const StructType = "ST_Volume"

// ErrNameCollision is returned when a volume and a device share a name.
var ErrNameCollision = errors.New("volume name collides with a device")

const initializer = "rVolume := 1E3, rPressure := Global_Pressure, rVLeak := Global_Leak"

// Tracker registers each distinct volume name exactly once in a simulation
// container.
type Tracker struct {
	c     *artifact.Container
	names []string
}

func NewTracker(c *artifact.Container) *Tracker {
	return &Tracker{c: c}
}

// Ensure creates the volume struct for name on first use and is a no-op
// afterwards. unit is the program unit of the first referencing device.
func (t *Tracker) Ensure(name, unit string) (bool, error) {
	if existing, ok := t.c.Get(name, artifact.KindStruct); ok {
		if existing.Class != device.ClassVolume {
			return false, fmt.Errorf("%w: volume %s, device %s (%s)", ErrNameCollision, name, existing.Device, existing.Class)
		}
		return false, nil
	}
	obj := artifact.ObjectName(artifact.KindStruct, name)
	a := artifact.New(name, artifact.KindStruct, device.ClassVolume, StructType, unit,
		artifact.InitDecl(obj, StructType, initializer), nil)
	if err := t.c.Add(a); err != nil {
		return false, fmt.Errorf("volume %s: %w", name, err)
	}
	t.names = append(t.names, name)
	return true, nil
}

// Has reports whether name was provisioned as a volume.
func (t *Tracker) Has(name string) bool {
	a, ok := t.c.Get(name, artifact.KindStruct)
	return ok && a.Class == device.ClassVolume
}

// Names returns the provisioned volumes in creation order.
func (t *Tracker) Names() []string {
	return append([]string(nil), t.names...)
}
