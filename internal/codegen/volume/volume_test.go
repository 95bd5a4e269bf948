package volume_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/codegen/volume"
	"github.com/vacgen/vacgen/internal/device"
)

func TestEnsureIsIdempotent(t *testing.T) {
	c := artifact.NewContainer("sim")
	tr := volume.NewTracker(c)

	created, err := tr.Ensure("VOL-A", "VOL-A")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = tr.Ensure("VOL-A", "OTHER")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = tr.Ensure("VOL-B", "VOL-A")
	require.NoError(t, err)

	assert.Equal(t, []string{"VOL-A", "VOL-B"}, tr.Names())
	assert.Equal(t, 2, c.Len())

	a, ok := c.Get("VOL-A", artifact.KindStruct)
	require.True(t, ok)
	assert.Equal(t, "VOL-A", a.Unit, "first referencing unit wins")
	assert.Equal(t, device.ClassVolume, a.Class)
	assert.Equal(t, "st_VOL_A : ST_Volume := (rVolume := 1E3, rPressure := Global_Pressure, rVLeak := Global_Leak);", a.Decl)
}

func TestEnsureCollidesWithDeviceStruct(t *testing.T) {
	c := artifact.NewContainer("sim")
	tr := volume.NewTracker(c)
	require.NoError(t, c.Add(artifact.New("CH1", artifact.KindStruct, device.ClassGauge, "ST_MKS_275", "U", "", nil)))

	created, err := tr.Ensure("CH1", "U")
	require.ErrorIs(t, err, volume.ErrNameCollision)
	assert.False(t, created)
	assert.Contains(t, err.Error(), "volume CH1, device CH1 (gauge)")
	assert.False(t, tr.Has("CH1"))
	assert.Empty(t, tr.Names())
}
