package device_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacgen/vacgen/internal/device"
)

func TestCatalogAdd(t *testing.T) {
	c := device.NewCatalog()

	require.NoError(t, c.Add(device.Device{Spec: device.Spec{Name: "TV1K0-GCC-1"}, Class: device.ClassGauge}))
	require.NoError(t, c.Add(device.Device{Spec: device.Spec{Name: "TV1K0-VGC-1"}, Class: device.ClassValve}))

	err := c.Add(device.Device{Spec: device.Spec{Name: "TV1K0-GCC-1"}, Class: device.ClassPump})
	require.ErrorIs(t, err, device.ErrDuplicateDevice)
	assert.Contains(t, err.Error(), "TV1K0-GCC-1")

	assert.Equal(t, 2, c.Len())
	got, ok := c.Get("TV1K0-GCC-1")
	require.True(t, ok)
	assert.Equal(t, device.ClassGauge, got.Class, "first registration must win")

	var names []string
	for _, d := range c.Devices() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"TV1K0-GCC-1", "TV1K0-VGC-1"}, names)
	assert.False(t, c.Has("TV1K0-PIP-1"))
}

func TestSpecVolumeRefs(t *testing.T) {
	tests := []struct {
		name string
		spec device.Spec
		want []string
	}{
		{
			name: "location only",
			spec: device.Spec{Volume: "VOL-A"},
			want: []string{"VOL-A"},
		},
		{
			name: "inlet and outlet",
			spec: device.Spec{Volume: "VOL-A", Vol1: "VOL-B", Vol2: "VOL-C"},
			want: []string{"VOL-A", "VOL-B", "VOL-C"},
		},
		{
			name: "sentinel and repeats skipped",
			spec: device.Spec{Volume: "VOL-A", Vol1: "none", Vol2: "VOL-A"},
			want: []string{"VOL-A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.VolumeRefs())
		})
	}
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, device.IsSentinel("NONE"))
	assert.True(t, device.IsSentinel(" none "))
	assert.False(t, device.IsSentinel(""))
	assert.False(t, device.IsSentinel("TV1K0-GCC-1"))
}
