package xref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacgen/vacgen/internal/artifact"
	"github.com/vacgen/vacgen/internal/codegen/meta"
	"github.com/vacgen/vacgen/internal/codegen/xref"
	"github.com/vacgen/vacgen/internal/device"
)

func newRun(t *testing.T) *meta.Run {
	t.Helper()
	md := meta.NewRun(nil)

	g := device.Device{Spec: device.Spec{Name: "G1", Tag: "MKS275", Volume: "VOL-A", Unit: "VOL-A"}, Class: device.ClassGauge}
	p := device.Device{Spec: device.Spec{Name: "P1", Tag: "PTM_TWISTORR", Volume: "VOL-A", Unit: "VOL-A"}, Class: device.ClassPump}
	require.NoError(t, md.Catalog.Add(g))
	require.NoError(t, md.Catalog.Add(p))

	for _, d := range []device.Device{g, p} {
		fb := artifact.New(d.Name(), artifact.KindFunctionBlock, d.Class, "FB_"+d.Spec.Tag, d.Spec.Unit,
			artifact.SimpleDecl(artifact.ObjectName(artifact.KindFunctionBlock, d.Name()), "FB_"+d.Spec.Tag), nil)
		require.NoError(t, md.PLC.Add(fb))
	}
	st := artifact.New("G1", artifact.KindStruct, device.ClassGauge, "ST_MKS_275", "VOL-A",
		artifact.SimpleDecl("st_G1", "ST_MKS_275"), nil)
	require.NoError(t, md.Sim.Add(st))
	md.Seal()
	return md
}

func TestBuild(t *testing.T) {
	m := xref.Build(newRun(t))
	require.Len(t, m.Entries, 2)

	assert.Equal(t, xref.Entry{Name: "fb_G1", Type: "FB_MKS275", Sim: "st_G1"}, m.Entries[0])

	e, ok := m.Lookup("fb_P1")
	require.True(t, ok)
	assert.Empty(t, e.Sim, "no simulation struct registered")

	_, ok = m.Lookup("fb_X")
	assert.False(t, ok)
}

func TestFileFormats(t *testing.T) {
	m := xref.Build(newRun(t))

	for _, format := range xref.Formats {
		t.Run(format, func(t *testing.T) {
			f, err := m.File(format)
			require.NoError(t, err)
			assert.Equal(t, "gen.xref."+format, f.Name)

			back, err := xref.Unmarshal(format, f.Data)
			require.NoError(t, err)
			assert.Equal(t, m, back)
		})
	}

	f, err := m.File("")
	require.NoError(t, err)
	assert.Equal(t, "gen.xref.yaml", f.Name)
	assert.Contains(t, string(f.Data), "devices:")

	_, err = m.File("xml")
	require.Error(t, err)
}
