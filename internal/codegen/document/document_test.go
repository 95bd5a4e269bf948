package document_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vacgen/vacgen/internal/codegen/document"
)

var priority = []document.Section{
	{Type: "FB_MKS275", Label: "MKS275 Gauges"},
	{Type: "FB_VGC", Label: "VGC Valves"},
	{Type: "FB_PIP_GAMMA", Label: "PIP_Gamma Pumps"},
}

func TestRenderOrdersPriorityThenFirstSeen(t *testing.T) {
	s := document.NewSet()
	s.Add("VOL1", "FB_VRC", "fb_V2(i_xExtILK_OK := TRUE);")
	s.Add("VOL1", "FB_VGC", "fb_V1();")
	s.Add("VOL1", "FB_PTM_TwisTorr", "fb_P1();")
	s.Add("VOL1", "FB_MKS275", "fb_G1(PG=>);")
	s.Add("VOL1", "FB_VGC", "fb_V3();")

	d, ok := s.Get("VOL1")
	require.True(t, ok)

	want := "\n// MKS275 Gauges\n\nfb_G1(PG=>);\n" +
		"\n// VGC Valves\n\nfb_V1();\nfb_V3();\n" +
		"\n// FB_VRC\n\nfb_V2(i_xExtILK_OK := TRUE);\n" +
		"\n// FB_PTM_TwisTorr\n\nfb_P1();\n"
	if diff := cmp.Diff(want, string(d.Bytes(priority))); diff != "" {
		t.Errorf("rendered document mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	build := func() []byte {
		s := document.NewSet()
		for _, typ := range []string{"B", "A", "FB_VGC", "C", "A"} {
			s.Add("U", typ, typ+"-line")
		}
		d, _ := s.Get("U")
		return d.Bytes(priority)
	}
	first := build()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, build())
	}
}

func TestOrderDoesNotMutatePriority(t *testing.T) {
	p := []document.Section{{Type: "X", Label: "X things"}}
	s := document.NewSet()
	s.Add("U", "Y", "y")
	d, _ := s.Get("U")

	_ = d.Order(p)
	_ = d.Order(p)
	assert.Len(t, p, 1)
	assert.Equal(t, []document.Section{{Type: "X", Label: "X things"}, {Type: "Y", Label: "Y"}}, d.Order(p))
}

func TestSetKeepsUnitOrder(t *testing.T) {
	s := document.NewSet()
	s.Add("beta", "T", "1")
	s.Add("alpha", "T", "2")
	s.Add("beta", "T", "3")

	assert.Equal(t, []string{"beta", "alpha"}, s.Units())
	d, _ := s.Get("beta")
	assert.Equal(t, []string{"1", "3"}, d.Lines("T"))
}

func TestMainProgram(t *testing.T) {
	got := document.MainProgram([]string{"vol1", "Vol2"}, "PRG_DIAGNOSTIC")
	assert.Equal(t, "PRG_VOL1();\nPRG_VOL2();\nPRG_DIAGNOSTIC();\n", got)
}

func TestFiles(t *testing.T) {
	vars := document.NewSet()
	progs := document.NewSet()
	vars.Add("vol1", "FB_VGC", "fb_V1 : FB_VGC;")
	progs.Add("vol1", "FB_VGC", "fb_V1();")

	files := document.Files("plc", vars, progs, priority, "PRG_DIAGNOSTIC")
	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"gen.plc.GVL_VOL1", "gen.plc.PRG_VOL1", "gen.plc.PRG_MAIN"}, names)
	assert.Equal(t, "\n// VGC Valves\n\nfb_V1 : FB_VGC;\n", string(files[0].Data))
	assert.Equal(t, "PRG_VOL1();\nPRG_DIAGNOSTIC();\n", string(files[2].Data))
}
