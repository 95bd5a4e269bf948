package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoilerplate(t *testing.T) {
	plc, err := Boilerplate("plc")
	require.NoError(t, err)
	require.Len(t, plc, 2)
	assert.Equal(t, "gen.plc.GVL_SYSTEM", plc[0].Name)
	assert.Equal(t, "gen.plc.PRG_DIAGNOSTIC", plc[1].Name)
	assert.Contains(t, string(plc[0].Data), "xSystemOverrideMode : BOOL := FALSE;")
	assert.NotContains(t, string(plc[0].Data), "Global_Pressure")

	sim, err := Boilerplate("sim")
	require.NoError(t, err)
	assert.Contains(t, string(sim[0].Data), "Global_Pressure : REAL := 760;")
	assert.Contains(t, string(sim[0].Data), "Global_Leak : REAL := 1E-6;")
	assert.Contains(t, string(sim[1].Data), "nHeartbeat := GVL_SYSTEM.nHeartbeat + 1;")
}

func TestVersion(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = ""
	v, err := GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)

	Version = "v1.4.2-dirty"
	v, err = GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.4.2-dirty", v)

	Version = "nope"
	_, err = GetVersion()
	assert.Error(t, err)
	assert.Equal(t, "nope", MustVersion())
}
