package output_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"

	"github.com/vacgen/vacgen/internal/output"
)

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := output.NewWriter(dir, slog.Default())

	files := []output.File{
		{Name: "gen.plc.GVL_VOL1", Data: []byte("a")},
		{Name: "gen.plc.PRG_VOL1", Data: []byte("b")},
	}
	require.NoError(t, w.Write(files))

	got, err := os.ReadFile(filepath.Join(dir, "gen.plc.PRG_VOL1"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))
}

func TestWriteRollsBackOnFailure(t *testing.T) {
	dir := t.TempDir()
	w := output.NewWriter(dir, slog.Default())

	// A directory in place of the second file makes its write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "gen.plc.PRG_VOL1"), 0o755))

	err := w.Write([]output.File{
		{Name: "gen.plc.GVL_VOL1", Data: []byte("a")},
		{Name: "gen.plc.PRG_VOL1", Data: []byte("b")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gen.plc.PRG_VOL1")

	_, statErr := os.Stat(filepath.Join(dir, "gen.plc.GVL_VOL1"))
	assert.True(t, os.IsNotExist(statErr), "earlier file must be removed")
}

func TestWriteRejectsDuplicateNames(t *testing.T) {
	w := output.NewWriter(t.TempDir(), slog.Default())
	err := w.Write([]output.File{{Name: "x"}, {Name: "x"}})
	require.Error(t, err)
}

func TestManifest(t *testing.T) {
	files := []output.File{{Name: "gen.plc.PRG_MAIN", Data: []byte("PRG_VOL1();\n")}}
	m := output.NewManifest("run-1", "0.0.1-dev", files)
	require.Len(t, m.Files, 1)
	assert.Equal(t, output.Digest(files[0].Data), m.Files[0].Digest)
	assert.Len(t, m.Files[0].Digest, 64)

	f, err := output.ManifestFile(m)
	require.NoError(t, err)
	assert.Equal(t, output.ManifestName, f.Name)

	var back output.Manifest
	require.NoError(t, yaml.Unmarshal(f.Data, &back))
	assert.Equal(t, "run-1", back.Run)
	assert.Equal(t, "gen.plc.PRG_MAIN", back.Files[0].Name)
}
