package log

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestErrorSplit(t *testing.T) {
	var out, errs bytes.Buffer
	logger := slog.New(errorSplit{
		out:  slog.NewTextHandler(&out, nil),
		errs: slog.NewTextHandler(&errs, nil),
	}).With("run", "r1")

	logger.Info("registered device", "device", "TV1K0-VGC-1")
	logger.Error("unresolved dependency", "device", "TV1K0-VGC-1")

	assert.Contains(t, out.String(), "registered device")
	assert.Contains(t, out.String(), "run=r1")
	assert.NotContains(t, out.String(), "unresolved dependency")
	assert.Contains(t, errs.String(), "unresolved dependency")
	assert.True(t, logger.Handler().Enabled(context.Background(), slog.LevelError))
}

func TestFanoutRespectsLevels(t *testing.T) {
	var all, warn bytes.Buffer
	logger := slog.New(fanout{
		slog.NewTextHandler(&all, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	})
	logger.Debug("created volume")
	logger.Warn("skipping artifact")

	assert.Contains(t, all.String(), "created volume")
	assert.Contains(t, all.String(), "skipping artifact")
	assert.NotContains(t, warn.String(), "created volume")
	assert.Contains(t, warn.String(), "skipping artifact")
}

func TestNewHandlerFormats(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newHandler(&buf, "json", nil)).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	slog.New(newHandler(&buf, "auto", nil)).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello", "non-file writers fall back to text")
}

func TestSetupFiles(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "vacgen.log")
	fragFile := filepath.Join(dir, "fragments.log")

	l, err := Setup(Options{Level: "debug", File: logFile, Format: "text", FragmentFile: fragFile})
	require.NoError(t, err)
	l.Logger.Debug("devices created", "devices", 2)
	l.Fragments.Log("plc", "fb_V1", "fb_V1(i_xExtILK_OK := TRUE);")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "devices created")

	data, err = os.ReadFile(fragFile)
	require.NoError(t, err)
	assert.Equal(t, "plc fb_V1: fb_V1(i_xExtILK_OK := TRUE);\n", string(data))
}

func TestSetupFragmentFileError(t *testing.T) {
	_, err := Setup(Options{FragmentFile: filepath.Join(t.TempDir(), "missing", "f.log")})
	require.Error(t, err)
}

func TestFragmentLogger(t *testing.T) {
	var buf bytes.Buffer
	f := NewFragments(&buf)
	f.Log("plc", "fb_V1", "fb_V1(i_xExtILK_OK := TRUE);")
	f.Log("plc", "fb_V2", "")
	require.Equal(t, "plc fb_V1: fb_V1(i_xExtILK_OK := TRUE);\n", buf.String())

	NewFragments(nil).Log("sim", "fb_V1", "ignored")
}
