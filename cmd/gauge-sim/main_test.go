//go:build !rp2040 && !rp2350

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessRunWritesFrame(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	var logs bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&logs)
	cmd.SetArgs([]string{"--headless", "--duration", "50ms", "--png", out})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, logs.String(), "Info: Sensor display ready!")
	assert.Contains(t, logs.String(), "Info: Cycling through: Temperature -> Humidity -> Pressure")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
}

func TestUnknownBoard(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--headless", "--board", "nope"})
	assert.Error(t, cmd.Execute())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauge.yaml")
	require.NoError(t, os.WriteFile(path, []byte("channels:\n  - name: RPM\n    max: 8000\n    color: \"#FF8800\"\n"), 0o644))

	cfg, err := loadConfig(options{configPath: path})
	require.NoError(t, err)
	require.Len(t, cfg.Channels, 1)
	assert.Equal(t, "RPM", cfg.Channels[0].Name)
}
