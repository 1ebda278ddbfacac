package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbrown/bytegram/imageutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bytegram.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "png", cfg.Output.Format)
	assert.Equal(t, 1, cfg.Output.Scale)
	assert.Equal(t, "gray", cfg.Output.Colormap)
	assert.False(t, cfg.Output.Caption)
	assert.False(t, cfg.Preview.Enabled)
	assert.False(t, cfg.Report.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
output:
  dir: ./images
  format: JPG
  scale: 4
  colormap: heat
  caption: true
preview:
  enabled: true
  width: 48
report:
  enabled: true
logging:
  level: debug
`)
	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "./images", cfg.Output.Dir)
	assert.Equal(t, "jpeg", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.Scale)
	assert.Equal(t, "heat", cfg.Output.Colormap)
	assert.True(t, cfg.Output.Caption)
	assert.True(t, cfg.Preview.Enabled)
	assert.Equal(t, 48, cfg.Preview.Width)
	assert.True(t, cfg.Report.Enabled)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("BYTEGRAM_OUTPUT_SCALE", "3")
	t.Setenv("BYTEGRAM_OUTPUT_COLORMAP", "viridis")

	path := writeConfig(t, "output:\n  scale: 2\n")
	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Output.Scale)
	assert.Equal(t, "viridis", cfg.Output.Colormap)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "output:\n  scale: 2\n  format: tiff\n")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--scale", "5", "--preview"}))

	v := New()
	require.NoError(t, BindFlags(v, fs))
	cfg, err := Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Output.Scale, "flag wins over file")
	assert.Equal(t, "tiff", cfg.Output.Format, "file wins over unset flag")
	assert.True(t, cfg.Preview.Enabled)
}

func TestValidateErrors(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load(New(), "")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Output.Format = "webp" }},
		{"scale zero", func(c *Config) { c.Output.Scale = 0 }},
		{"scale too large", func(c *Config) { c.Output.Scale = MaxScale + 1 }},
		{"colormap", func(c *Config) { c.Output.Colormap = "sepia" }},
		{"preview width", func(c *Config) { c.Preview.Width = -1 }},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestColormapFlagUsage(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	usage := fs.Lookup("colormap").Usage

	for _, name := range imageutil.ColormapNames() {
		assert.Contains(t, usage, name)
	}
	for _, name := range imageutil.CVColormapNames() {
		assert.Contains(t, usage, name)
	}
	assert.Equal(t, imageutil.OpenCVAvailable, strings.Contains(usage, "OpenCV"))
}
