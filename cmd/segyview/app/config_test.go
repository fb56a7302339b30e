package app

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-kulish/segy-inspector/internal/amplitude"
	"github.com/roman-kulish/segy-inspector/internal/render"
	"github.com/roman-kulish/segy-inspector/internal/vector"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segyview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	require.NoError(t, c.Validate())

	assert.Equal(t, "bupu", c.Render.Colormap)
	assert.Equal(t, 1500.0, c.Render.Velocity)

	p, err := c.Policy()
	require.NoError(t, err)
	assert.Equal(t, amplitude.Percentile(99), p)

	level, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
settings:
  logLevel: debug
render:
  colormap: Seismic
  clip: stddev
  stdDevs: 3
  depth: true
  velocity: 2000
export:
  format: geojson
  outputDir: out
catalog:
  path: runs.sqlite
`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "debug", c.Settings.LogLevel)
	assert.Equal(t, "runs.sqlite", c.Catalog.Path)
	assert.Equal(t, "out", c.Export.OutputDir)
	assert.Equal(t, 99.0, c.Render.Percentile, "unset keys keep their defaults")

	p, err := c.Policy()
	require.NoError(t, err)
	assert.Equal(t, amplitude.StdDev(3), p)

	rc, err := c.RendererConfig()
	require.NoError(t, err)
	assert.Equal(t, render.Seismic, rc.Colormap)
	assert.Equal(t, render.DefaultMaxWidth, rc.MaxWidth)

	_, err = vector.Lookup(c.Export.Format)
	assert.NoError(t, err)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), c)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "render:\n  colourmap: gray\n"))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateReportsEveryField(t *testing.T) {
	c := NewConfig()
	c.Settings.LogLevel = "loud"
	c.Render.Colormap = "rainbow"
	c.Render.Percentile = 20
	c.Render.Depth = true
	c.Render.Velocity = 0
	c.Render.ImageFormat = "tiff"
	c.Export.Format = "kml"

	err := c.Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))

	assert.ErrorIs(t, err, amplitude.ErrInvalidPolicy)
	assert.ErrorIs(t, err, amplitude.ErrInvalidVelocity)
	assert.ErrorIs(t, err, vector.ErrWriterUnavailable)
	for _, field := range []string{"settings.logLevel", "render.colormap", "render.clip", "render.velocity", "render.imageFormat", "export.format"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestPolicyModes(t *testing.T) {
	tests := []struct {
		clip string
		want amplitude.Policy
	}{
		{"percentile", amplitude.Percentile(99)},
		{"stddev", amplitude.StdDev(2)},
		{"none", amplitude.None()},
		{"", amplitude.None()},
	}

	for _, tt := range tests {
		t.Run(tt.clip, func(t *testing.T) {
			c := NewConfig()
			c.Render.Clip = tt.clip

			p, err := c.Policy()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}

	c := NewConfig()
	c.Render.Clip = "median"
	_, err := c.Policy()
	assert.ErrorIs(t, err, amplitude.ErrInvalidPolicy)
}

func TestValidateRejectsNaNParameters(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, `
render:
  percentile: .nan
  depth: true
  velocity: .nan
`))
	require.NoError(t, err)

	err = c.Validate()
	assert.ErrorIs(t, err, amplitude.ErrInvalidPolicy)
	assert.ErrorIs(t, err, amplitude.ErrInvalidVelocity)

	c = NewConfig()
	c.Render.Clip = "stddev"
	c.Render.StdDevs = math.Inf(1)
	assert.ErrorIs(t, c.Validate(), amplitude.ErrInvalidPolicy)
}

func TestAmplitudeSettingsRemembersBothParameters(t *testing.T) {
	c := NewConfig()
	c.Render.Clip = "stddev"
	c.Render.Percentile = 95
	c.Render.StdDevs = 3

	s, err := c.AmplitudeSettings()
	require.NoError(t, err)
	assert.Equal(t, amplitude.ModeStdDev, s.Mode())
	assert.Equal(t, amplitude.StdDev(3), s.Policy())

	s.Disable()
	assert.Equal(t, amplitude.None(), s.Policy())

	s.EnablePercentile(95)
	assert.Equal(t, amplitude.Percentile(95), s.Policy(), "enabling percentile disables std-dev")
}
