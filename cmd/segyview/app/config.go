package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roman-kulish/segy-inspector/internal/amplitude"
	"github.com/roman-kulish/segy-inspector/internal/render"
	"github.com/roman-kulish/segy-inspector/internal/vector"
)

// Config represents the main application configuration
type Config struct {
	Settings Settings      `yaml:"settings"`
	Render   RenderConfig  `yaml:"render"`
	Export   ExportConfig  `yaml:"export"`
	Catalog  CatalogConfig `yaml:"catalog"`
}

// Settings represents global application settings
type Settings struct {
	LogLevel string `yaml:"logLevel"`
	Strict   bool   `yaml:"strict"`
}

// RenderConfig controls amplitude clipping and image output.
type RenderConfig struct {
	Colormap       string  `yaml:"colormap"`
	Clip           string  `yaml:"clip"` // percentile, stddev or none
	Percentile     float64 `yaml:"percentile"`
	StdDevs        float64 `yaml:"stdDevs"`
	FullResolution bool    `yaml:"fullResolution"`
	MaxWidth       int     `yaml:"maxWidth"`
	MaxHeight      int     `yaml:"maxHeight"`
	Depth          bool    `yaml:"depth"`
	Velocity       float64 `yaml:"velocity"` // m/s
	ImageFormat    string  `yaml:"imageFormat"`
}

// ExportConfig represents navigation export settings
type ExportConfig struct {
	Format    string `yaml:"format"`
	OutputDir string `yaml:"outputDir"`
}

// CatalogConfig represents catalog settings. An empty path disables the catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Settings: Settings{LogLevel: "info"},
		Render: RenderConfig{
			Colormap:    string(render.DefaultColormap),
			Clip:        amplitude.ModePercentile.String(),
			Percentile:  amplitude.DefaultPercentile,
			StdDevs:     amplitude.DefaultStdDevs,
			MaxWidth:    render.DefaultMaxWidth,
			MaxHeight:   render.DefaultMaxHeight,
			Velocity:    amplitude.DefaultVelocity,
			ImageFormat: string(render.ImagePNG),
		},
		Export: ExportConfig{Format: string(vector.FormatShapefile)},
	}
}

// LoadConfig reads a YAML configuration on top of the defaults. Unknown keys
// are rejected.
func LoadConfig(path string) (*Config, error) {
	c := NewConfig()

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return c, nil
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, &ConfigError{Field: "settings.logLevel", Err: err})
	}
	if _, err := render.ParseColormap(c.Render.Colormap); err != nil {
		errs = append(errs, &ConfigError{Field: "render.colormap", Err: err})
	}
	if _, err := c.Policy(); err != nil {
		errs = append(errs, &ConfigError{Field: "render.clip", Err: err})
	}
	if c.Render.Depth {
		if err := amplitude.ValidateVelocity(c.Render.Velocity); err != nil {
			errs = append(errs, &ConfigError{Field: "render.velocity", Err: err})
		}
	}
	if c.Render.MaxWidth < 0 || c.Render.MaxHeight < 0 {
		errs = append(errs, &ConfigError{Field: "render.maxWidth", Err: errors.New("image bounds must not be negative")})
	}
	if _, err := render.ParseImageFormat(c.Render.ImageFormat); err != nil {
		errs = append(errs, &ConfigError{Field: "render.imageFormat", Err: err})
	}
	if _, err := vector.Lookup(c.Export.Format); err != nil {
		errs = append(errs, &ConfigError{Field: "export.format", Err: err})
	}

	return errors.Join(errs...)
}

// LogLevel parses settings.logLevel. An empty level is info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Settings.LogLevel == "" {
		return level, nil
	}
	err := level.UnmarshalText([]byte(c.Settings.LogLevel))
	return level, err
}

// AmplitudeSettings returns the clipping toggle with both parameters
// remembered and the mode named by render.clip active.
func (c *Config) AmplitudeSettings() (amplitude.Settings, error) {
	mode, err := amplitude.ParseMode(c.Render.Clip)
	if err != nil {
		return amplitude.Settings{}, err
	}

	var s amplitude.Settings
	s.EnableStdDev(c.Render.StdDevs)
	s.EnablePercentile(c.Render.Percentile)
	switch mode {
	case amplitude.ModeStdDev:
		s.EnableStdDev(c.Render.StdDevs)
	case amplitude.ModeNone:
		s.Disable()
	}
	return s, nil
}

// Policy returns the validated clipping policy of the active mode.
func (c *Config) Policy() (amplitude.Policy, error) {
	s, err := c.AmplitudeSettings()
	if err != nil {
		return amplitude.Policy{}, err
	}
	p := s.Policy()
	return p, p.Validate()
}

// RendererConfig maps the render section onto the renderer.
func (c *Config) RendererConfig() (render.Config, error) {
	cm, err := render.ParseColormap(c.Render.Colormap)
	if err != nil {
		return render.Config{}, err
	}
	return render.Config{
		Colormap:       cm,
		FullResolution: c.Render.FullResolution,
		MaxWidth:       c.Render.MaxWidth,
		MaxHeight:      c.Render.MaxHeight,
	}, nil
}
