package app

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roman-kulish/segy-inspector/internal/segy"
)

type app struct {
	logger   *slog.Logger
	logLevel *slog.LevelVar

	configPath string
	level      string
	config     *Config
}

// NewRootCommand builds the segyview command tree. The level of logger is
// controlled through logLevel once the configuration is loaded.
func NewRootCommand(logger *slog.Logger, logLevel *slog.LevelVar) *cobra.Command {
	a := &app{logger: logger, logLevel: logLevel}

	root := &cobra.Command{
		Use:   "segyview",
		Short: "Inspect, render and export SEG-Y seismic files",
		Long: `segyview decodes SEG-Y files and reports their headers, renders sections
as annotated images, and exports trace navigation as point and line layers.

Examples:
  segyview info line42.sgy --trace 1 --bytes
  segyview render line42.sgy --colormap seismic --clip stddev --stddev 2
  segyview export line42.sgy --format geojson
  segyview batch data/*.sgy --output-dir out --catalog runs.sqlite`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the configuration file")
	root.PersistentFlags().StringVar(&a.level, "log-level", "", "Log level [debug, info, warn, error]")

	root.AddCommand(
		a.infoCommand(),
		a.renderCommand(),
		a.exportCommand(),
		a.batchCommand(),
		a.catalogCommand(),
	)
	return root
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	config := NewConfig()
	if a.configPath != "" {
		var err error
		if config, err = LoadConfig(a.configPath); err != nil {
			return fmt.Errorf("failed to load configuration file: %w", err)
		}
		a.logger.Debug("loaded configuration", slog.String("path", a.configPath))
	}
	if cmd.Flags().Changed("log-level") {
		config.Settings.LogLevel = a.level
	}

	level, err := config.LogLevel()
	if err != nil {
		return &ConfigError{Field: "settings.logLevel", Err: err}
	}
	a.logLevel.Set(level)

	a.config = config
	return nil
}

// validate applies command line overrides and checks the result.
func (a *app) validate(overrides ...func(*Config)) error {
	for _, override := range overrides {
		override(a.config)
	}
	return a.config.Validate()
}

func (a *app) reader() *segy.Reader {
	return segy.NewReader(
		segy.WithStrict(a.config.Settings.Strict),
		segy.WithLogger(a.logger))
}
