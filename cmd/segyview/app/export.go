package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roman-kulish/segy-inspector/internal/batch"
	"github.com/roman-kulish/segy-inspector/internal/navigation"
	"github.com/roman-kulish/segy-inspector/internal/vector"
)

type exportFlags struct {
	format    string
	outputDir string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Vector format ["+strings.Join(vector.Formats(), ", ")+"]")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Output directory (default: next to each input file)")
}

func (f *exportFlags) override(cmd *cobra.Command) func(*Config) {
	return func(c *Config) {
		if cmd.Flags().Changed("format") {
			c.Export.Format = f.format
		}
		if cmd.Flags().Changed("output-dir") {
			c.Export.OutputDir = f.outputDir
		}
	}
}

func (a *app) exportCommand() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export trace navigation as point and line layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.validate(flags.override(cmd)); err != nil {
				return err
			}

			writer, err := vector.Lookup(a.config.Export.Format)
			if err != nil {
				return err
			}

			ds, err := a.reader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			track := navigation.Build(ds.Info, ds.Traces)
			if track.Empty() {
				return fmt.Errorf("%s: %w", ds.Info.Filename, batch.ErrNoCoordinates)
			}

			base := batch.OutputBase(a.config.Export.OutputDir, args[0], ds.Info.Filename)
			paths, err := batch.ExportTrack(writer, base, track)
			if err != nil {
				return err
			}

			attrs := []any{
				slog.Int("points", len(track.Records)),
				slog.String("srs", string(track.SpatialReference)),
				slog.Any("files", paths),
			}
			if track.Line != nil {
				attrs = append(attrs, slog.Float64("length", track.Line.Length))
			}
			a.logger.Info("exported navigation", attrs...)

			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
