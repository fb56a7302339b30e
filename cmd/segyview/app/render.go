package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roman-kulish/segy-inspector/internal/batch"
	"github.com/roman-kulish/segy-inspector/internal/render"
)

// renderFlags override the render section of the configuration.
type renderFlags struct {
	colormap       string
	clip           string
	percentile     float64
	stdDevs        float64
	fullResolution bool
	depth          bool
	velocity       float64
	imageFormat    string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.colormap, "colormap", "", "Colormap ["+strings.Join(render.Colormaps(), ", ")+"]")
	fs.StringVar(&f.clip, "clip", "", "Amplitude clipping [percentile, stddev, none]")
	fs.Float64Var(&f.percentile, "percentile", 0, "Clipping percentile in [50, 100]")
	fs.Float64Var(&f.stdDevs, "stddev", 0, "Clip to mean ± k standard deviations")
	fs.BoolVar(&f.fullResolution, "full-resolution", false, "Draw one pixel per sample")
	fs.BoolVar(&f.depth, "depth", false, "Label the vertical axis in depth instead of two-way time")
	fs.Float64Var(&f.velocity, "velocity", 0, "Velocity for the depth conversion (m/s)")
	fs.StringVar(&f.imageFormat, "image-format", "", "Output image format [png, jpeg]")
}

func (f *renderFlags) override(cmd *cobra.Command) func(*Config) {
	return func(c *Config) {
		fs := cmd.Flags()
		if fs.Changed("colormap") {
			c.Render.Colormap = f.colormap
		}
		if fs.Changed("clip") {
			c.Render.Clip = f.clip
		}
		if fs.Changed("percentile") {
			c.Render.Percentile = f.percentile
		}
		if fs.Changed("stddev") {
			c.Render.StdDevs = f.stdDevs
		}
		if fs.Changed("full-resolution") {
			c.Render.FullResolution = f.fullResolution
		}
		if fs.Changed("depth") {
			c.Render.Depth = f.depth
		}
		if fs.Changed("velocity") {
			c.Render.Velocity = f.velocity
		}
		if fs.Changed("image-format") {
			c.Render.ImageFormat = f.imageFormat
		}
	}
}

func (a *app) renderCommand() *cobra.Command {
	var (
		flags  renderFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render the section as an annotated image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.validate(flags.override(cmd)); err != nil {
				return err
			}

			policy, err := a.config.Policy()
			if err != nil {
				return err
			}
			format, err := render.ParseImageFormat(a.config.Render.ImageFormat)
			if err != nil {
				return err
			}
			renderer, err := a.renderer()
			if err != nil {
				return err
			}

			ds, err := a.reader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			plot, err := batch.NewPlot(ds, policy, a.config.Render.Depth, a.config.Render.Velocity)
			if err != nil {
				return err
			}

			if output == "" {
				output = batch.OutputBase(a.config.Export.OutputDir, args[0], ds.Info.Filename) + batch.PlotSuffix + format.Extension()
			}

			a.logger.Info("rendering section",
				slog.Group("image",
					slog.String("destination", output),
					slog.String("format", string(format)),
					slog.String("colormap", a.config.Render.Colormap),
					slog.String("clip", policy.String()),
					slog.Int("traces", ds.Info.TraceCount),
					slog.Int("samples", ds.Info.SampleCount),
				))

			img, err := renderer.Render(plot)
			if err != nil {
				return fmt.Errorf("rendering section: %w", err)
			}
			return render.SaveImage(output, img, format)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path to the output image")
	return cmd
}

func (a *app) renderer() (*render.Renderer, error) {
	rc, err := a.config.RendererConfig()
	if err != nil {
		return nil, err
	}
	renderer, err := render.NewRenderer(rc)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	return renderer, nil
}
