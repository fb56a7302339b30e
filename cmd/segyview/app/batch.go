package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roman-kulish/segy-inspector/internal/batch"
	"github.com/roman-kulish/segy-inspector/internal/render"
	"github.com/roman-kulish/segy-inspector/internal/storage"
	"github.com/roman-kulish/segy-inspector/internal/vector"
)

// segyExtensions are matched case-insensitively when scanning a directory.
var segyExtensions = []string{".sgy", ".segy"}

func (a *app) batchCommand() *cobra.Command {
	var (
		rf      renderFlags
		ef      exportFlags
		catalog string
	)

	cmd := &cobra.Command{
		Use:   "batch FILE|DIR...",
		Short: "Render, report and export many files and combine their navigation",
		Long: `batch processes every file in order. For each file it writes the section
image, a header report and the navigation layers. Files that fail are counted
and skipped. When two or more files produce navigation, their points and lines
are merged into SEGY_Combined_Nav_points and SEGY_Combined_Nav_line.

Directories are scanned for .sgy and .segy files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := []func(*Config){rf.override(cmd), ef.override(cmd)}
			if cmd.Flags().Changed("catalog") {
				overrides = append(overrides, func(c *Config) { c.Catalog.Path = catalog })
			}
			if err := a.validate(overrides...); err != nil {
				return err
			}

			files, err := expandInputs(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no SEG-Y files found in %s", strings.Join(args, ", "))
			}

			agg, closeCatalog, err := a.aggregator()
			if err != nil {
				return err
			}
			defer closeCatalog()

			res := agg.Process(cmd.Context(), files)
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary())

			if res.Cancelled {
				return cmd.Context().Err()
			}
			return nil
		},
	}

	rf.register(cmd)
	ef.register(cmd)
	cmd.Flags().StringVar(&catalog, "catalog", "", "Record the run in this sqlite catalog")
	return cmd
}

func (a *app) aggregator() (*batch.Aggregator, func(), error) {
	policy, err := a.config.Policy()
	if err != nil {
		return nil, nil, err
	}
	format, err := render.ParseImageFormat(a.config.Render.ImageFormat)
	if err != nil {
		return nil, nil, err
	}
	writer, err := vector.Lookup(a.config.Export.Format)
	if err != nil {
		return nil, nil, err
	}
	renderer, err := a.renderer()
	if err != nil {
		return nil, nil, err
	}

	opts := []batch.Option{
		batch.WithLogger(a.logger),
		batch.WithProgress(func(index, total int, file string) {
			a.logger.Info("processing file",
				slog.Group("progress",
					slog.Int("current", index+1),
					slog.Int("total", total),
				),
				slog.String("file", file))
		}),
	}

	closeCatalog := func() {}
	if a.config.Catalog.Path != "" {
		store := storage.NewSqliteStore(a.config.Catalog.Path)
		opts = append(opts, batch.WithCatalog(store))
		closeCatalog = func() {
			if err := store.Close(); err != nil {
				a.logger.Warn("closing catalog", slog.String("error", err.Error()))
			}
		}
	}

	agg, err := batch.New(a.reader(), renderer, writer, batch.Settings{
		OutputDir:   a.config.Export.OutputDir,
		Policy:      policy,
		Depth:       a.config.Render.Depth,
		Velocity:    a.config.Render.Velocity,
		ImageFormat: format,
	}, opts...)
	if err != nil {
		closeCatalog()
		return nil, nil, err
	}
	return agg, closeCatalog, nil
}

// expandInputs replaces directories with the SEG-Y files they contain, sorted
// by name. Files are kept as given.
func expandInputs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !st.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("reading directory: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || !slices.Contains(segyExtensions, strings.ToLower(filepath.Ext(e.Name()))) {
				continue
			}
			files = append(files, filepath.Join(arg, e.Name()))
		}
	}
	return files, nil
}
