package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/roman-kulish/segy-inspector/internal/storage"
)

func (a *app) catalogCommand() *cobra.Command {
	var runID int64

	cmd := &cobra.Command{
		Use:   "catalog [DB]",
		Short: "List recorded batch runs, or the files of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err = a.validate(); err != nil {
				return err
			}

			dbPath := a.config.Catalog.Path
			if len(args) == 1 {
				dbPath = args[0]
			}
			if dbPath == "" {
				return errors.New("catalog path is required")
			}
			if _, err = os.Stat(dbPath); err != nil {
				return fmt.Errorf("catalog '%s' does not exist: %w", dbPath, err)
			}

			store := storage.NewSqliteStore(dbPath)
			defer func() {
				err = errors.Join(err, store.Close())
			}()

			if runID > 0 {
				return listFiles(cmd, store, runID)
			}
			return listRuns(cmd, store)
		},
	}

	cmd.Flags().Int64VarP(&runID, "run", "r", 0, "Show the files of this run")
	return cmd
}

func listRuns(cmd *cobra.Command, store storage.Store) error {
	runs, err := store.Runs(cmd.Context())
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, r := range runs {
		files, err := store.Files(cmd.Context(), r.ID)
		if err != nil {
			return err
		}
		failed := 0
		for _, f := range files {
			if f.Status == storage.StatusFailed {
				failed++
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%d files\t%d failed\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), len(files), failed)
	}
	return w.Flush()
}

func listFiles(cmd *cobra.Command, store storage.Store, runID int64) error {
	if _, err := store.Run(cmd.Context(), runID); err != nil {
		return fmt.Errorf("run %d: %w", runID, err)
	}
	files, err := store.Files(cmd.Context(), runID)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, f := range files {
		writeFileRecord(w, f)
	}
	return w.Flush()
}

func writeFileRecord(w io.Writer, f *storage.FileRecord) {
	if f.Status == storage.StatusFailed {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Path, f.Status, f.Message)
		return
	}

	line := fmt.Sprintf("%s\t%s\t%s traces x %s samples @ %gms",
		f.Path, f.Status, humanize.Comma(int64(f.TraceCount)), humanize.Comma(int64(f.SampleCount)), f.SampleIntervalMs)
	if f.SpatialReference != "" {
		line += "\t" + f.SpatialReference
	}
	if f.LineLength != nil {
		line += fmt.Sprintf("\t%s m", humanize.CommafWithDigits(*f.LineLength, 1))
	}
	fmt.Fprintln(w, line)
}
