package app

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roman-kulish/segy-inspector/internal/header"
	"github.com/roman-kulish/segy-inspector/internal/report"
)

func (a *app) infoCommand() *cobra.Command {
	var (
		traces   []int
		bytes    bool
		describe []string
	)

	cmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Print the file, binary and textual headers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range describe {
				if err := describeField(out, name); err != nil {
					return err
				}
			}

			ds, err := a.reader().Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err = report.WriteHeaderReport(out, ds.Info, ds.Binary, ds.Text); err != nil {
				return err
			}

			var opts []report.TraceReportOption
			if bytes {
				opts = append(opts, report.WithByteLocations())
			}
			for _, n := range traces {
				h, ok := ds.Traces.Trace(n)
				if !ok {
					return fmt.Errorf("trace %d is out of range [1, %d]", n, len(ds.Traces))
				}
				fmt.Fprintln(out)
				if err = report.WriteTraceReport(out, n, h, opts...); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&traces, "trace", "t", nil, "Print the header of the 1-based trace number (repeatable)")
	cmd.Flags().BoolVar(&bytes, "bytes", false, "Show the byte range of every trace header field")
	cmd.Flags().StringSliceVar(&describe, "describe", nil, "Show the description of a binary or trace header field")
	return cmd
}

// describeField prints the descriptor of a binary or trace header field.
// Binary aliases win when a name exists in both tables.
func describeField(w io.Writer, name string) error {
	d, ok := header.BinaryField(name)
	if !ok {
		if d, ok = header.TraceField(name); !ok {
			return fmt.Errorf("unknown header field '%s'", name)
		}
	}

	fmt.Fprintf(w, "%s [bytes %s]\n%s\n", d.Name, d.ByteRange(), d.Description)
	for _, code := range slices.Sorted(maps.Keys(d.Values)) {
		fmt.Fprintf(w, "  %d: %s\n", code, d.Values[code])
	}
	fmt.Fprintln(w)
	return nil
}
