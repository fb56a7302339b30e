// Package report formats SEG-Y headers as plain text.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/roman-kulish/segy-inspector/internal/header"
	"github.com/roman-kulish/segy-inspector/internal/segy"
)

const ruleWidth = 50

func section(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", ruleWidth))
}

// WriteHeaderReport writes the file summary, the binary header and the textual
// header. Binary fields are listed in byte order; enumerated values carry
// their description in parentheses.
func WriteHeaderReport(w io.Writer, info segy.FileInfo, bin segy.BinaryHeader, text segy.TextHeader) error {
	bw := bufio.NewWriter(w)

	section(bw, "FILE INFORMATION")
	fmt.Fprintf(bw, "Filename: %s\n", info.Filename)
	fmt.Fprintf(bw, "Number of Traces: %s\n", humanize.Comma(int64(info.TraceCount)))
	fmt.Fprintf(bw, "Number of Samples: %s\n", humanize.Comma(int64(info.SampleCount)))
	fmt.Fprintf(bw, "Sample Rate: %.2f ms\n", info.SampleIntervalMs)
	if n := len(info.TimeAxis); n > 0 {
		fmt.Fprintf(bw, "Time Window: %.1f - %.1f ms\n", info.TimeAxis[0], info.TimeAxis[n-1])
	}
	fmt.Fprintln(bw)

	section(bw, "BINARY HEADERS")
	for _, f := range header.BinaryFields() {
		v, ok := bin.Value(f.Name)
		if !ok {
			continue
		}
		if desc, ok := header.DescribeBinaryField(f.Name, v); ok {
			fmt.Fprintf(bw, "%s: %d (%s)\n", f.Name, v, desc)
		} else {
			fmt.Fprintf(bw, "%s: %d\n", f.Name, v)
		}
	}
	fmt.Fprintln(bw)

	section(bw, "TEXT HEADERS")
	for _, card := range text {
		fmt.Fprintf(bw, "%s: %s\n", card.Key, card.Text)
	}
	fmt.Fprintln(bw)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing header report: %w", err)
	}
	return nil
}

// TraceReportOption configures WriteTraceReport.
type TraceReportOption func(*traceReport)

type traceReport struct {
	byteLocations bool
}

// WithByteLocations appends the byte range of every field.
func WithByteLocations() TraceReportOption {
	return func(r *traceReport) {
		r.byteLocations = true
	}
}

// WriteTraceReport writes the header of the 1-based trace number n.
func WriteTraceReport(w io.Writer, n int, h segy.TraceHeader, opts ...TraceReportOption) error {
	var cfg traceReport
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	section(bw, fmt.Sprintf("TRACE %s HEADER", humanize.Comma(int64(n))))

	for _, f := range header.TraceFields() {
		v, ok := h.Value(f.Name)
		if !ok {
			continue
		}

		line := fmt.Sprintf("%s: %d", f.Name, v)
		if cfg.byteLocations {
			line += fmt.Sprintf(" [bytes %s]", f.ByteRange())
		}
		if desc, ok := f.Describe(v); ok {
			line += fmt.Sprintf(" (%s)", desc)
		}
		fmt.Fprintln(bw, line)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing trace report: %w", err)
	}
	return nil
}
