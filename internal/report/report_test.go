package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-kulish/segy-inspector/internal/header"
	"github.com/roman-kulish/segy-inspector/internal/segy"
)

func TestWriteHeaderReport(t *testing.T) {
	info := segy.FileInfo{
		Filename:         "survey.sgy",
		TraceCount:       1234,
		SampleCount:      1500,
		SampleIntervalMs: 2,
		TimeAxis:         []float64{0, 2, 4, 2998},
	}
	bin := segy.BinaryHeader{"Format": 5, "Interval": 2000, "JobID": 7}
	text := segy.TextHeader{
		{Key: "C01", Text: "CLIENT ACME"},
		{Key: "C02", Text: "LINE 42"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHeaderReport(&buf, info, bin, text))

	rule := strings.Repeat("=", 50)
	want := strings.Join([]string{
		"FILE INFORMATION",
		rule,
		"Filename: survey.sgy",
		"Number of Traces: 1,234",
		"Number of Samples: 1,500",
		"Sample Rate: 2.00 ms",
		"Time Window: 0.0 - 2998.0 ms",
		"",
		"BINARY HEADERS",
		rule,
		"JobID: 7",
		"Interval: 2000",
		"Format: 5 (4-byte IEEE floating-point)",
		"",
		"TEXT HEADERS",
		rule,
		"C01: CLIENT ACME",
		"C02: LINE 42",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteTraceReport(t *testing.T) {
	h := segy.TraceHeader{
		header.TraceSequenceLine:    3,
		header.TraceCoordinateUnits: 2,
		header.TraceSourceX:         -12,
	}

	var plain bytes.Buffer
	require.NoError(t, WriteTraceReport(&plain, 3, h))
	assert.Equal(t, strings.Join([]string{
		"TRACE 3 HEADER",
		strings.Repeat("=", 50),
		"TRACE_SEQUENCE_LINE: 3",
		"SourceX: -12",
		"CoordinateUnits: 2 (Seconds of arc)",
		"",
	}, "\n"), plain.String())

	var located bytes.Buffer
	require.NoError(t, WriteTraceReport(&located, 3, h, WithByteLocations()))
	assert.Contains(t, located.String(), "TRACE_SEQUENCE_LINE: 3 [bytes 1-4]\n")
	assert.Contains(t, located.String(), "CoordinateUnits: 2 [bytes 89-90] (Seconds of arc)\n")
}
