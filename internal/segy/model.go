package segy

import "context"

// FileInfo summarises a loaded file. It is immutable once produced.
type FileInfo struct {
	Filename         string    // Base name of the file
	TraceCount       int       // Number of traces
	SampleCount      int       // Samples per trace
	SampleIntervalMs float64   // Sample interval in milliseconds
	TimeAxis         []float64 // Two-way time of every sample in milliseconds
}

// BinaryHeader maps binary header aliases (e.g. "Format") to their values.
type BinaryHeader map[string]int64

// Value returns the value of a binary header field.
func (b BinaryHeader) Value(alias string) (int64, bool) {
	v, ok := b[alias]
	return v, ok
}

// TraceHeader maps trace header field names to their values.
// A missing key means the field is absent.
type TraceHeader map[string]int64

// Value returns the value of a trace header field.
func (h TraceHeader) Value(name string) (int64, bool) {
	v, ok := h[name]
	return v, ok
}

// ValueOr returns the value of a trace header field or def when it is absent.
func (h TraceHeader) ValueOr(name string, def int64) int64 {
	if v, ok := h[name]; ok {
		return v
	}
	return def
}

// TraceHeaderTable is the ordered list of trace headers. Index 0 holds trace 1.
type TraceHeaderTable []TraceHeader

// Trace returns the header of the 1-based trace number n.
func (t TraceHeaderTable) Trace(n int) (TraceHeader, bool) {
	if n < 1 || n > len(t) {
		return nil, false
	}
	return t[n-1], true
}

// TextCard is one 80-column card of the textual file header.
type TextCard struct {
	Key  string // "C01" .. "C40"
	Text string
}

// TextHeader is the parsed textual file header.
type TextHeader []TextCard

// Matrix holds trace samples, one row per trace.
type Matrix struct {
	Traces  int
	Samples int
	Values  []float64 // Row-major, len == Traces*Samples
}

// NewMatrix allocates a zeroed matrix.
func NewMatrix(traces, samples int) *Matrix {
	return &Matrix{
		Traces:  traces,
		Samples: samples,
		Values:  make([]float64, traces*samples),
	}
}

// Trace returns the samples of the 0-based trace i. The slice aliases the matrix.
func (m *Matrix) Trace(i int) []float64 {
	return m.Values[i*m.Samples : (i+1)*m.Samples]
}

// At returns sample j of the 0-based trace i.
func (m *Matrix) At(i, j int) float64 {
	return m.Values[i*m.Samples+j]
}

// Len returns the total number of samples.
func (m *Matrix) Len() int {
	return len(m.Values)
}

// Dataset is everything decoded from one file.
type Dataset struct {
	Info   FileInfo
	Binary BinaryHeader
	Text   TextHeader
	Traces TraceHeaderTable
	Data   *Matrix
}

// Loader opens and fully decodes a SEG-Y file.
type Loader interface {
	Load(ctx context.Context, path string) (*Dataset, error)
}
