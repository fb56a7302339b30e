// Package segy decodes SEG-Y files into headers and a sample matrix.
package segy

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/roman-kulish/segy-inspector/internal/header"
)

const (
	binaryHeaderOffset = textHeaderSize
	binaryHeaderSize   = 400
	fileHeaderSize     = textHeaderSize + binaryHeaderSize
	traceHeaderSize    = 240

	defaultIntervalMicros = 4000
	byteOrderConstant     = 0x01020304
	readBufferSize        = 1 << 20
)

// sampleFormat describes how one data sample format code is stored.
type sampleFormat struct {
	size   int
	decode func(order binary.ByteOrder, p []byte) float64
}

var sampleFormats = map[int64]sampleFormat{
	1:  {4, func(o binary.ByteOrder, p []byte) float64 { return IBMToFloat64(o.Uint32(p)) }},
	2:  {4, func(o binary.ByteOrder, p []byte) float64 { return float64(int32(o.Uint32(p))) }},
	3:  {2, func(o binary.ByteOrder, p []byte) float64 { return float64(int16(o.Uint16(p))) }},
	5:  {4, func(o binary.ByteOrder, p []byte) float64 { return float64(math.Float32frombits(o.Uint32(p))) }},
	6:  {8, func(o binary.ByteOrder, p []byte) float64 { return math.Float64frombits(o.Uint64(p)) }},
	8:  {1, func(_ binary.ByteOrder, p []byte) float64 { return float64(int8(p[0])) }},
	9:  {8, func(o binary.ByteOrder, p []byte) float64 { return float64(int64(o.Uint64(p))) }},
	10: {4, func(o binary.ByteOrder, p []byte) float64 { return float64(o.Uint32(p)) }},
	11: {2, func(o binary.ByteOrder, p []byte) float64 { return float64(o.Uint16(p)) }},
	12: {8, func(o binary.ByteOrder, p []byte) float64 { return float64(o.Uint64(p)) }},
	16: {1, func(_ binary.ByteOrder, p []byte) float64 { return float64(p[0]) }},
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithStrict rejects files with an unknown sample format or a zero sample interval
// instead of falling back to defaults.
func WithStrict(strict bool) ReaderOption {
	return func(r *Reader) {
		r.strict = strict
	}
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(logger *slog.Logger) ReaderOption {
	return func(r *Reader) {
		r.logger = logger
	}
}

// Reader decodes SEG-Y files with a fixed trace length.
type Reader struct {
	strict bool
	logger *slog.Logger
}

var _ Loader = (*Reader)(nil)

// NewReader creates a new Reader.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load opens and decodes the file at path. Decode failures are returned as
// *DecodeError.
func (r *Reader) Load(ctx context.Context, path string) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening SEG-Y file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file size: %w", err)
	}

	ds, err := r.Decode(f, st.Size(), name)
	if err != nil {
		return nil, Explain(name, err)
	}
	return ds, nil
}

// Decode decodes a SEG-Y stream of the given size.
func (r *Reader) Decode(src io.ReaderAt, size int64, name string) (*Dataset, error) {
	if size < fileHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortFile, size)
	}

	head := make([]byte, fileHeaderSize)
	if _, err := src.ReadAt(head, 0); err != nil {
		return nil, fmt.Errorf("reading file headers: %w", err)
	}

	text, err := decodeText(head[:textHeaderSize])
	if err != nil {
		return nil, err
	}

	order := detectByteOrder(head[binaryHeaderOffset:])
	bin := decodeBinaryHeader(order, head[binaryHeaderOffset:])

	format := bin["Format"]
	sf, ok := sampleFormats[format]
	if !ok {
		if format == 4 {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
		}
		if r.strict {
			return nil, fmt.Errorf("%w: %d (%w)", ErrUnsupportedFormat, format, ErrStrict)
		}
		r.logger.Warn("unknown sample format, assuming IBM float", slog.String("file", name), slog.Int64("format", format))
		sf = sampleFormats[1]
	}

	dataStart := int64(fileHeaderSize)
	if ext := bin["ExtendedHeaders"]; ext > 0 {
		dataStart += ext * textHeaderSize
	}

	firstHeader, err := r.peekTraceHeader(src, order, dataStart, size)
	if err != nil {
		return nil, err
	}

	samples := sampleCount(bin, firstHeader)
	if samples <= 0 {
		return nil, fmt.Errorf("%w: sample count is zero", ErrInconsistentTraceCount)
	}

	traceSize := int64(traceHeaderSize + samples*sf.size)
	dataLen := size - dataStart
	if dataLen <= 0 {
		return nil, ErrNoTraces
	}
	if dataLen%traceSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes of trace data is not a multiple of %d-byte traces",
			ErrInconsistentTraceCount, dataLen, traceSize)
	}
	traces := int(dataLen / traceSize)

	intervalMicros := bin["Interval"]
	if intervalMicros <= 0 {
		intervalMicros = firstHeader[header.TraceSampleInterval]
	}
	if intervalMicros <= 0 {
		if r.strict {
			return nil, fmt.Errorf("sample interval is zero (%w)", ErrStrict)
		}
		intervalMicros = defaultIntervalMicros
	}

	ds := &Dataset{
		Binary: bin,
		Text:   parseTextCards(text),
		Traces: make(TraceHeaderTable, traces),
		Data:   NewMatrix(traces, samples),
	}

	in := bufio.NewReaderSize(io.NewSectionReader(src, dataStart, dataLen), readBufferSize)
	buf := make([]byte, traceSize)
	for i := range traces {
		if _, err = io.ReadFull(in, buf); err != nil {
			return nil, fmt.Errorf("reading trace %d: %w", i+1, err)
		}

		th := decodeTraceHeader(order, buf[:traceHeaderSize])
		if n := th[header.TraceSampleCount]; n != 0 && int(n) != samples {
			return nil, fmt.Errorf("%w: trace %d declares %d samples, expected %d",
				ErrNonUniformTraceLength, i+1, n, samples)
		}
		ds.Traces[i] = th

		row := ds.Data.Trace(i)
		data := buf[traceHeaderSize:]
		for j := range row {
			row[j] = sf.decode(order, data[j*sf.size:(j+1)*sf.size])
		}
	}

	dtMs := float64(intervalMicros) / 1000
	t0 := float64(firstHeader[header.TraceDelayRecording])
	axis := make([]float64, samples)
	for i := range axis {
		axis[i] = t0 + float64(i)*dtMs
	}

	ds.Info = FileInfo{
		Filename:         name,
		TraceCount:       traces,
		SampleCount:      samples,
		SampleIntervalMs: dtMs,
		TimeAxis:         axis,
	}
	return ds, nil
}

func (r *Reader) peekTraceHeader(src io.ReaderAt, order binary.ByteOrder, offset, size int64) (TraceHeader, error) {
	if size < offset+traceHeaderSize {
		return nil, ErrNoTraces
	}

	p := make([]byte, traceHeaderSize)
	if _, err := src.ReadAt(p, offset); err != nil {
		return nil, fmt.Errorf("reading first trace header: %w", err)
	}
	return decodeTraceHeader(order, p), nil
}

func sampleCount(bin BinaryHeader, first TraceHeader) int {
	if n := bin["Samples"]; n > 0 {
		return int(n)
	}
	if n := bin["ExtSamples"]; n > 0 {
		return int(n)
	}
	return int(first[header.TraceSampleCount])
}

// detectByteOrder uses the rev 2 integer constant at bytes 3297-3300; files
// without it are big-endian.
func detectByteOrder(bin []byte) binary.ByteOrder {
	const off = 3297 - 3201
	if binary.LittleEndian.Uint32(bin[off:off+4]) == byteOrderConstant {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func decodeBinaryHeader(order binary.ByteOrder, p []byte) BinaryHeader {
	bin := make(BinaryHeader, len(binaryFields))
	for _, f := range binaryFields {
		off := f.Offset - 3201
		bin[f.Name] = readField(order, p[off:off+f.Size], f.Unsigned)
	}
	return bin
}

func decodeTraceHeader(order binary.ByteOrder, p []byte) TraceHeader {
	th := make(TraceHeader, len(traceFields))
	for _, f := range traceFields {
		off := f.Offset - 1
		th[f.Name] = readField(order, p[off:off+f.Size], f.Unsigned)
	}
	return th
}

var (
	binaryFields = header.BinaryFields()
	traceFields  = header.TraceFields()
)

func readField(order binary.ByteOrder, p []byte, unsigned bool) int64 {
	switch len(p) {
	case 1:
		if unsigned {
			return int64(p[0])
		}
		return int64(int8(p[0]))
	case 2:
		if unsigned {
			return int64(order.Uint16(p))
		}
		return int64(int16(order.Uint16(p)))
	case 4:
		if unsigned {
			return int64(order.Uint32(p))
		}
		return int64(int32(order.Uint32(p)))
	case 8:
		return int64(order.Uint64(p))
	}
	return 0
}
