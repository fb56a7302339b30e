// Package segytest builds synthetic SEG-Y files for tests.
package segytest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/roman-kulish/segy-inspector/internal/header"
	"github.com/roman-kulish/segy-inspector/internal/segy"
)

// Trace is one synthetic trace.
type Trace struct {
	Header  map[string]int64
	Samples []float64
}

// File describes a synthetic SEG-Y file. Binary fields that are not set get
// Format=5, Samples=len(first trace) and Interval=4000.
type File struct {
	Text     string // Written card by card, 80 columns each
	EBCDIC   bool
	Binary   map[string]int64
	Traces   []Trace
	Trailing int // Extra bytes appended after the last trace
}

// Card formats a line of the textual header as a "Cnn" card.
func Card(n int, text string) string {
	line := "C" + leftPad(n) + " " + text
	if len(line) > 80 {
		return line[:80]
	}
	return line + strings.Repeat(" ", 80-len(line))
}

func leftPad(n int) string {
	s := []byte{'0' + byte(n/10%10), '0' + byte(n%10)}
	if s[0] == '0' {
		s[0] = ' '
	}
	return string(s)
}

// Bytes encodes the file.
func (f File) Bytes() []byte {
	bin := map[string]int64{"Format": 5, "Interval": 4000}
	if len(f.Traces) > 0 {
		bin["Samples"] = int64(len(f.Traces[0].Samples))
	}
	for k, v := range f.Binary {
		bin[k] = v
	}

	out := make([]byte, 3600)
	copy(out, encodeText(f.Text, f.EBCDIC))

	for name, v := range bin {
		d, ok := header.BinaryField(name)
		if !ok {
			continue
		}
		putField(out[d.Offset-1:d.Offset-1+d.Size], v)
	}

	size := sampleSize(bin["Format"])
	for _, tr := range f.Traces {
		th := make([]byte, 240)
		for name, v := range tr.Header {
			d, ok := header.TraceField(name)
			if !ok {
				continue
			}
			putField(th[d.Offset-1:d.Offset-1+d.Size], v)
		}
		out = append(out, th...)

		data := make([]byte, len(tr.Samples)*size)
		for i, s := range tr.Samples {
			putSample(data[i*size:(i+1)*size], bin["Format"], s)
		}
		out = append(out, data...)
	}

	return append(out, make([]byte, f.Trailing)...)
}

// Write stores the file in dir and returns its path.
func (f File) Write(tb testing.TB, dir, name string) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, f.Bytes(), 0o644); err != nil {
		tb.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func encodeText(text string, ebcdic bool) []byte {
	if len(text) < 3200 {
		text += strings.Repeat(" ", 3200-len(text))
	}
	text = text[:3200]

	if !ebcdic {
		return []byte(text)
	}
	p, err := charmap.CodePage037.NewEncoder().Bytes([]byte(text))
	if err != nil {
		panic(err)
	}
	return p
}

func putField(p []byte, v int64) {
	switch len(p) {
	case 1:
		p[0] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(p, uint16(v))
	case 4:
		binary.BigEndian.PutUint32(p, uint32(v))
	case 8:
		binary.BigEndian.PutUint64(p, uint64(v))
	}
}

func sampleSize(format int64) int {
	switch format {
	case 3:
		return 2
	case 8:
		return 1
	default:
		return 4
	}
}

func putSample(p []byte, format int64, v float64) {
	switch format {
	case 1:
		binary.BigEndian.PutUint32(p, segy.Float64ToIBM(v))
	case 2:
		binary.BigEndian.PutUint32(p, uint32(int32(v)))
	case 3:
		binary.BigEndian.PutUint16(p, uint16(int16(v)))
	case 8:
		p[0] = byte(int8(v))
	default:
		binary.BigEndian.PutUint32(p, math.Float32bits(float32(v)))
	}
}
