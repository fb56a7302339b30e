package app

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-kulish/segy-inspector/internal/amplitude"
	"github.com/roman-kulish/segy-inspector/internal/header"
	"github.com/roman-kulish/segy-inspector/internal/segy/segytest"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var logLevel slog.LevelVar
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: &logLevel}))

	var out bytes.Buffer
	root := NewRootCommand(logger, &logLevel)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// line writes a file whose traces step east by 10 m.
func line(t *testing.T, dir, name string, traces int) string {
	t.Helper()

	f := segytest.File{Text: segytest.Card(1, "LINE "+name)}
	for i := range traces {
		f.Traces = append(f.Traces, segytest.Trace{
			Header: map[string]int64{
				header.TraceSourceX:         int64(1000 + 10*i),
				header.TraceSourceY:         5000,
				header.TraceCoordinateUnits: 1,
			},
			Samples: []float64{float64(i), -1, 2, -3, 4, -5},
		})
	}
	return f.Write(t, dir, name)
}

func TestInfoCommand(t *testing.T) {
	path := line(t, t.TempDir(), "l1.sgy", 3)

	out, err := execute(t, "info", path, "--trace", "2", "--bytes")
	require.NoError(t, err)

	assert.Contains(t, out, "FILE INFORMATION\n")
	assert.Contains(t, out, "Number of Traces: 3\n")
	assert.Contains(t, out, "C01: LINE l1.sgy")
	assert.Contains(t, out, "TRACE 2 HEADER\n")
	assert.Contains(t, out, "SourceX: 1010 [bytes 73-76]")
	assert.Contains(t, out, "CoordinateUnits: 1 [bytes 89-90] (")
}

func TestInfoCommandErrors(t *testing.T) {
	path := line(t, t.TempDir(), "l1.sgy", 3)

	_, err := execute(t, "info", path, "--trace", "4")
	assert.ErrorContains(t, err, "out of range")

	_, err = execute(t, "info", filepath.Join(t.TempDir(), "missing.sgy"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "info", path, "--log-level", "loud")
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestInfoDescribe(t *testing.T) {
	path := line(t, t.TempDir(), "l1.sgy", 2)

	out, err := execute(t, "info", path, "--describe", "Format")
	require.NoError(t, err)
	assert.Contains(t, out, "Format [bytes 3225-3226]\n")
	assert.Contains(t, out, "  5: ")

	_, err = execute(t, "info", path, "--describe", "NoSuchField")
	assert.ErrorContains(t, err, "unknown header field")
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	path := line(t, dir, "l1.sgy", 4)
	output := filepath.Join(dir, "section.png")

	_, err := execute(t, "render", path, "-o", output, "--full-resolution", "--colormap", "gray", "--clip", "none")
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 4)

	_, err = execute(t, "render", path, "--percentile", "10")
	assert.ErrorIs(t, err, amplitude.ErrInvalidPolicy)

	_, err = execute(t, "render", path, "--percentile", "NaN")
	assert.ErrorIs(t, err, amplitude.ErrInvalidPolicy)

	_, err = execute(t, "render", path, "--clip", "stddev", "--stddev", "NaN")
	assert.ErrorIs(t, err, amplitude.ErrInvalidPolicy)

	_, err = execute(t, "render", path, "--depth", "--velocity", "NaN")
	assert.ErrorIs(t, err, amplitude.ErrInvalidVelocity)
}

func TestRenderCommandDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	path := line(t, dir, "l1.sgy", 2)

	_, err := execute(t, "render", path, "--image-format", "jpg", "--depth", "--velocity", "2000")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "l1_plot.jpg"))
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "nav")
	path := line(t, dir, "l1.sgy", 3)

	out, err := execute(t, "export", path, "--format", "geojson", "--output-dir", outDir)
	require.NoError(t, err)

	pointsPath := filepath.Join(outDir, "l1_source_points_points.geojson")
	assert.Contains(t, out, pointsPath)
	assert.FileExists(t, filepath.Join(outDir, "l1_source_points_line.geojson"))

	raw, err := os.ReadFile(pointsPath)
	require.NoError(t, err)

	var fc struct {
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(raw, &fc))
	assert.Len(t, fc.Features, 3)
}

func TestExportCommandWithoutCoordinates(t *testing.T) {
	dir := t.TempDir()
	path := segytest.File{Traces: []segytest.Trace{{Samples: []float64{1, 2}}}}.Write(t, dir, "bare.sgy")

	_, err := execute(t, "export", path)
	assert.ErrorContains(t, err, "no valid coordinates")
}

func TestBatchCommandWithCatalog(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	line(t, in, "a.sgy", 3)
	line(t, in, "b.SEGY", 2)
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("skip me"), 0o644))
	broken := filepath.Join(t.TempDir(), "broken.sgy")
	require.NoError(t, os.WriteFile(broken, []byte("too short"), 0o644))

	db := filepath.Join(t.TempDir(), "runs.sqlite")
	summary, err := execute(t, "batch", in, broken,
		"--output-dir", out, "--format", "geojson", "--catalog", db, "--full-resolution")
	require.NoError(t, err)

	assert.Contains(t, summary, "Processed: 2\nErrors: 1")
	assert.Contains(t, summary, "SEGY_Combined_Nav_points.geojson")
	for _, name := range []string{"a_plot.png", "a.txt", "b_plot.png", "b.txt", "SEGY_Combined_Nav_line.geojson"} {
		assert.FileExists(t, filepath.Join(out, name))
	}

	runs, err := execute(t, "catalog", db)
	require.NoError(t, err)
	assert.Contains(t, runs, "3 files\t1 failed")

	files, err := execute(t, "catalog", db, "--run", "1")
	require.NoError(t, err)
	assert.Contains(t, files, filepath.Join(in, "a.sgy")+"\tprocessed\t3 traces x 6 samples")
	assert.Contains(t, files, broken+"\tfailed\t")

	_, err = execute(t, "catalog", db, "--run", "7")
	assert.Error(t, err)
}

func TestBatchCommandNoFiles(t *testing.T) {
	_, err := execute(t, "batch", t.TempDir())
	assert.ErrorContains(t, err, "no SEG-Y files found")
}
