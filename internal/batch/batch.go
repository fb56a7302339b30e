// Package batch runs the full export pipeline over a list of SEG-Y files and
// merges their navigation into combined layers.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roman-kulish/segy-inspector/internal/amplitude"
	"github.com/roman-kulish/segy-inspector/internal/navigation"
	"github.com/roman-kulish/segy-inspector/internal/render"
	"github.com/roman-kulish/segy-inspector/internal/report"
	"github.com/roman-kulish/segy-inspector/internal/segy"
	"github.com/roman-kulish/segy-inspector/internal/storage"
	"github.com/roman-kulish/segy-inspector/internal/vector"
)

const (
	combinedPointsName = "SEGY_Combined_Nav_points"
	combinedLineName   = "SEGY_Combined_Nav_line"

	PlotSuffix   = "_plot"
	pointsSuffix = "_source_points_points"
	lineSuffix   = "_source_points_line"
	reportExt    = ".txt"
)

// ErrNoCoordinates is recorded for files whose traces carry no usable coordinates.
var ErrNoCoordinates = errors.New("no valid coordinates found in trace headers")

// Settings are the per-run rendering and export choices.
type Settings struct {
	OutputDir   string // Empty writes next to each input file
	Policy      amplitude.Policy
	Depth       bool
	Velocity    float64
	ImageFormat render.ImageFormat
}

// ProgressFunc is called before each file with its 0-based index.
type ProgressFunc func(index, total int, file string)

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithProgress reports progress before each file.
func WithProgress(fn ProgressFunc) Option {
	return func(a *Aggregator) {
		a.progress = fn
	}
}

// WithCatalog records the run, every file outcome and the navigation points.
func WithCatalog(store storage.Store) Option {
	return func(a *Aggregator) {
		a.catalog = store
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// Aggregator processes files one after another.
type Aggregator struct {
	loader   segy.Loader
	renderer *render.Renderer
	writer   vector.Writer
	settings Settings

	progress ProgressFunc
	catalog  storage.Store
	logger   *slog.Logger
}

// New returns an aggregator. The policy and velocity are validated here so a
// bad configuration fails before any file is touched.
func New(loader segy.Loader, renderer *render.Renderer, writer vector.Writer, settings Settings, opts ...Option) (*Aggregator, error) {
	if err := settings.Policy.Validate(); err != nil {
		return nil, err
	}
	if settings.Depth {
		if err := amplitude.ValidateVelocity(settings.Velocity); err != nil {
			return nil, err
		}
	}
	if settings.ImageFormat == "" {
		settings.ImageFormat = render.ImagePNG
	}

	a := &Aggregator{
		loader:   loader,
		renderer: renderer,
		writer:   writer,
		settings: settings,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// FileResult is the outcome of one file.
type FileResult struct {
	Path    string
	Err     error  // nil on success
	Message string // Human-readable failure, empty on success
	Outputs []string
	Track   navigation.Track
}

// Result summarises a batch.
type Result struct {
	Processed  int
	ErrorCount int
	Files      []FileResult
	Combined   []string // Paths of the combined layers, empty when not written
	CombineErr error
	Cancelled  bool
	RunID      int64 // Catalog run, zero without a catalog
}

// Summary is the completion message shown to the user.
func (r Result) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Batch processing complete!\n\nProcessed: %d\nErrors: %d", r.Processed, r.ErrorCount)
	if r.Cancelled {
		sb.WriteString("\n\nCancelled before all files were processed.")
	}
	if len(r.Combined) > 0 {
		sb.WriteString("\n\nCombined layers created:")
		for _, p := range r.Combined {
			fmt.Fprintf(&sb, "\n  - %s", filepath.Base(p))
		}
	}
	return sb.String()
}

// Process runs the pipeline over files in order. A failing file is counted
// and skipped. Cancellation is checked between files only: the file in
// progress is finished, and the files already processed are still combined.
func (a *Aggregator) Process(ctx context.Context, files []string) Result {
	var res Result

	if a.catalog != nil {
		runID, err := a.catalog.CreateRun(ctx, a.settings)
		if err != nil {
			a.logger.Warn("catalog unavailable", slog.String("error", err.Error()))
			a.catalog = nil
		}
		res.RunID = runID
	}

	var tracks []navigation.Track
	for i, path := range files {
		if ctx.Err() != nil {
			res.Cancelled = true
			break
		}
		if a.progress != nil {
			a.progress(i, len(files), path)
		}

		// A file that has started runs to completion.
		fileCtx := context.WithoutCancel(ctx)
		fr, ds := a.processFile(fileCtx, path)
		if fr.Err != nil {
			res.ErrorCount++
			fr.Message = fr.Err.Error()
			a.logger.Error("processing file failed",
				slog.String("file", path),
				slog.String("error", fr.Err.Error()))
		} else {
			res.Processed++
			tracks = append(tracks, fr.Track)
			a.logger.Info("processed file",
				slog.String("file", path),
				slog.Int("points", len(fr.Track.Records)),
				slog.Int("outputs", len(fr.Outputs)))
		}

		a.record(fileCtx, res.RunID, fr, ds)
		res.Files = append(res.Files, fr)
	}

	if len(tracks) > 1 {
		res.Combined, res.CombineErr = a.combine(tracks, files)
		if res.CombineErr != nil {
			a.logger.Error("combining layers failed", slog.String("error", res.CombineErr.Error()))
		}
	}
	return res
}

func (a *Aggregator) processFile(ctx context.Context, path string) (FileResult, *segy.Dataset) {
	fr := FileResult{Path: path}

	ds, err := a.loader.Load(ctx, path)
	if err != nil {
		fr.Err = err
		return fr, nil
	}

	base := a.outputBase(path, ds.Info.Filename)

	plotPath := base + PlotSuffix + a.settings.ImageFormat.Extension()
	if err = a.renderPlot(plotPath, ds); err != nil {
		fr.Err = fmt.Errorf("saving plot: %w", err)
		return fr, ds
	}
	fr.Outputs = append(fr.Outputs, plotPath)

	reportPath := base + reportExt
	if err = writeReport(reportPath, ds); err != nil {
		fr.Err = fmt.Errorf("saving header report: %w", err)
		return fr, ds
	}
	fr.Outputs = append(fr.Outputs, reportPath)

	fr.Track = navigation.Build(ds.Info, ds.Traces)
	if fr.Track.Empty() {
		fr.Err = ErrNoCoordinates
		return fr, ds
	}

	paths, err := ExportTrack(a.writer, base, fr.Track)
	fr.Outputs = append(fr.Outputs, paths...)
	if err != nil {
		fr.Err = err
	}
	return fr, ds
}

// ExportTrack writes the point layer of a track and, when the track has one,
// its line layer. base is the output path of the file without extension.
func ExportTrack(w vector.Writer, base string, track navigation.Track) ([]string, error) {
	pointsPath, err := w.WritePoints(base+pointsSuffix, track.PointLayer())
	if err != nil {
		return nil, fmt.Errorf("saving navigation points: %w", err)
	}

	layer, ok := track.LineLayer()
	if !ok {
		return []string{pointsPath}, nil
	}
	linePath, err := w.WriteLine(base+lineSuffix, layer)
	if err != nil {
		return []string{pointsPath}, fmt.Errorf("saving navigation line: %w", err)
	}
	return []string{pointsPath, linePath}, nil
}

func (a *Aggregator) renderPlot(path string, ds *segy.Dataset) error {
	plot, err := NewPlot(ds, a.settings.Policy, a.settings.Depth, a.settings.Velocity)
	if err != nil {
		return err
	}

	img, err := a.renderer.Render(plot)
	if err != nil {
		return err
	}
	return render.SaveImage(path, img, a.settings.ImageFormat)
}

// NewPlot prepares the display range, clipped samples and vertical axis of a
// dataset.
func NewPlot(ds *segy.Dataset, policy amplitude.Policy, depth bool, velocity float64) (*render.Plot, error) {
	rng, err := amplitude.ComputeRange(ds.Data, policy)
	if err != nil {
		return nil, fmt.Errorf("computing amplitude range: %w", err)
	}
	data, err := amplitude.Clip(ds.Data, policy)
	if err != nil {
		return nil, fmt.Errorf("clipping amplitudes: %w", err)
	}

	axis := ds.Info.TimeAxis
	if depth {
		if axis, err = amplitude.ToDepthAxis(ds.Info.TimeAxis, velocity); err != nil {
			return nil, err
		}
	}

	return &render.Plot{
		Title:    ds.Info.Filename,
		Data:     data,
		Axis:     axis,
		Depth:    depth,
		Range:    rng,
		Policy:   policy,
		Velocity: velocity,
	}, nil
}

func writeReport(path string, ds *segy.Dataset) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	return report.WriteHeaderReport(out, ds.Info, ds.Binary, ds.Text)
}

func (a *Aggregator) outputBase(path, filename string) string {
	return OutputBase(a.settings.OutputDir, path, filename)
}

// OutputBase is the path, without extension, that outputs derived from the
// input file are written under. An empty dir selects the input's directory.
func OutputBase(dir, path, filename string) string {
	if dir == "" {
		dir = filepath.Dir(path)
	}
	if filename == "" {
		filename = filepath.Base(path)
	}
	return filepath.Join(dir, strings.TrimSuffix(filename, filepath.Ext(filename)))
}

func (a *Aggregator) combine(tracks []navigation.Track, files []string) ([]string, error) {
	dir := a.settings.OutputDir
	if dir == "" {
		dir = filepath.Dir(files[0])
	}

	pointsPath, err := a.writer.WritePoints(filepath.Join(dir, combinedPointsName), navigation.CombinedPointLayer(tracks))
	if err != nil {
		return nil, fmt.Errorf("writing combined points: %w", err)
	}
	combined := []string{pointsPath}

	lines := navigation.CombinedLineLayer(tracks)
	if len(lines.Features) == 0 {
		return combined, nil
	}
	linePath, err := a.writer.WriteLine(filepath.Join(dir, combinedLineName), lines)
	if err != nil {
		return combined, fmt.Errorf("writing combined line: %w", err)
	}
	return append(combined, linePath), nil
}
