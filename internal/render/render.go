// Package render draws seismic sections as annotated raster images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/roman-kulish/segy-inspector/internal/amplitude"
	"github.com/roman-kulish/segy-inspector/internal/segy"
)

const (
	fontSize       = 11.0
	tickMarkLength = 5
	pixelsPerLabel = 120.0

	defaultTopBorder    = 40
	defaultLeftBorder   = 90
	defaultBottomBorder = 40
	defaultRightBorder  = 20

	DefaultMaxWidth  = 1600
	DefaultMaxHeight = 1000
)

// ErrEmptyPlot is returned for a plot without traces or samples.
var ErrEmptyPlot = errors.New("nothing to plot")

// BorderConfig defines the white space around the section.
type BorderConfig struct {
	Top    int // Trace number scale
	Left   int // Time or depth scale
	Bottom int // Information bar
	Right  int
}

// Config controls how sections are drawn.
type Config struct {
	Colormap       Colormap
	FullResolution bool // One pixel per sample; MaxWidth and MaxHeight are ignored
	MaxWidth       int
	MaxHeight      int
	FontSize       float64
	Borders        BorderConfig
}

// Plot is one section ready to be drawn.
type Plot struct {
	Title    string
	Data     *segy.Matrix
	Axis     []float64 // Vertical axis value of every sample
	Depth    bool      // Axis holds depth in metres rather than TWT in milliseconds
	Range    amplitude.Range
	Policy   amplitude.Policy
	Velocity float64 // Only reported when Depth is set
}

// Renderer draws plots. It is safe to reuse for several plots.
type Renderer struct {
	config Config
}

// NewRenderer validates the configuration and fills in defaults.
func NewRenderer(config Config) (*Renderer, error) {
	if config.Colormap == "" {
		config.Colormap = DefaultColormap
	}
	if _, ok := colormapStops[config.Colormap]; !ok {
		return nil, fmt.Errorf("unknown colormap '%s'", config.Colormap)
	}
	if config.MaxWidth <= 0 {
		config.MaxWidth = DefaultMaxWidth
	}
	if config.MaxHeight <= 0 {
		config.MaxHeight = DefaultMaxHeight
	}
	if config.FontSize == 0 {
		config.FontSize = fontSize
	}
	if config.Borders.Top == 0 {
		config.Borders.Top = defaultTopBorder
	}
	if config.Borders.Left == 0 {
		config.Borders.Left = defaultLeftBorder
	}
	if config.Borders.Bottom == 0 {
		config.Borders.Bottom = defaultBottomBorder
	}
	if config.Borders.Right == 0 {
		config.Borders.Right = defaultRightBorder
	}
	return &Renderer{config: config}, nil
}

// Render draws the section with its scales and information bar.
func (r *Renderer) Render(plot *Plot) (*image.RGBA, error) {
	if plot.Data == nil || plot.Data.Traces == 0 || plot.Data.Samples == 0 {
		return nil, ErrEmptyPlot
	}
	if len(plot.Axis) != plot.Data.Samples {
		return nil, fmt.Errorf("axis has %d values for %d samples", len(plot.Axis), plot.Data.Samples)
	}

	mapper, err := NewColorMapper(r.config.Colormap, plot.Range.Lower, plot.Range.Upper)
	if err != nil {
		return nil, err
	}

	section := r.section(plot.Data, mapper)
	width, height := r.plotSize(plot.Data)

	b := r.config.Borders
	img := image.NewRGBA(image.Rect(0, 0, b.Left+width+b.Right, b.Top+height+b.Bottom))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	area := image.Rect(b.Left, b.Top, b.Left+width, b.Top+height)
	if area.Size() == section.Bounds().Size() {
		draw.Draw(img, area, section, image.Point{}, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(img, area, section, section.Bounds(), draw.Src, nil)
	}

	ann, err := newAnnotator(r.config.FontSize, b)
	if err != nil {
		return nil, fmt.Errorf("creating annotator: %w", err)
	}
	defer ann.Close()

	if err = ann.annotate(img, area, plot); err != nil {
		return nil, fmt.Errorf("drawing annotations: %w", err)
	}
	return img, nil
}

// section draws one pixel per sample: traces run left to right, samples top
// to bottom.
func (r *Renderer) section(m *segy.Matrix, mapper *ColorMapper) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Traces, m.Samples))
	for x := 0; x < m.Traces; x++ {
		for y, v := range m.Trace(x) {
			img.SetRGBA(x, y, mapper.Color(v))
		}
	}
	return img
}

// plotSize returns the size of the plot area, shrinking the section to fit
// MaxWidth x MaxHeight while keeping at least one pixel per axis.
func (r *Renderer) plotSize(m *segy.Matrix) (int, int) {
	if r.config.FullResolution {
		return m.Traces, m.Samples
	}
	width := min(m.Traces, r.config.MaxWidth)
	height := min(m.Samples, r.config.MaxHeight)
	return max(width, 1), max(height, 1)
}

var frameColor = color.Black
