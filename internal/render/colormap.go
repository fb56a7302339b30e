package render

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Colormap names a predefined amplitude colour scale.
type Colormap string

const (
	BuPu    Colormap = "bupu"    // White to blue to purple
	Gray    Colormap = "gray"    // Black to white
	Seismic Colormap = "seismic" // Dark blue to white to dark red
	Viridis Colormap = "viridis" // Purple to green to yellow
	Jet     Colormap = "jet"     // Dark blue to cyan to yellow to dark red

	DefaultColormap = BuPu

	DefaultColorMapSize = 256
)

// noDataColor is used for NaN samples.
var noDataColor = color.RGBA{A: 0xff}

// colormapStops are sampled at even intervals and blended in Lab space.
var colormapStops = map[Colormap][]string{
	BuPu:    {"#f7fcfd", "#e0ecf4", "#bfd3e6", "#9ebcda", "#8c96c6", "#8c6bb1", "#88419d", "#810f7c", "#4d004b"},
	Gray:    {"#000000", "#ffffff"},
	Seismic: {"#00004c", "#0000ff", "#ffffff", "#ff0000", "#7f0000"},
	Viridis: {"#440154", "#482878", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
	Jet:     {"#00007f", "#0000ff", "#007fff", "#00ffff", "#7fff7f", "#ffff00", "#ff7f00", "#ff0000", "#7f0000"},
}

// Colormaps returns the available colormap names, sorted.
func Colormaps() []string {
	names := make([]string, 0, len(colormapStops))
	for name := range colormapStops {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ParseColormap resolves a colormap name case-insensitively.
func ParseColormap(s string) (Colormap, error) {
	cm := Colormap(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := colormapStops[cm]; !ok {
		return "", fmt.Errorf("unknown colormap '%s' (available: %s)", s, strings.Join(Colormaps(), ", "))
	}
	return cm, nil
}

// gradient returns the colour at t in [0, 1] along the stops.
func gradient(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	t = math.Max(0, math.Min(1, t))

	pos := t * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLab(stops[i+1], pos-float64(i)).Clamped()
}

func parseStops(hex []string) ([]colorful.Color, error) {
	stops := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("parsing colour stop %s: %w", h, err)
		}
		stops[i] = c
	}
	return stops, nil
}

// ColorMapper maps amplitudes in [Lower, Upper] to colours through a
// pre-computed lookup table. Values outside the range are clamped.
type ColorMapper struct {
	colorMap    []color.RGBA
	name        Colormap
	size        int
	lower       float64
	valuePerIdx float64
}

// NewColorMapper builds the lookup table for the colormap over [lower, upper].
func NewColorMapper(name Colormap, lower, upper float64) (*ColorMapper, error) {
	hex, ok := colormapStops[name]
	if !ok {
		return nil, fmt.Errorf("unknown colormap '%s'", name)
	}
	stops, err := parseStops(hex)
	if err != nil {
		return nil, err
	}

	cm := &ColorMapper{
		colorMap: make([]color.RGBA, DefaultColorMapSize),
		name:     name,
		size:     DefaultColorMapSize,
	}
	for i := range cm.colorMap {
		r, g, b := gradient(stops, float64(i)/float64(cm.size-1)).RGB255()
		cm.colorMap[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	cm.UpdateBounds(lower, upper)
	return cm, nil
}

// UpdateBounds changes the amplitude range without rebuilding the table.
func (cm *ColorMapper) UpdateBounds(lower, upper float64) {
	cm.lower = lower
	cm.valuePerIdx = (upper - lower) / float64(cm.size-1)
}

// Color returns the colour of value.
func (cm *ColorMapper) Color(value float64) color.RGBA {
	if math.IsNaN(value) {
		return noDataColor
	}
	// A degenerate range maps everything to the middle of the scale.
	if cm.valuePerIdx == 0 {
		return cm.colorMap[cm.size/2]
	}

	pos := (value - cm.lower) / cm.valuePerIdx
	if pos < 0 {
		return cm.colorMap[0]
	}
	if pos >= float64(cm.size) {
		return cm.colorMap[cm.size-1]
	}
	return cm.colorMap[int(pos)]
}

// Name returns the colormap name.
func (cm *ColorMapper) Name() Colormap {
	return cm.name
}
