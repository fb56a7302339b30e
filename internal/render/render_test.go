package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roman-kulish/segy-inspector/internal/amplitude"
	"github.com/roman-kulish/segy-inspector/internal/segy"
)

func TestParseColormap(t *testing.T) {
	cm, err := ParseColormap(" BuPu ")
	require.NoError(t, err)
	assert.Equal(t, BuPu, cm)

	_, err = ParseColormap("rainbow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bupu, gray, jet, seismic, viridis")
}

func TestColorMapper(t *testing.T) {
	cm, err := NewColorMapper(Gray, -1, 1)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{A: 0xff}, cm.Color(-1))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, cm.Color(1))
	assert.Equal(t, cm.Color(-1), cm.Color(-5), "clamped below")
	assert.Equal(t, cm.Color(1), cm.Color(math.Inf(1)), "clamped above")
	assert.Equal(t, noDataColor, cm.Color(math.NaN()))

	mid := cm.Color(0)
	assert.Equal(t, mid.R, mid.G)
	assert.Greater(t, mid.R, uint8(0x10))
	assert.Less(t, mid.R, uint8(0xf0))
}

func TestColorMapperDegenerateRange(t *testing.T) {
	cm, err := NewColorMapper(Seismic, 3, 3)
	require.NoError(t, err)
	white := cm.Color(3)
	assert.Greater(t, white.R, uint8(0xe0))
	assert.Greater(t, white.B, uint8(0xe0))
}

func TestAllColormapsBuild(t *testing.T) {
	for _, name := range Colormaps() {
		_, err := NewColorMapper(Colormap(name), 0, 1)
		assert.NoError(t, err, name)
	}
}

func TestNiceStep(t *testing.T) {
	assert.Equal(t, 1.0, niceStep(3, 600))
	assert.Equal(t, 20.0, niceStep(100, 600))
	assert.Equal(t, 1000.0, niceStep(3000, 600))
	assert.Equal(t, 1.0, niceStep(0, 600))
}

func testPlot(traces, samples int) *Plot {
	m := segy.NewMatrix(traces, samples)
	axis := make([]float64, samples)
	for i := range axis {
		axis[i] = float64(i) * 4
	}
	for i := range m.Values {
		m.Values[i] = math.Sin(float64(i))
	}
	return &Plot{
		Title:  "test.sgy",
		Data:   m,
		Axis:   axis,
		Range:  amplitude.Range{Lower: -1, Upper: 1},
		Policy: amplitude.Percentile(99),
	}
}

func TestRenderFullResolution(t *testing.T) {
	r, err := NewRenderer(Config{FullResolution: true})
	require.NoError(t, err)

	img, err := r.Render(testPlot(30, 50))
	require.NoError(t, err)

	want := image.Rect(0, 0, defaultLeftBorder+30+defaultRightBorder, defaultTopBorder+50+defaultBottomBorder)
	assert.Equal(t, want, img.Bounds())

	// Top-left corner is border, first sample is colour mapped.
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, img.RGBAAt(1, 1))
	cm, err := NewColorMapper(DefaultColormap, -1, 1)
	require.NoError(t, err)
	assert.Equal(t, cm.Color(0), img.RGBAAt(defaultLeftBorder, defaultTopBorder))
}

func TestRenderDownsamples(t *testing.T) {
	r, err := NewRenderer(Config{MaxWidth: 20, MaxHeight: 10, Colormap: Viridis})
	require.NoError(t, err)

	plot := testPlot(100, 40)
	plot.Depth = true
	plot.Velocity = 1500
	img, err := r.Render(plot)
	require.NoError(t, err)
	assert.Equal(t, defaultLeftBorder+20+defaultRightBorder, img.Bounds().Dx())
	assert.Equal(t, defaultTopBorder+10+defaultBottomBorder, img.Bounds().Dy())
}

func TestRenderVerticalScaleStartsAtFirstAxisValue(t *testing.T) {
	r, err := NewRenderer(Config{FullResolution: true})
	require.NoError(t, err)

	depthPlot := testPlot(10, 51)
	depthPlot.Axis, err = amplitude.ToDepthAxis(depthPlot.Axis, 1500)
	require.NoError(t, err)
	depthPlot.Depth = true
	depthPlot.Velocity = 1500

	tests := []struct {
		name string
		plot *Plot
	}{
		{"depth axis", depthPlot},
		{"single sample", testPlot(10, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := r.Render(tt.plot)
			require.NoError(t, err)

			tick := img.RGBAAt(defaultLeftBorder-tickMarkLength, defaultTopBorder)
			assert.Equal(t, color.RGBA{A: 0xff}, tick, "first axis value is ticked at the top row")
		})
	}
}

func TestRenderErrors(t *testing.T) {
	_, err := NewRenderer(Config{Colormap: "nope"})
	require.Error(t, err)

	r, err := NewRenderer(Config{})
	require.NoError(t, err)

	_, err = r.Render(&Plot{Data: segy.NewMatrix(0, 0)})
	assert.ErrorIs(t, err, ErrEmptyPlot)

	plot := testPlot(2, 3)
	plot.Axis = plot.Axis[:2]
	_, err = r.Render(plot)
	assert.Error(t, err)
}

func TestSaveImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	path := filepath.Join(t.TempDir(), "nested", "plot.png")
	require.NoError(t, SaveImage(path, img, ImagePNG))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	f, err := ParseImageFormat("JPG")
	require.NoError(t, err)
	assert.Equal(t, ImageJPEG, f)
	assert.Equal(t, ".jpg", f.Extension())

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img, ImageJPEG))
	assert.NotZero(t, buf.Len())

	_, err = ParseImageFormat("gif")
	assert.Error(t, err)
}
