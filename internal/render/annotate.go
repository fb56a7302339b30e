package render

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/roman-kulish/segy-inspector/internal/amplitude"
)

const dpi = 96.0

type annotator struct {
	context  *freetype.Context
	fontFace font.Face
	borders  BorderConfig
}

func newAnnotator(size float64, borders BorderConfig) (*annotator, error) {
	parsedFont, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(dpi)
	ctx.SetFont(parsedFont)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingNone)
	ctx.SetSrc(image.Black)

	return &annotator{
		context: ctx,
		borders: borders,
		fontFace: truetype.NewFace(parsedFont, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingNone,
		}),
	}, nil
}

func (a *annotator) Close() error {
	if a.fontFace != nil {
		return a.fontFace.Close()
	}
	return nil
}

func (a *annotator) annotate(img *image.RGBA, area image.Rectangle, plot *Plot) error {
	a.context.SetClip(img.Bounds())
	a.context.SetDst(img)

	drawFrame(img, area)

	if err := a.drawTraceScale(img, area, plot); err != nil {
		return fmt.Errorf("drawing trace scale: %w", err)
	}
	if err := a.drawVerticalScale(img, area, plot); err != nil {
		return fmt.Errorf("drawing vertical scale: %w", err)
	}
	if err := a.drawInfoBar(img, plot); err != nil {
		return fmt.Errorf("drawing info bar: %w", err)
	}
	return nil
}

func drawFrame(img *image.RGBA, area image.Rectangle) {
	for x := area.Min.X - 1; x <= area.Max.X; x++ {
		img.Set(x, area.Min.Y-1, frameColor)
		img.Set(x, area.Max.Y, frameColor)
	}
	for y := area.Min.Y - 1; y <= area.Max.Y; y++ {
		img.Set(area.Min.X-1, y, frameColor)
		img.Set(area.Max.X, y, frameColor)
	}
}

func (a *annotator) fontHeight() int {
	metrics := a.fontFace.Metrics()
	return (metrics.Ascent + metrics.Descent).Round()
}

// drawTraceScale labels 1-based trace numbers along the top edge.
func (a *annotator) drawTraceScale(img *image.RGBA, area image.Rectangle, plot *Plot) error {
	traces := plot.Data.Traces
	width := area.Dx()
	textY := area.Min.Y - tickMarkLength - a.fontHeight()/2

	step := niceStep(float64(traces), width)
	for trace := step; trace <= float64(traces); trace += step {
		x := area.Min.X + int((trace-0.5)/float64(traces)*float64(width))

		for y := area.Min.Y - tickMarkLength; y < area.Min.Y; y++ {
			img.Set(x, y, frameColor)
		}

		label := formatTick(trace)
		w := font.MeasureString(a.fontFace, label).Round()
		if _, err := a.context.DrawString(label, freetype.Pt(x-w/2, textY)); err != nil {
			return fmt.Errorf("drawing trace label: %w", err)
		}
	}
	return nil
}

// drawVerticalScale labels time or depth along the left edge.
func (a *annotator) drawVerticalScale(img *image.RGBA, area image.Rectangle, plot *Plot) error {
	first, last := amplitude.Extent(plot.Axis)
	span := last - first
	height := area.Dy()

	metrics := a.fontFace.Metrics()
	halfText := a.fontHeight()/2 - metrics.Descent.Round()

	unit := "TWT (ms)"
	if plot.Depth {
		unit = "Depth (m)"
	}
	if _, err := a.context.DrawString(unit, freetype.Pt(4, area.Min.Y-tickMarkLength-a.fontHeight()/2)); err != nil {
		return fmt.Errorf("drawing axis title: %w", err)
	}

	if span <= 0 {
		return a.drawVerticalLabel(img, area, area.Min.Y, first, halfText)
	}

	step := niceStep(span, height)
	start := math.Ceil(first/step) * step
	for v := start; v <= last+step*1e-9; v += step {
		y := area.Min.Y + int((v-first)/span*float64(height-1))
		if err := a.drawVerticalLabel(img, area, y, v, halfText); err != nil {
			return err
		}
	}
	return nil
}

func (a *annotator) drawVerticalLabel(img *image.RGBA, area image.Rectangle, y int, v float64, halfText int) error {
	for x := area.Min.X - tickMarkLength; x < area.Min.X; x++ {
		img.Set(x, y, frameColor)
	}

	label := formatTick(v)
	w := font.MeasureString(a.fontFace, label).Round()
	pt := freetype.Pt(area.Min.X-tickMarkLength-3-w, y+halfText)
	if _, err := a.context.DrawString(label, pt); err != nil {
		return fmt.Errorf("drawing axis label: %w", err)
	}
	return nil
}

func (a *annotator) drawInfoBar(img *image.RGBA, plot *Plot) error {
	var sb strings.Builder

	if plot.Title != "" {
		sb.WriteString(plot.Title)
		sb.WriteString("; ")
	}
	sb.WriteString(fmt.Sprintf("Traces: %d; Amplitude: %.4g to %.4g; Clip: %s",
		plot.Data.Traces, plot.Range.Lower, plot.Range.Upper, plot.Policy))
	if plot.Depth {
		sb.WriteString(fmt.Sprintf("; Velocity: %.0f m/s", plot.Velocity))
	}

	metrics := a.fontFace.Metrics()
	textY := img.Bounds().Max.Y - (a.borders.Bottom-a.fontHeight())/2 - metrics.Descent.Round()

	if _, err := a.context.DrawString(sb.String(), freetype.Pt(a.borders.Left, textY)); err != nil {
		return fmt.Errorf("drawing info text: %w", err)
	}
	return nil
}

// niceStep picks a 1, 2 or 5 times power of ten step so that labels are
// roughly pixelsPerLabel apart.
func niceStep(span float64, pixels int) float64 {
	labels := math.Max(1, float64(pixels)/pixelsPerLabel)
	rough := span / labels
	if rough <= 0 {
		return 1
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * magnitude; step >= rough {
			return math.Max(step, 1)
		}
	}
	return 10 * magnitude
}

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
