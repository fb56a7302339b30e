// Package amplitude computes display ranges for seismic sample matrices and
// converts time axes to depth.
package amplitude

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/roman-kulish/segy-inspector/internal/segy"
)

// ErrEmptyMatrix is returned when there are no finite samples to measure.
var ErrEmptyMatrix = errors.New("sample matrix is empty")

// Range is the amplitude interval mapped onto the colour scale.
type Range struct {
	Lower float64
	Upper float64
}

// Span returns Upper - Lower.
func (r Range) Span() float64 {
	return r.Upper - r.Lower
}

// ComputeRange returns the display range of m under policy p.
//
// The percentile policy is one-sided: the lower bound is zero and the upper
// bound is the p-th percentile. When that percentile is negative the two are
// swapped so Lower <= Upper still holds.
func ComputeRange(m *segy.Matrix, p Policy) (Range, error) {
	if err := p.Validate(); err != nil {
		return Range{}, err
	}
	if m == nil {
		return Range{}, ErrEmptyMatrix
	}

	values := finite(m.Values)
	if len(values) == 0 {
		return Range{}, ErrEmptyMatrix
	}

	switch p.Mode {
	case ModePercentile:
		upper := percentile(values, p.Percentile)
		if upper < 0 {
			return Range{Lower: upper, Upper: 0}, nil
		}
		return Range{Lower: 0, Upper: upper}, nil

	case ModeStdDev:
		lo, hi := stdDevBounds(values, p.StdDevs)
		return Range{
			Lower: math.Max(floats.Min(values), lo),
			Upper: math.Min(floats.Max(values), hi),
		}, nil

	default:
		return Range{Lower: floats.Min(values), Upper: floats.Max(values)}, nil
	}
}

// Clip returns the matrix to draw under policy p. For the standard deviation
// policy every sample is clipped to mean ± k·σ in a copy; other policies
// return m unchanged.
func Clip(m *segy.Matrix, p Policy) (*segy.Matrix, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Mode != ModeStdDev || m == nil {
		return m, nil
	}

	values := finite(m.Values)
	if len(values) == 0 {
		return m, nil
	}
	lo, hi := stdDevBounds(values, p.StdDevs)

	out := &segy.Matrix{
		Traces:  m.Traces,
		Samples: m.Samples,
		Values:  make([]float64, len(m.Values)),
	}
	for i, v := range m.Values {
		switch {
		case v < lo:
			out.Values[i] = lo
		case v > hi:
			out.Values[i] = hi
		default:
			out.Values[i] = v
		}
	}
	return out, nil
}

// stdDevBounds returns mean ± k·σ using the population standard deviation.
func stdDevBounds(values []float64, k float64) (lo, hi float64) {
	mean, std := stat.PopMeanStdDev(values, nil)
	return mean - k*std, mean + k*std
}

// percentile interpolates linearly between the two closest ranks, which is
// the default convention of numpy.percentile.
func percentile(values []float64, p float64) float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	h := float64(len(sorted)-1) * p / 100
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// finite returns values without NaN and ±Inf, copying only when needed.
func finite(values []float64) []float64 {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out := slices.Clone(values[:i])
			for _, w := range values[i+1:] {
				if !math.IsNaN(w) && !math.IsInf(w, 0) {
					out = append(out, w)
				}
			}
			return out
		}
	}
	return values
}
