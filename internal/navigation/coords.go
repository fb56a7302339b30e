// Package navigation turns trace header coordinates into navigation points
// and a per-file track line.
package navigation

import (
	"math"

	"github.com/roman-kulish/segy-inspector/internal/header"
	"github.com/roman-kulish/segy-inspector/internal/segy"
)

// zeroEpsilon is the magnitude below which a raw coordinate counts as unset.
const zeroEpsilon = 1e-6

// Coordinate unit codes from trace header bytes 89-90.
const (
	UnitCodeLength         = 1
	UnitCodeArcSeconds     = 2
	UnitCodeDecimalDegrees = 3
	UnitCodeDMS            = 4

	// defaultUnitCode is assumed when the trace carries no unit code.
	defaultUnitCode = UnitCodeArcSeconds
)

// UnitSystem tags the unit system a point was expressed in.
type UnitSystem int

const (
	UnitUnknown UnitSystem = iota
	UnitLength
	UnitArcSeconds
	UnitDecimalDegrees
	UnitDMS
)

func (u UnitSystem) String() string {
	switch u {
	case UnitLength:
		return "length"
	case UnitArcSeconds:
		return "arc-seconds"
	case UnitDecimalDegrees:
		return "decimal-degrees"
	case UnitDMS:
		return "dms"
	default:
		return "unknown"
	}
}

// Geographic reports whether points in this unit system are longitude/latitude.
func (u UnitSystem) Geographic() bool {
	return u == UnitArcSeconds || u == UnitDecimalDegrees || u == UnitDMS
}

// UnitSystemFor maps a coordinate unit code to its tag.
func UnitSystemFor(code int64) UnitSystem {
	switch code {
	case UnitCodeLength:
		return UnitLength
	case UnitCodeArcSeconds:
		return UnitArcSeconds
	case UnitCodeDecimalDegrees:
		return UnitDecimalDegrees
	case UnitCodeDMS:
		return UnitDMS
	default:
		return UnitUnknown
	}
}

// CoordinatePoint is a normalised trace position.
type CoordinatePoint struct {
	X          float64
	Y          float64
	Units      UnitSystem
	TraceIndex int // 0-based position in the trace header table
}

var coordinatePairs = [][2]string{
	{header.TraceSourceX, header.TraceSourceY},
	{header.TraceGroupX, header.TraceGroupY},
	{header.TraceCDPX, header.TraceCDPY},
}

// Normalize converts the raw coordinates of one trace header.
//
// The first pair with both values present is used, in the order source,
// group, CDP. It reports false when no pair is present or both values of the
// chosen pair are zero. The source-group scalar multiplies when positive,
// divides by its magnitude when negative and is a no-op when zero. Arc-second
// coordinates are converted to decimal degrees; DMS is taken as already
// decimal.
func Normalize(h segy.TraceHeader, index int) (CoordinatePoint, bool) {
	rawX, rawY, ok := selectPair(h)
	if !ok {
		return CoordinatePoint{}, false
	}
	if math.Abs(rawX) < zeroEpsilon && math.Abs(rawY) < zeroEpsilon {
		return CoordinatePoint{}, false
	}

	x, y := applyScalar(rawX, rawY, h.ValueOr(header.TraceSourceGroupScalar, 1))

	code := h.ValueOr(header.TraceCoordinateUnits, defaultUnitCode)
	if code == UnitCodeArcSeconds {
		x /= 3600
		y /= 3600
	}

	return CoordinatePoint{
		X:          x,
		Y:          y,
		Units:      UnitSystemFor(code),
		TraceIndex: index,
	}, true
}

func selectPair(h segy.TraceHeader) (x, y float64, ok bool) {
	for _, pair := range coordinatePairs {
		rx, okX := h.Value(pair[0])
		ry, okY := h.Value(pair[1])
		if okX && okY {
			return float64(rx), float64(ry), true
		}
	}
	return 0, 0, false
}

func applyScalar(x, y float64, scalar int64) (float64, float64) {
	switch {
	case scalar > 0:
		s := float64(scalar)
		return x * s, y * s
	case scalar < 0:
		s := math.Abs(float64(scalar))
		return x / s, y / s
	default:
		return x, y
	}
}

// LooksLikeUTM reports whether x, y have UTM easting/northing magnitudes and
// cannot be degrees or arc-seconds. It is a best-effort hint only.
func LooksLikeUTM(x, y float64) bool {
	ax, ay := math.Abs(x), math.Abs(y)

	inUTM := ax >= 1e5 && ax <= 9e5 && y >= 0 && y <= 1e7
	degrees := ax <= 180 && ay <= 90
	arcSeconds := ax <= 180*3600 && ay <= 90*3600

	return inUTM && !degrees && !arcSeconds
}

// SpatialReference is the CRS tag declared on exported vector files.
type SpatialReference string

const (
	SpatialReferenceNone  SpatialReference = ""
	SpatialReferenceWGS84 SpatialReference = "EPSG:4326"

	// SpatialReferenceUTM is a placeholder zone; the real zone is not inferred.
	SpatialReferenceUTM SpatialReference = "EPSG:32633"
)

// SpatialReferenceFor picks the CRS tag for a track: WGS84 for geographic
// unit codes, the UTM placeholder when the sample point looks like UTM, and
// none otherwise.
func SpatialReferenceFor(unitCode int64, sample CoordinatePoint) SpatialReference {
	switch unitCode {
	case UnitCodeArcSeconds, UnitCodeDecimalDegrees, UnitCodeDMS:
		return SpatialReferenceWGS84
	}
	if LooksLikeUTM(sample.X, sample.Y) {
		return SpatialReferenceUTM
	}
	return SpatialReferenceNone
}
