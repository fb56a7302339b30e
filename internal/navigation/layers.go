package navigation

import (
	"path/filepath"
	"strings"

	"github.com/roman-kulish/segy-inspector/internal/vector"
)

// Attribute names of exported navigation layers.
const (
	AttrCDPNumber     = "CDP_NUM"
	AttrTraceNumber   = "TRACE_NUM"
	AttrTraceSequence = "TRACE_SEQ"
	AttrSourceX       = "SOURCE_X"
	AttrSourceY       = "SOURCE_Y"
	AttrCoordUnit     = "COORD_UNIT"
	AttrScalar        = "SCALAR"
	AttrOffset        = "OFFSET"
	AttrElevation     = "ELEVATION"
	AttrDateTime      = "DATETIME"

	AttrLineID     = "LINE_ID"
	AttrNumPoints  = "NUM_POINTS"
	AttrStartTrace = "START_TRACE"
	AttrEndTrace   = "END_TRACE"
	AttrLength     = "LENGTH_M"
	AttrStartTime  = "START_DT"
	AttrEndTime    = "END_DT"

	AttrSourceFile = "SOURCE_FILE"
)

const (
	dateTimeWidth   = 20
	sourceFileWidth = 254
)

var pointFields = []vector.Field{
	vector.Int(AttrCDPNumber),
	vector.Int(AttrTraceNumber),
	vector.Int(AttrTraceSequence),
	vector.Float(AttrSourceX),
	vector.Float(AttrSourceY),
	vector.Int(AttrCoordUnit),
	vector.Int(AttrScalar),
	vector.Float(AttrOffset),
	vector.Float(AttrElevation),
	vector.String(AttrDateTime, dateTimeWidth),
}

var lineFields = []vector.Field{
	vector.Int(AttrLineID),
	vector.Int(AttrNumPoints),
	vector.Int(AttrStartTrace),
	vector.Int(AttrEndTrace),
	vector.Float(AttrLength),
	vector.Int(AttrCoordUnit),
	vector.Int(AttrScalar),
	vector.String(AttrStartTime, dateTimeWidth),
	vector.String(AttrEndTime, dateTimeWidth),
}

func (r Record) values() []any {
	return []any{
		r.CDPNumber,
		r.TraceNumber,
		r.TraceSequence,
		r.Point.X,
		r.Point.Y,
		r.UnitCode,
		r.Scalar,
		r.Offset,
		r.Elevation,
		formatTimestamp(r.Timestamp),
	}
}

func (l *Line) values() []any {
	return []any{
		l.ID,
		len(l.Points),
		l.StartTrace,
		l.EndTrace,
		l.Length,
		l.UnitCode,
		l.Scalar,
		formatTimestamp(l.StartTime),
		formatTimestamp(l.EndTime),
	}
}

func (l *Line) vertices() [][2]float64 {
	v := make([][2]float64, len(l.Points))
	for i, p := range l.Points {
		v[i] = [2]float64{p.X, p.Y}
	}
	return v
}

// PointLayer returns one point feature per record of the track.
func (t Track) PointLayer() vector.PointLayer {
	layer := vector.PointLayer{
		Fields:           pointFields,
		Features:         make([]vector.PointFeature, 0, len(t.Records)),
		SpatialReference: string(t.SpatialReference),
	}
	for _, r := range t.Records {
		layer.Features = append(layer.Features, vector.PointFeature{X: r.Point.X, Y: r.Point.Y, Values: r.values()})
	}
	return layer
}

// LineLayer returns the track line as a single feature. It reports false when
// the track has no line.
func (t Track) LineLayer() (vector.LineLayer, bool) {
	if t.Line == nil {
		return vector.LineLayer{}, false
	}
	return vector.LineLayer{
		Fields:           lineFields,
		Features:         []vector.LineFeature{{Vertices: t.Line.vertices(), Values: t.Line.values()}},
		SpatialReference: string(t.SpatialReference),
	}, true
}

// sourceName is the file name without its extension.
func (t Track) sourceName() string {
	return strings.TrimSuffix(t.File, filepath.Ext(t.File))
}

// CombinedPointLayer merges the points of several tracks, tagging every
// feature with the name of the file it came from. The spatial reference of the first
// non-empty track is used.
func CombinedPointLayer(tracks []Track) vector.PointLayer {
	layer := vector.PointLayer{
		Fields: append(append([]vector.Field(nil), pointFields...), vector.String(AttrSourceFile, sourceFileWidth)),
	}
	for _, t := range tracks {
		if t.Empty() {
			continue
		}
		if layer.SpatialReference == "" {
			layer.SpatialReference = string(t.SpatialReference)
		}
		for _, r := range t.Records {
			layer.Features = append(layer.Features, vector.PointFeature{
				X:      r.Point.X,
				Y:      r.Point.Y,
				Values: append(r.values(), t.sourceName()),
			})
		}
	}
	return layer
}

// CombinedLineLayer holds one line per track that has one, numbered from 1
// in input order.
func CombinedLineLayer(tracks []Track) vector.LineLayer {
	layer := vector.LineLayer{
		Fields: append(append([]vector.Field(nil), lineFields...), vector.String(AttrSourceFile, sourceFileWidth)),
	}
	id := 0
	for _, t := range tracks {
		if t.Line == nil {
			continue
		}
		if layer.SpatialReference == "" {
			layer.SpatialReference = string(t.SpatialReference)
		}
		id++
		values := t.Line.values()
		values[0] = id
		layer.Features = append(layer.Features, vector.LineFeature{
			Vertices: t.Line.vertices(),
			Values:   append(values, t.sourceName()),
		})
	}
	return layer
}
