package navigation

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"github.com/roman-kulish/segy-inspector/internal/header"
	"github.com/roman-kulish/segy-inspector/internal/segy"
)

// Record is the navigation point of one trace.
type Record struct {
	Point         CoordinatePoint
	CDPNumber     int64
	TraceNumber   int // 1-based
	TraceSequence int64
	Offset        float64
	Elevation     float64
	UnitCode      int64
	Scalar        int64
	Timestamp     *Timestamp // nil when the trace has no recording date
}

// Line is the track of one file through its surviving points.
type Line struct {
	ID         int
	Points     []CoordinatePoint
	StartTrace int
	EndTrace   int
	StartTime  *Timestamp
	EndTime    *Timestamp
	UnitCode   int64
	Scalar     int64
	Length     float64 // Metres for geographic units, native units otherwise
}

// Track is the navigation geometry of one file.
type Track struct {
	File             string
	Records          []Record
	Line             *Line // nil with fewer than two points
	SpatialReference SpatialReference
}

// Empty reports whether no trace had usable coordinates.
func (t Track) Empty() bool {
	return len(t.Records) == 0
}

// Build normalises every trace in order and assembles the point records and
// the track line. Traces without usable coordinates are skipped. A file with
// no usable coordinates yields an empty Track, not an error.
func Build(info segy.FileInfo, table segy.TraceHeaderTable) Track {
	track := Track{File: info.Filename}

	for i, h := range table {
		pt, ok := Normalize(h, i)
		if !ok {
			continue
		}

		traceNumber := i + 1
		track.Records = append(track.Records, Record{
			Point:         pt,
			CDPNumber:     h.ValueOr(header.TraceCDP, int64(traceNumber)),
			TraceNumber:   traceNumber,
			TraceSequence: h.ValueOr(header.TraceSequenceLine, int64(traceNumber)),
			Offset:        float64(h.ValueOr(header.TraceOffset, 0)),
			Elevation:     float64(h.ValueOr(header.TraceReceiverElevation, 0)),
			UnitCode:      h.ValueOr(header.TraceCoordinateUnits, defaultUnitCode),
			Scalar:        h.ValueOr(header.TraceSourceGroupScalar, 1),
			Timestamp:     DeriveTimestamp(h),
		})
	}

	if track.Empty() {
		return track
	}

	first, last := track.Records[0], track.Records[len(track.Records)-1]
	track.SpatialReference = SpatialReferenceFor(first.UnitCode, first.Point)

	if len(track.Records) < 2 {
		return track
	}

	points := make([]CoordinatePoint, len(track.Records))
	for i, r := range track.Records {
		points[i] = r.Point
	}

	track.Line = &Line{
		ID:         1,
		Points:     points,
		StartTrace: first.TraceNumber,
		EndTrace:   last.TraceNumber,
		StartTime:  first.Timestamp,
		EndTime:    last.Timestamp,
		UnitCode:   first.UnitCode,
		Scalar:     first.Scalar,
		Length:     lineLength(points),
	}
	return track
}

// LineString returns the line vertices as an orb geometry.
func (l *Line) LineString() orb.LineString {
	ls := make(orb.LineString, len(l.Points))
	for i, p := range l.Points {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}

func lineLength(points []CoordinatePoint) float64 {
	ls := make(orb.LineString, len(points))
	for i, p := range points {
		ls[i] = orb.Point{p.X, p.Y}
	}
	if points[0].Units.Geographic() {
		return geo.Length(ls)
	}
	return planar.Length(ls)
}
