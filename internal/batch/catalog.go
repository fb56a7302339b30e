package batch

import (
	"context"
	"log/slog"

	"github.com/roman-kulish/segy-inspector/internal/navigation"
	"github.com/roman-kulish/segy-inspector/internal/segy"
	"github.com/roman-kulish/segy-inspector/internal/storage"
)

// record stores the outcome of one file. Catalog failures are logged and do
// not fail the file.
func (a *Aggregator) record(ctx context.Context, runID int64, fr FileResult, ds *segy.Dataset) {
	if a.catalog == nil {
		return
	}

	rec := &storage.FileRecord{
		Path:             fr.Path,
		Status:           storage.StatusProcessed,
		Message:          fr.Message,
		SpatialReference: string(fr.Track.SpatialReference),
	}
	if fr.Err != nil {
		rec.Status = storage.StatusFailed
	}
	if ds != nil {
		rec.TraceCount = ds.Info.TraceCount
		rec.SampleCount = ds.Info.SampleCount
		rec.SampleIntervalMs = ds.Info.SampleIntervalMs
	}
	if fr.Track.Line != nil {
		length := fr.Track.Line.Length
		rec.LineLength = &length
	}

	fileID, err := a.catalog.StoreFile(ctx, runID, rec)
	if err != nil {
		a.logger.Warn("recording file in catalog", slog.String("file", fr.Path), slog.String("error", err.Error()))
		return
	}

	if err = a.catalog.StoreNavPoints(ctx, fileID, navPoints(fr.Track)); err != nil {
		a.logger.Warn("recording navigation in catalog", slog.String("file", fr.Path), slog.String("error", err.Error()))
	}
}

func navPoints(track navigation.Track) []storage.NavPoint {
	points := make([]storage.NavPoint, len(track.Records))
	for i, r := range track.Records {
		points[i] = storage.NavPoint{
			Trace:    r.TraceNumber,
			CDP:      r.CDPNumber,
			X:        r.Point.X,
			Y:        r.Point.Y,
			UnitCode: r.UnitCode,
		}
		if r.Timestamp != nil {
			ts := r.Timestamp.String()
			points[i].RecordedAt = &ts
		}
	}
	return points
}
