package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

func closeWithError(cl interface{ Close() error }, err *error) {
	if cErr := cl.Close(); cErr != nil && *err == nil {
		*err = cErr
	}
}

// rollbackWithError ignores sql.ErrTxDone so it can be deferred before Commit.
func rollbackWithError(rb interface{ Rollback() error }, err *error) {
	if cErr := rb.Rollback(); cErr != nil && !errors.Is(cErr, sql.ErrTxDone) && *err == nil {
		*err = cErr
	}
}

// toConfigData accepts a string, raw bytes or any JSON-serialisable value.
func toConfigData(config any) (sql.NullString, error) {
	switch v := config.(type) {
	case nil:
		return sql.NullString{}, nil
	case string:
		return sql.NullString{String: v, Valid: true}, nil
	case []byte:
		return sql.NullString{String: string(v), Valid: true}, nil
	default:
		p, err := json.Marshal(v)
		if err != nil {
			return sql.NullString{}, fmt.Errorf("marshaling config: %w", err)
		}
		return sql.NullString{String: string(p), Valid: true}, nil
	}
}

func toFileData(runID int64, f *FileRecord) *fileData {
	d := &fileData{
		RunID:  runID,
		Path:   f.Path,
		Status: string(f.Status),
		Message: sql.NullString{
			String: f.Message,
			Valid:  f.Message != "",
		},
		SpatialReference: sql.NullString{
			String: f.SpatialReference,
			Valid:  f.SpatialReference != "",
		},
	}

	// Counts are only meaningful once the file has been decoded.
	if f.TraceCount > 0 {
		d.TraceCount = sql.NullInt64{Int64: int64(f.TraceCount), Valid: true}
		d.SampleCount = sql.NullInt64{Int64: int64(f.SampleCount), Valid: true}
		d.SampleIntervalMs = sql.NullFloat64{Float64: f.SampleIntervalMs, Valid: true}
	}
	if f.LineLength != nil {
		d.LineLength = sql.NullFloat64{Float64: *f.LineLength, Valid: true}
	}
	return d
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
