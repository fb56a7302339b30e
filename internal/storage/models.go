package storage

import (
	"database/sql"
	"time"
)

// FileStatus is the outcome of processing one file.
type FileStatus string

const (
	StatusProcessed FileStatus = "processed"
	StatusFailed    FileStatus = "failed"
)

// Run is one batch invocation.
type Run struct {
	ID        int64
	StartedAt time.Time
	Config    *string // JSON, nil when not recorded
}

// FileRecord is the catalog entry of one processed or failed file.
type FileRecord struct {
	ID               int64
	RunID            int64
	Path             string
	Status           FileStatus
	Message          string // Failure explanation, empty on success
	TraceCount       int
	SampleCount      int
	SampleIntervalMs float64
	SpatialReference string
	LineLength       *float64 // nil when the file has no track line
}

// NavPoint is one stored navigation point.
type NavPoint struct {
	Trace      int
	CDP        int64
	X          float64
	Y          float64
	UnitCode   int64
	RecordedAt *string // "YYYY-DDD HH:MM:SS", nil when unknown
}

type fileData struct {
	RunID            int64
	Path             string
	Status           string
	Message          sql.NullString
	TraceCount       sql.NullInt64
	SampleCount      sql.NullInt64
	SampleIntervalMs sql.NullFloat64
	SpatialReference sql.NullString
	LineLength       sql.NullFloat64
}
