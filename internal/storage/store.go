// Package storage keeps a sqlite catalog of batch runs, the files they
// processed and the navigation points extracted from them.
package storage

import (
	"context"
	"errors"
)

// ErrNoData is returned when a lookup matches nothing.
var ErrNoData = errors.New("no data available")

// Store records batch runs. Writes are atomic per call.
type Store interface {
	// CreateRun starts a new run and returns its identifier. config may be a
	// string, []byte or any JSON-serialisable value, or nil.
	CreateRun(ctx context.Context, config any) (runID int64, err error)

	// StoreFile records the outcome of one file within a run.
	StoreFile(ctx context.Context, runID int64, f *FileRecord) (fileID int64, err error)

	// StoreNavPoints saves the navigation points of a file in batches inside
	// a single transaction.
	StoreNavPoints(ctx context.Context, fileID int64, points []NavPoint) error

	// Run returns a run by identifier, or ErrNoData.
	Run(ctx context.Context, id int64) (*Run, error)

	// Runs returns all runs ordered by start time.
	Runs(ctx context.Context) ([]*Run, error)

	// Files returns the files of a run in insertion order.
	Files(ctx context.Context, runID int64) ([]*FileRecord, error)

	// NavPoints returns the points of a file ordered by trace number.
	NavPoints(ctx context.Context, fileID int64) ([]NavPoint, error)

	// Close releases all connections. It is safe to call more than once.
	Close() error
}
