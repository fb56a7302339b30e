package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// navPointsBatchSize keeps a multi-row insert well under the sqlite bound
// variable limit.
const navPointsBatchSize = 100

// SqliteStore is a Store backed by a sqlite file. Write and read connections
// are opened lazily on first use.
type SqliteStore struct {
	dbPath string

	writeDB     *sql.DB
	writeDBOnce sync.Once
	writeDBErr  error

	readDB     *sql.DB
	readDBOnce sync.Once
	readDBErr  error

	closeOnce sync.Once
	closeErr  error
}

var _ Store = (*SqliteStore)(nil)

// NewSqliteStore returns a store for the database at dbPath. The file and the
// schema are created on the first write.
func NewSqliteStore(dbPath string) *SqliteStore {
	return &SqliteStore{dbPath: dbPath}
}

func runSQLCommand(db *sql.DB, sql string) error {
	_, err := db.Exec(sql)
	return err
}

func (s *SqliteStore) getWriteDB() (*sql.DB, error) {
	s.writeDBOnce.Do(func() {
		db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", s.dbPath, "_journal_mode=WAL&_synchronous=NORMAL"))
		if err != nil {
			s.writeDBErr = fmt.Errorf("opening write connection: %w", err)
			return
		}
		db.SetMaxOpenConns(1)

		if err = runSQLCommand(db, initSchemaSQL); err != nil {
			_ = db.Close()
			s.writeDBErr = fmt.Errorf("initializing schema: %w", err)
			return
		}

		s.writeDB = db
	})

	return s.writeDB, s.writeDBErr
}

func (s *SqliteStore) getReadDB() (*sql.DB, error) {
	s.readDBOnce.Do(func() {
		db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?%s", s.dbPath, "mode=ro"))
		if err != nil {
			s.readDBErr = fmt.Errorf("opening read connection: %w", err)
			return
		}
		s.readDB = db
	})

	return s.readDB, s.readDBErr
}

func (s *SqliteStore) CreateRun(ctx context.Context, config any) (runID int64, err error) {
	configData, err := toConfigData(config)
	if err != nil {
		return
	}

	db, err := s.getWriteDB()
	if err != nil {
		err = fmt.Errorf("getting write connection: %w", err)
		return
	}

	stmt, err := db.PrepareContext(ctx, insertRunSQL)
	if err != nil {
		err = fmt.Errorf("preparing statement: %w", err)
		return
	}
	defer closeWithError(stmt, &err)

	result, err := stmt.ExecContext(ctx, time.Now().UTC(), configData)
	if err != nil {
		err = fmt.Errorf("inserting run: %w", err)
		return
	}

	runID, err = result.LastInsertId()
	if err != nil {
		err = fmt.Errorf("getting run ID: %w", err)
	}
	return
}

func (s *SqliteStore) StoreFile(ctx context.Context, runID int64, f *FileRecord) (fileID int64, err error) {
	db, err := s.getWriteDB()
	if err != nil {
		err = fmt.Errorf("getting write connection: %w", err)
		return
	}

	stmt, err := db.PrepareContext(ctx, insertFileSQL)
	if err != nil {
		err = fmt.Errorf("preparing statement: %w", err)
		return
	}
	defer closeWithError(stmt, &err)

	data := toFileData(runID, f)

	result, err := stmt.ExecContext(
		ctx,
		data.RunID,
		data.Path,
		data.Status,
		data.Message,
		data.TraceCount,
		data.SampleCount,
		data.SampleIntervalMs,
		data.SpatialReference,
		data.LineLength,
	)
	if err != nil {
		err = fmt.Errorf("inserting file: %w", err)
		return
	}

	fileID, err = result.LastInsertId()
	if err != nil {
		err = fmt.Errorf("getting file ID: %w", err)
	}
	return
}

func (s *SqliteStore) StoreNavPoints(ctx context.Context, fileID int64, points []NavPoint) (err error) {
	if len(points) == 0 {
		return
	}

	db, err := s.getWriteDB()
	if err != nil {
		return fmt.Errorf("getting write connection: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer rollbackWithError(tx, &err)

	const valuesPlaceholder = "(?, ?, ?, ?, ?, ?, ?)"

	for chunk := range slices.Chunk(points, navPointsBatchSize) {
		values := make([]any, 0, len(chunk)*7)

		var sb strings.Builder
		sb.WriteString(insertNavPointSQL)

		for i, p := range chunk {
			recordedAt := sql.NullString{}
			if p.RecordedAt != nil {
				recordedAt = sql.NullString{String: *p.RecordedAt, Valid: true}
			}
			values = append(values, fileID, p.Trace, p.CDP, p.X, p.Y, p.UnitCode, recordedAt)

			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(valuesPlaceholder)
		}

		if _, err = tx.ExecContext(ctx, sb.String(), values...); err != nil {
			return fmt.Errorf("batch inserting navigation points: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (s *SqliteStore) Run(ctx context.Context, id int64) (run *Run, err error) {
	db, err := s.getReadDB()
	if err != nil {
		err = fmt.Errorf("getting read connection: %w", err)
		return
	}

	stmt, err := db.PrepareContext(ctx, selectRunSQL)
	if err != nil {
		err = fmt.Errorf("preparing statement: %w", err)
		return
	}
	defer closeWithError(stmt, &err)

	var r Run
	var config sql.NullString
	if err = stmt.QueryRowContext(ctx, id).Scan(&r.ID, &r.StartedAt, &config); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = fmt.Errorf("run %d: %w", id, ErrNoData)
			return
		}
		err = fmt.Errorf("scanning run: %w", err)
		return
	}
	r.Config = fromNullString(config)

	return &r, nil
}

func (s *SqliteStore) Runs(ctx context.Context) (runs []*Run, err error) {
	db, err := s.getReadDB()
	if err != nil {
		err = fmt.Errorf("getting read connection: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, selectRunsSQL)
	if err != nil {
		err = fmt.Errorf("querying runs: %w", err)
		return
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var r Run
		var config sql.NullString
		if err = rows.Scan(&r.ID, &r.StartedAt, &config); err != nil {
			err = fmt.Errorf("scanning run: %w", err)
			return
		}
		r.Config = fromNullString(config)
		runs = append(runs, &r)
	}
	err = rows.Err()
	return
}

func (s *SqliteStore) Files(ctx context.Context, runID int64) (files []*FileRecord, err error) {
	db, err := s.getReadDB()
	if err != nil {
		err = fmt.Errorf("getting read connection: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, selectFilesSQL, runID)
	if err != nil {
		err = fmt.Errorf("querying files: %w", err)
		return
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var f FileRecord
		var status string
		var message, srs sql.NullString
		var traces, samples sql.NullInt64
		var interval, length sql.NullFloat64

		if err = rows.Scan(&f.ID, &f.RunID, &f.Path, &status, &message, &traces, &samples, &interval, &srs, &length); err != nil {
			err = fmt.Errorf("scanning file: %w", err)
			return
		}

		f.Status = FileStatus(status)
		f.Message = message.String
		f.TraceCount = int(traces.Int64)
		f.SampleCount = int(samples.Int64)
		f.SampleIntervalMs = interval.Float64
		f.SpatialReference = srs.String
		if length.Valid {
			f.LineLength = &length.Float64
		}
		files = append(files, &f)
	}
	err = rows.Err()
	return
}

func (s *SqliteStore) NavPoints(ctx context.Context, fileID int64) (points []NavPoint, err error) {
	db, err := s.getReadDB()
	if err != nil {
		err = fmt.Errorf("getting read connection: %w", err)
		return
	}

	rows, err := db.QueryContext(ctx, selectNavPointsSQL, fileID)
	if err != nil {
		err = fmt.Errorf("querying navigation points: %w", err)
		return
	}
	defer closeWithError(rows, &err)

	for rows.Next() {
		var p NavPoint
		var recordedAt sql.NullString
		if err = rows.Scan(&p.Trace, &p.CDP, &p.X, &p.Y, &p.UnitCode, &recordedAt); err != nil {
			err = fmt.Errorf("scanning navigation point: %w", err)
			return
		}
		p.RecordedAt = fromNullString(recordedAt)
		points = append(points, p)
	}
	err = rows.Err()
	return
}

func (s *SqliteStore) Close() error {
	s.closeOnce.Do(func() {
		var writeErr, readErr error

		if s.writeDB != nil {
			_ = runSQLCommand(s.writeDB, initIndexesSQL)

			writeErr = s.writeDB.Close()
			s.writeDB = nil
		}

		if s.readDB != nil {
			readErr = s.readDB.Close()
			s.readDB = nil
		}

		s.closeErr = errors.Join(writeErr, readErr)
	})

	return s.closeErr
}
