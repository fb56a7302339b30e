package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SqliteStore {
	t.Helper()
	s := NewSqliteStore(filepath.Join(t.TempDir(), "catalog.db"))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSqliteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	runID, err := s.CreateRun(ctx, map[string]any{"colormap": "bupu"})
	require.NoError(t, err)

	length := 1234.5
	okID, err := s.StoreFile(ctx, runID, &FileRecord{
		Path:             "/data/a.sgy",
		Status:           StatusProcessed,
		TraceCount:       3,
		SampleCount:      500,
		SampleIntervalMs: 2,
		SpatialReference: "EPSG:4326",
		LineLength:       &length,
	})
	require.NoError(t, err)

	_, err = s.StoreFile(ctx, runID, &FileRecord{
		Path:    "/data/b.sgy",
		Status:  StatusFailed,
		Message: "no valid coordinates",
	})
	require.NoError(t, err)

	ts := "2021-045 07:05:09"
	points := make([]NavPoint, 250)
	for i := range points {
		points[i] = NavPoint{Trace: i + 1, CDP: int64(100 + i), X: float64(i), Y: float64(-i), UnitCode: 1}
	}
	points[0].RecordedAt = &ts
	require.NoError(t, s.StoreNavPoints(ctx, okID, points))

	run, err := s.Run(ctx, runID)
	require.NoError(t, err)
	require.NotNil(t, run.Config)
	assert.JSONEq(t, `{"colormap":"bupu"}`, *run.Config)
	assert.False(t, run.StartedAt.IsZero())

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)

	files, err := s.Files(ctx, runID)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, StatusProcessed, files[0].Status)
	assert.Equal(t, 500, files[0].SampleCount)
	require.NotNil(t, files[0].LineLength)
	assert.Equal(t, length, *files[0].LineLength)

	assert.Equal(t, StatusFailed, files[1].Status)
	assert.Equal(t, "no valid coordinates", files[1].Message)
	assert.Zero(t, files[1].TraceCount)
	assert.Nil(t, files[1].LineLength)

	got, err := s.NavPoints(ctx, okID)
	require.NoError(t, err)
	require.Len(t, got, 250)
	assert.Equal(t, points[0], got[0])
	assert.Equal(t, points[249], got[249])
	assert.Nil(t, got[1].RecordedAt)
}

func TestSqliteStoreRunNotFound(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateRun(ctx, nil)
	require.NoError(t, err)

	_, err = s.Run(ctx, 42)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSqliteStoreCloseTwice(t *testing.T) {
	s := NewSqliteStore(filepath.Join(t.TempDir(), "catalog.db"))
	_, err := s.CreateRun(context.Background(), "raw")
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
}

func TestToConfigData(t *testing.T) {
	tests := []struct {
		in    any
		want  string
		valid bool
	}{
		{nil, "", false},
		{"a: b", "a: b", true},
		{[]byte("raw"), "raw", true},
		{struct{ N int }{N: 1}, `{"N":1}`, true},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			got, err := toConfigData(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, got.Valid)
			assert.Equal(t, tt.want, got.String)
		})
	}

	_, err := toConfigData(make(chan int))
	assert.Error(t, err)
}
