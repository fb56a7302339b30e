package storage

import (
	_ "embed"
)

//go:embed schema.sql
var initSchemaSQL string

const (
	initIndexesSQL = `
CREATE INDEX IF NOT EXISTS idx_files_run ON files (run_id);
CREATE INDEX IF NOT EXISTS idx_nav_points_file ON nav_points (file_id, trace);`

	insertRunSQL = `
INSERT INTO runs (started_at, config)
VALUES (?, ?)`

	selectRunSQL = `
SELECT
    id,
    started_at,
    config
FROM runs
WHERE
    id = ?`

	selectRunsSQL = `
SELECT
    id,
    started_at,
    config
FROM runs
ORDER BY started_at, id`

	insertFileSQL = `
INSERT INTO files (run_id,
                   path,
                   status,
                   message,
                   trace_count,
                   sample_count,
                   sample_interval_ms,
                   spatial_reference,
                   line_length)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectFilesSQL = `
SELECT
    id,
    run_id,
    path,
    status,
    message,
    trace_count,
    sample_count,
    sample_interval_ms,
    spatial_reference,
    line_length
FROM files
WHERE
    run_id = ?
ORDER BY id`

	insertNavPointSQL = `
INSERT INTO nav_points (file_id,
                        trace,
                        cdp,
                        x,
                        y,
                        unit_code,
                        recorded_at)
VALUES `

	selectNavPointsSQL = `
SELECT
    trace,
    cdp,
    x,
    y,
    unit_code,
    recorded_at
FROM nav_points
WHERE
    file_id = ?
ORDER BY trace`
)
