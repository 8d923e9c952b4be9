// Package kumadb reads monitors and heartbeat history directly from an
// Uptime Kuma SQLite database. Raw values are passed through untouched so
// the analysis engine's timestamp policy stays authoritative.
package kumadb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"uptime-report/internal/domain"
)

// DB wraps the Uptime Kuma database connection. It implements
// domain.HeartbeatSource.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens the Uptime Kuma database at the given path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// ListMonitors returns all active monitors with parent/child links resolved.
func (d *DB) ListMonitors(ctx context.Context) ([]*domain.Monitor, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(url, ''), parent
		FROM monitor
		WHERE active = 1
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query monitors: %w", err)
	}
	defer rows.Close()

	var monitors []*domain.Monitor
	byID := make(map[int64]*domain.Monitor)

	for rows.Next() {
		var m domain.Monitor
		var parent sql.NullInt64
		if err := rows.Scan(&m.ID, &m.Name, &m.URL, &parent); err != nil {
			return nil, err
		}
		if parent.Valid {
			p := parent.Int64
			m.ParentID = &p
		}
		monitors = append(monitors, &m)
		byID[m.ID] = &m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, m := range monitors {
		if m.ParentID != nil {
			if parent, ok := byID[*m.ParentID]; ok {
				parent.ChildIDs = append(parent.ChildIDs, m.ID)
			}
		}
	}

	return monitors, nil
}

// BeatsSince returns the heartbeats recorded for a monitor within the last
// `hours` hours, oldest first. Timestamps come back as the raw TEXT the
// backend stored.
func (d *DB) BeatsSince(ctx context.Context, monitorID int64, hours int) ([]domain.HeartbeatRecord, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT time, status, ping, COALESCE(msg, '')
		FROM heartbeat
		WHERE monitor_id = ? AND time >= datetime('now', ?)
		ORDER BY time ASC
	`, monitorID, fmt.Sprintf("-%d hours", hours))
	if err != nil {
		return nil, fmt.Errorf("failed to query heartbeats: %w", err)
	}
	defer rows.Close()

	var records []domain.HeartbeatRecord
	for rows.Next() {
		var (
			timeRaw string
			status  int
			ping    sql.NullFloat64
			msg     string
		)
		if err := rows.Scan(&timeRaw, &status, &ping, &msg); err != nil {
			return nil, err
		}

		rec := domain.HeartbeatRecord{
			Time:    timeRaw,
			Status:  domain.BeatStatus(status),
			Message: msg,
		}
		if ping.Valid {
			v := ping.Float64
			rec.Ping = &v
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
