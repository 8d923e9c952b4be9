package domain

import (
	"context"
	"time"
)

// BeatStatus is the status value reported with each heartbeat.
// The numeric values match what Uptime Kuma stores.
type BeatStatus int

const (
	StatusDown        BeatStatus = 0
	StatusUp          BeatStatus = 1
	StatusPending     BeatStatus = 2
	StatusMaintenance BeatStatus = 3
)

// IsDown returns true only for an explicit down status. Pending and
// maintenance beats count as "not down" for incident detection.
func (s BeatStatus) IsDown() bool {
	return s == StatusDown
}

// HeartbeatRecord is one raw probe result as delivered by the monitoring
// backend. Time is left untyped because the backend reports either a
// "YYYY-MM-DD HH:MM:SS" text form or a numeric epoch value.
type HeartbeatRecord struct {
	Time    any
	Status  BeatStatus
	Ping    *float64 // latency in ms, nil when not reported
	Message string
}

// NormalizedBeat is a heartbeat whose timestamp has been canonicalized to UTC.
type NormalizedBeat struct {
	Instant time.Time
	Status  BeatStatus
}

// PingSample is a single latency measurement with a canonical timestamp.
type PingSample struct {
	Instant   time.Time
	LatencyMs float64
}

// Monitor identifies a monitored target. The name is used only for labeling
// report output, never for analysis.
type Monitor struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	URL      string  `json:"url,omitempty"`
	ParentID *int64  `json:"parent_id,omitempty"`
	ChildIDs []int64 `json:"child_ids,omitempty"`
}

// IsGroup returns true if the monitor groups other monitors.
func (m *Monitor) IsGroup() bool {
	return len(m.ChildIDs) > 0
}

// HeartbeatSource supplies heartbeat history and monitor metadata.
type HeartbeatSource interface {
	// ListMonitors returns all known monitors.
	ListMonitors(ctx context.Context) ([]*Monitor, error)

	// BeatsSince returns the raw heartbeats recorded for a monitor within
	// the last `hours` hours, oldest first.
	BeatsSince(ctx context.Context, monitorID int64, hours int) ([]HeartbeatRecord, error)
}

// BuildWorkingSet normalizes a raw heartbeat batch into the cleaned status
// stream and latency samples the analysis runs on. Records whose timestamp
// cannot be parsed are excluded; the count of exclusions is returned so the
// caller can surface it as a diagnostic.
func BuildWorkingSet(records []HeartbeatRecord) (beats []NormalizedBeat, pings []PingSample, dropped int) {
	for _, rec := range records {
		instant, ok := ParseTimestamp(rec.Time)
		if !ok {
			dropped++
			continue
		}
		beats = append(beats, NormalizedBeat{Instant: instant, Status: rec.Status})
		if rec.Ping != nil {
			pings = append(pings, PingSample{Instant: instant, LatencyMs: *rec.Ping})
		}
	}
	return beats, pings, dropped
}
