package application

import (
	"context"

	"uptime-report/internal/domain"
)

// MockHeartbeatSource is a mock implementation of domain.HeartbeatSource
type MockHeartbeatSource struct {
	Monitors       []*domain.Monitor
	Beats          map[int64][]domain.HeartbeatRecord
	ListMonitorsFn func(ctx context.Context) ([]*domain.Monitor, error)
	BeatsSinceFn   func(ctx context.Context, monitorID int64, hours int) ([]domain.HeartbeatRecord, error)

	// BeatsSinceCalls records the hours argument of each BeatsSince call.
	BeatsSinceCalls []int
}

func NewMockHeartbeatSource() *MockHeartbeatSource {
	return &MockHeartbeatSource{
		Beats: make(map[int64][]domain.HeartbeatRecord),
	}
}

func (m *MockHeartbeatSource) ListMonitors(ctx context.Context) ([]*domain.Monitor, error) {
	if m.ListMonitorsFn != nil {
		return m.ListMonitorsFn(ctx)
	}
	return m.Monitors, nil
}

func (m *MockHeartbeatSource) BeatsSince(ctx context.Context, monitorID int64, hours int) ([]domain.HeartbeatRecord, error) {
	m.BeatsSinceCalls = append(m.BeatsSinceCalls, hours)
	if m.BeatsSinceFn != nil {
		return m.BeatsSinceFn(ctx, monitorID, hours)
	}
	return m.Beats[monitorID], nil
}
