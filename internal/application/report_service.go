package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"uptime-report/internal/domain"
)

// ReportService turns raw heartbeat history into per-monitor uptime reports.
type ReportService struct {
	source domain.HeartbeatSource
	logger *zap.Logger
}

// NewReportService creates a new ReportService. A nil logger disables logging.
func NewReportService(source domain.HeartbeatSource, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		source: source,
		logger: logger,
	}
}

// AnalyzeBeats runs the full analysis for one monitor over an already-fetched
// heartbeat batch. The evaluation instant now is the single clock for the
// whole run: incident closing, window boundaries and ongoing durations all
// measure against it, so the result is a pure function of (records, now).
func (s *ReportService) AnalyzeBeats(monitorName string, records []domain.HeartbeatRecord, now time.Time) *domain.MonitorReport {
	beats, pings, dropped := domain.BuildWorkingSet(records)
	if dropped > 0 {
		// Deliberate log-and-skip policy: records with unparseable
		// timestamps are excluded, counted, and reported.
		s.logger.Warn("dropped heartbeats with unparseable timestamps",
			zap.String("monitor", monitorName),
			zap.Int("dropped", dropped),
			zap.Int("total", len(records)))
	}

	incidents := domain.DetectIncidents(beats, now)

	return &domain.MonitorReport{
		MonitorName:    monitorName,
		GeneratedAt:    now,
		Keywords:       domain.AnalyzeKeywords(records),
		Incidents:      incidents,
		Summaries:      domain.SummarizePeriods(incidents, pings, now),
		DroppedRecords: dropped,
	}
}

// AnalyzeMonitor fetches a monitor's heartbeat history covering the last
// `hours` hours and analyzes it.
func (s *ReportService) AnalyzeMonitor(ctx context.Context, monitor *domain.Monitor, hours int, now time.Time) (*domain.MonitorReport, error) {
	records, err := s.source.BeatsSince(ctx, monitor.ID, hours)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch heartbeats for monitor %d: %w", monitor.ID, err)
	}

	s.logger.Info("analyzing monitor",
		zap.Int64("monitor_id", monitor.ID),
		zap.String("monitor", monitor.Name),
		zap.Int("heartbeats", len(records)))

	return s.AnalyzeBeats(monitor.Name, records, now), nil
}

// GenerateReport produces reports for the selected monitors over the current
// calendar period. Selecting a group expands to its children; an empty
// selection means every non-group monitor. The lookback is sized from the
// start of the current period so the engine sees the whole reporting window.
func (s *ReportService) GenerateReport(ctx context.Context, monitorIDs []int64, period domain.Period, loc *time.Location, now time.Time) ([]*domain.MonitorReport, error) {
	hours, err := domain.HoursSincePeriodStart(period, loc, now)
	if err != nil {
		return nil, err
	}
	if hours < 1 {
		// The period began within the hour; still request one hour of
		// history so there is something to analyze.
		hours = 1
	}

	monitors, err := s.resolveMonitors(ctx, monitorIDs)
	if err != nil {
		return nil, err
	}

	reports := make([]*domain.MonitorReport, 0, len(monitors))
	for _, monitor := range monitors {
		report, err := s.AnalyzeMonitor(ctx, monitor, hours, now)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// ListMonitors returns the monitors known to the heartbeat source.
func (s *ReportService) ListMonitors(ctx context.Context) ([]*domain.Monitor, error) {
	return s.source.ListMonitors(ctx)
}

// GetMonitor returns one monitor by ID, or nil when unknown.
func (s *ReportService) GetMonitor(ctx context.Context, id int64) (*domain.Monitor, error) {
	monitors, err := s.source.ListMonitors(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range monitors {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

// resolveMonitors maps the selected IDs to monitors, expanding groups to
// their children. With no selection, all non-group monitors are returned.
func (s *ReportService) resolveMonitors(ctx context.Context, ids []int64) ([]*domain.Monitor, error) {
	all, err := s.source.ListMonitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list monitors: %w", err)
	}

	byID := make(map[int64]*domain.Monitor, len(all))
	for _, m := range all {
		byID[m.ID] = m
	}

	if len(ids) == 0 {
		var selected []*domain.Monitor
		for _, m := range all {
			if !m.IsGroup() {
				selected = append(selected, m)
			}
		}
		return selected, nil
	}

	seen := make(map[int64]struct{})
	var selected []*domain.Monitor
	add := func(id int64) error {
		if _, ok := seen[id]; ok {
			return nil
		}
		m, ok := byID[id]
		if !ok {
			return fmt.Errorf("unknown monitor ID %d", id)
		}
		seen[id] = struct{}{}
		if m.IsGroup() {
			for _, child := range m.ChildIDs {
				if cm, ok := byID[child]; ok {
					if _, dup := seen[child]; !dup {
						seen[child] = struct{}{}
						selected = append(selected, cm)
					}
				}
			}
			return nil
		}
		selected = append(selected, m)
		return nil
	}

	for _, id := range ids {
		if err := add(id); err != nil {
			return nil, err
		}
	}
	return selected, nil
}
