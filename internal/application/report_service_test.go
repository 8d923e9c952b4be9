package application

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"uptime-report/internal/domain"
)

var testNow = time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }

func TestNewReportService(t *testing.T) {
	service := NewReportService(NewMockHeartbeatSource(), nil)
	if service == nil {
		t.Fatal("expected non-nil service")
	}
}

func TestReportService_AnalyzeBeats(t *testing.T) {
	service := NewReportService(NewMockHeartbeatSource(), nil)

	records := []domain.HeartbeatRecord{
		{Time: "2024-03-13 14:00:00", Status: domain.StatusUp, Ping: floatPtr(100)},
		{Time: "2024-03-13 14:10:00", Status: domain.StatusDown, Message: "502 - Bad Gateway, but keyword [maintenance] found"},
		{Time: "2024-03-13 14:15:00", Status: domain.StatusUp, Ping: floatPtr(200)},
		{Time: "broken timestamp", Status: domain.StatusUp},
	}

	report := service.AnalyzeBeats("Website", records, testNow)

	if report.MonitorName != "Website" {
		t.Errorf("expected monitor name Website, got %q", report.MonitorName)
	}
	if !report.GeneratedAt.Equal(testNow) {
		t.Errorf("expected GeneratedAt %v, got %v", testNow, report.GeneratedAt)
	}
	if report.DroppedRecords != 1 {
		t.Errorf("expected 1 dropped record, got %d", report.DroppedRecords)
	}
	if len(report.Incidents) != 1 {
		t.Fatalf("expected 1 incident, got %d", len(report.Incidents))
	}
	if report.Incidents[0].Duration != 5*time.Minute {
		t.Errorf("expected 5m incident, got %v", report.Incidents[0].Duration)
	}
	if report.Keywords.TriggerCount != 1 {
		t.Errorf("expected 1 keyword trigger, got %d", report.Keywords.TriggerCount)
	}
	if got := report.Keywords.UniqueKeywords; len(got) != 1 || got[0] != "maintenance" {
		t.Errorf("expected keyword [maintenance], got %v", got)
	}

	day, ok := report.Summaries["day"]
	if !ok {
		t.Fatal("missing day summary")
	}
	if day.IncidentCount != 1 {
		t.Errorf("expected 1 incident in day window, got %d", day.IncidentCount)
	}
	if day.AvgLatencyMs == nil || *day.AvgLatencyMs != 150 {
		t.Errorf("expected avg latency 150, got %v", day.AvgLatencyMs)
	}
}

func TestReportService_AnalyzeBeats_EmptyBatch(t *testing.T) {
	service := NewReportService(NewMockHeartbeatSource(), nil)

	report := service.AnalyzeBeats("Quiet", nil, testNow)

	if len(report.Incidents) != 0 {
		t.Errorf("expected no incidents, got %d", len(report.Incidents))
	}
	if report.Keywords.Ratio != 0 {
		t.Errorf("expected zero keyword ratio, got %v", report.Keywords.Ratio)
	}
	for label, s := range report.Summaries {
		if s.IncidentCount != 0 || s.AvgLatencyMs != nil || s.MaxLatencyMs != nil {
			t.Errorf("%s: expected empty summary, got %+v", label, s)
		}
	}
}

func TestReportService_AnalyzeBeats_Idempotent(t *testing.T) {
	service := NewReportService(NewMockHeartbeatSource(), nil)

	records := []domain.HeartbeatRecord{
		{Time: "2024-03-13 10:00:00", Status: domain.StatusDown},
		{Time: "2024-03-13 10:30:00", Status: domain.StatusUp, Ping: floatPtr(80)},
	}

	first := service.AnalyzeBeats("M", records, testNow)
	second := service.AnalyzeBeats("M", records, testNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical reports for identical input and instant\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestReportService_GenerateReport(t *testing.T) {
	source := NewMockHeartbeatSource()
	source.Monitors = []*domain.Monitor{
		{ID: 1, Name: "Website"},
		{ID: 2, Name: "API"},
	}
	source.Beats[1] = []domain.HeartbeatRecord{
		{Time: "2024-03-13 12:00:00", Status: domain.StatusUp, Ping: floatPtr(90)},
	}

	service := NewReportService(source, nil)

	reports, err := service.GenerateReport(context.Background(), []int64{1, 2}, domain.PeriodWeek, time.UTC, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].MonitorName != "Website" || reports[1].MonitorName != "API" {
		t.Errorf("unexpected report order: %q, %q", reports[0].MonitorName, reports[1].MonitorName)
	}

	// Wednesday 15:30 UTC: the week began Monday 00:00, 63.5h earlier,
	// rounded to 64. The lookback must cover the whole period.
	if len(source.BeatsSinceCalls) != 2 || source.BeatsSinceCalls[0] != 64 {
		t.Errorf("expected BeatsSince called with 64 hours, got %v", source.BeatsSinceCalls)
	}
}

func TestReportService_GenerateReport_ExpandsGroups(t *testing.T) {
	source := NewMockHeartbeatSource()
	source.Monitors = []*domain.Monitor{
		{ID: 1, Name: "Production", ChildIDs: []int64{2, 3}},
		{ID: 2, Name: "Website"},
		{ID: 3, Name: "API"},
		{ID: 4, Name: "Staging"},
	}

	service := NewReportService(source, nil)

	reports, err := service.GenerateReport(context.Background(), []int64{1}, domain.PeriodDay, time.UTC, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, r := range reports {
		names = append(names, r.MonitorName)
	}
	want := []string{"Website", "API"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected group expansion to %v, got %v", want, names)
	}
}

func TestReportService_GenerateReport_DefaultSelection(t *testing.T) {
	source := NewMockHeartbeatSource()
	source.Monitors = []*domain.Monitor{
		{ID: 1, Name: "Group", ChildIDs: []int64{2}},
		{ID: 2, Name: "Website"},
		{ID: 3, Name: "API"},
	}

	service := NewReportService(source, nil)

	reports, err := service.GenerateReport(context.Background(), nil, domain.PeriodDay, time.UTC, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Empty selection means all non-group monitors.
	if len(reports) != 2 {
		t.Errorf("expected 2 reports, got %d", len(reports))
	}
}

func TestReportService_GenerateReport_UnknownMonitor(t *testing.T) {
	source := NewMockHeartbeatSource()
	source.Monitors = []*domain.Monitor{{ID: 1, Name: "Website"}}

	service := NewReportService(source, nil)

	_, err := service.GenerateReport(context.Background(), []int64{99}, domain.PeriodDay, time.UTC, testNow)
	if err == nil {
		t.Fatal("expected error for unknown monitor ID")
	}
}

func TestReportService_GenerateReport_InvalidPeriod(t *testing.T) {
	service := NewReportService(NewMockHeartbeatSource(), nil)

	_, err := service.GenerateReport(context.Background(), nil, domain.Period("century"), time.UTC, testNow)
	if err == nil {
		t.Fatal("expected validation error for invalid period")
	}
}

func TestReportService_GenerateReport_SourceError(t *testing.T) {
	source := NewMockHeartbeatSource()
	source.Monitors = []*domain.Monitor{{ID: 1, Name: "Website"}}
	source.BeatsSinceFn = func(ctx context.Context, monitorID int64, hours int) ([]domain.HeartbeatRecord, error) {
		return nil, errors.New("database locked")
	}

	service := NewReportService(source, nil)

	_, err := service.GenerateReport(context.Background(), []int64{1}, domain.PeriodDay, time.UTC, testNow)
	if err == nil {
		t.Fatal("expected error when the source fails")
	}
}

func TestReportService_GetMonitor(t *testing.T) {
	source := NewMockHeartbeatSource()
	source.Monitors = []*domain.Monitor{{ID: 7, Name: "Website"}}

	service := NewReportService(source, nil)

	m, err := service.GetMonitor(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.Name != "Website" {
		t.Errorf("expected Website, got %+v", m)
	}

	m, err = service.GetMonitor(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil for unknown monitor, got %+v", m)
	}
}
