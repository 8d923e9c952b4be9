package render

import (
	"strings"
	"testing"
	"time"

	"uptime-report/internal/domain"
)

var renderNow = time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }

func sampleReport() *domain.MonitorReport {
	return &domain.MonitorReport{
		MonitorName: "Website",
		GeneratedAt: renderNow,
		Keywords: domain.KeywordAnalysis{
			UniqueKeywords: []string{"sql-error", "timeout"},
			TriggerCount:   3,
			Ratio:          1.25,
		},
		Incidents: []domain.DowntimeIncident{
			{Start: renderNow.Add(-26 * time.Hour), Duration: 10 * time.Minute},
			{Start: renderNow.Add(-time.Hour), Duration: 45 * time.Minute, Ongoing: true},
		},
		Summaries: map[string]domain.PeriodSummary{
			"day": {
				Period:        "day",
				IncidentCount: 1,
				AvgDuration:   45 * time.Minute,
				DownPercent:   3.13,
				AvgLatencyMs:  floatPtr(150.7),
				MaxLatencyMs:  floatPtr(300.2),
			},
			"week":  {Period: "week", IncidentCount: 2, AvgDuration: 27*time.Minute + 30*time.Second, DownPercent: 0.55},
			"month": {Period: "month", IncidentCount: 2, AvgDuration: 27*time.Minute + 30*time.Second, DownPercent: 0.13},
		},
		DroppedRecords: 2,
	}
}

func renderToString(t *testing.T, reports []*domain.MonitorReport) string {
	t.Helper()
	var sb strings.Builder
	r := New("Example Co", "Example Co., Ltd.")
	if err := r.Render(&sb, domain.PeriodMonth, reports, renderNow); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return sb.String()
}

func TestRender(t *testing.T) {
	out := renderToString(t, []*domain.MonitorReport{sampleReport()})

	wantFragments := []string{
		"# Monthly Website Monitoring Report",
		"Example Co",
		"Example Co., Ltd.",
		"Generated: 2024-03-13",
		"## Monitor: Website",
		// Percentages carry exactly two decimals, latencies are whole numbers.
		"| day | 1 | 45m | 150 ms | 300 ms | 3.13% |",
		"| week | 2 | 27m 30s | N/A | N/A | 0.55% |",
		"[sql-error], [timeout]",
		"Total triggers: 3 (1.25% of heartbeats)",
		"(ongoing)",
		"2 heartbeat record(s) had unparseable timestamps",
	}
	for _, want := range wantFragments {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q\n---\n%s", want, out)
		}
	}

	// Newest incident first.
	ongoing := strings.Index(out, "45m (ongoing)")
	closed := strings.Index(out, "lasting 10m")
	if ongoing == -1 || closed == -1 || ongoing > closed {
		t.Errorf("expected newest incident listed first\n---\n%s", out)
	}
}

func TestRender_EmptyMonitor(t *testing.T) {
	rep := &domain.MonitorReport{
		MonitorName: "Quiet",
		GeneratedAt: renderNow,
		Incidents:   nil,
		Summaries: map[string]domain.PeriodSummary{
			"day":   {Period: "day"},
			"week":  {Period: "week"},
			"month": {Period: "month"},
		},
	}

	out := renderToString(t, []*domain.MonitorReport{rep})

	if !strings.Contains(out, "No keyword events in this period.") {
		t.Error("expected empty keyword section")
	}
	if !strings.Contains(out, "No downtime events in this period.") {
		t.Error("expected empty downtime section")
	}
	if !strings.Contains(out, "| day | 0 | 0s | N/A | N/A | 0.00% |") {
		t.Errorf("expected zeroed summary row\n---\n%s", out)
	}
	if strings.Contains(out, "unparseable timestamps") {
		t.Error("dropped-records note must be absent when nothing was dropped")
	}
}

func TestFilename(t *testing.T) {
	got := Filename(domain.PeriodWeek, renderNow)
	want := "uptime-report-week-20240313-153000.md"
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}
