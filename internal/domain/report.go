package domain

import "time"

// MonitorReport is the full analysis result for one monitor: the batch-wide
// keyword analysis, the detected incidents ordered by start ascending, and
// the per-window summaries. DroppedRecords counts raw heartbeats excluded
// because their timestamp could not be parsed.
type MonitorReport struct {
	MonitorName    string                   `json:"monitor_name"`
	GeneratedAt    time.Time                `json:"generated_at"`
	Keywords       KeywordAnalysis          `json:"keyword_analysis"`
	Incidents      []DowntimeIncident       `json:"downtime_incidents"`
	Summaries      map[string]PeriodSummary `json:"summaries"`
	DroppedRecords int                      `json:"dropped_records"`
}
