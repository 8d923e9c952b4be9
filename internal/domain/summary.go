package domain

import (
	"math"
	"time"
)

// SummaryWindow is one fixed backward-looking interval measured from the
// evaluation instant.
type SummaryWindow struct {
	Label  string
	Length time.Duration
}

// SummaryWindows are the windows every report covers, shortest first.
var SummaryWindows = []SummaryWindow{
	{Label: "day", Length: 24 * time.Hour},
	{Label: "week", Length: 7 * 24 * time.Hour},
	{Label: "month", Length: 30 * 24 * time.Hour},
}

// PeriodSummary holds the downtime and latency statistics for one window.
// Latency fields are nil when no sample fell inside the window, never zero.
type PeriodSummary struct {
	Period        string        `json:"period"`
	IncidentCount int           `json:"incident_count"`
	AvgDuration   time.Duration `json:"avg_duration"`
	DownPercent   float64       `json:"down_percent"`
	AvgLatencyMs  *float64      `json:"avg_latency_ms"`
	MaxLatencyMs  *float64      `json:"max_latency_ms"`
}

// SummarizePeriods computes per-window statistics over detected incidents and
// latency samples. It is a pure function of its inputs: the only clock it
// knows is the evaluation instant now, so re-running it over the same data
// yields identical summaries.
//
// An incident is attributed to a window by its start alone, and its full
// duration counts toward that window's downtime even when the duration
// spills past the window edge. That can push DownPercent above 100; the
// value is intentionally not clamped.
func SummarizePeriods(incidents []DowntimeIncident, pings []PingSample, now time.Time) map[string]PeriodSummary {
	summaries := make(map[string]PeriodSummary, len(SummaryWindows))
	for _, w := range SummaryWindows {
		summaries[w.Label] = summarizeWindow(w, incidents, pings, now)
	}
	return summaries
}

func summarizeWindow(w SummaryWindow, incidents []DowntimeIncident, pings []PingSample, now time.Time) PeriodSummary {
	windowStart := now.Add(-w.Length)

	count := 0
	var totalDown time.Duration
	for _, inc := range incidents {
		if inc.Start.Before(windowStart) {
			continue
		}
		count++
		totalDown += inc.Duration
	}

	var avgDuration time.Duration
	if count > 0 {
		avgDuration = totalDown / time.Duration(count)
	}

	downPercent := 0.0
	if w.Length > 0 {
		downPercent = RoundPercent(totalDown.Seconds() / w.Length.Seconds() * 100)
	}

	var sum, max float64
	samples := 0
	for _, p := range pings {
		if p.Instant.Before(windowStart) {
			continue
		}
		sum += p.LatencyMs
		if samples == 0 || p.LatencyMs > max {
			max = p.LatencyMs
		}
		samples++
	}

	var avgLatency, maxLatency *float64
	if samples > 0 {
		avg := sum / float64(samples)
		avgLatency = &avg
		maxLatency = &max
	}

	return PeriodSummary{
		Period:        w.Label,
		IncidentCount: count,
		AvgDuration:   avgDuration,
		DownPercent:   downPercent,
		AvgLatencyMs:  avgLatency,
		MaxLatencyMs:  maxLatency,
	}
}

// RoundPercent rounds a percentage to two decimal places, the precision the
// report renderer relies on.
func RoundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
