// Package render produces the formatted report artifact consumed by people.
// It is the only place that turns engine numbers into display strings; the
// formatting contracts (two-decimal percentages, whole-number latencies,
// compact durations) live here.
package render

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"uptime-report/internal/domain"
)

// Renderer writes uptime reports as Markdown.
type Renderer struct {
	company        string
	companyEnglish string
}

// New creates a Renderer labeled with the company names from configuration.
func New(company, companyEnglish string) *Renderer {
	return &Renderer{
		company:        company,
		companyEnglish: companyEnglish,
	}
}

// periodTitles maps a period kind to the report title fragment.
var periodTitles = map[domain.Period]string{
	domain.PeriodDay:     "Daily",
	domain.PeriodWeek:    "Weekly",
	domain.PeriodMonth:   "Monthly",
	domain.PeriodQuarter: "Quarterly",
	domain.PeriodYear:    "Annual",
}

type reportView struct {
	Title          string
	Company        string
	CompanyEnglish string
	GeneratedOn    string
	Monitors       []monitorView
}

type monitorView struct {
	Name           string
	Summaries      []summaryRow
	Keywords       domain.KeywordAnalysis
	HasKeywords    bool
	Incidents      []incidentRow
	DroppedRecords int
}

type summaryRow struct {
	Window      string
	Count       int
	AvgDuration string
	AvgLatency  string
	MaxLatency  string
	DownPercent string
}

type incidentRow struct {
	Start    string
	Duration string
}

const reportTemplate = `# {{.Title}} Website Monitoring Report

{{.Company}}
{{.CompanyEnglish}}

Generated: {{.GeneratedOn}}
{{range .Monitors}}
## Monitor: {{.Name}}

| Window | Outages | Avg Downtime | Avg Latency | Max Latency | Downtime % |
|--------|---------|--------------|-------------|-------------|------------|
{{- range .Summaries}}
| {{.Window}} | {{.Count}} | {{.AvgDuration}} | {{.AvgLatency}} | {{.MaxLatency}} | {{.DownPercent}} |
{{- end}}

### Keyword Log
{{if .HasKeywords}}Triggered keywords: {{range $i, $kw := .Keywords.UniqueKeywords}}{{if $i}}, {{end}}[{{$kw}}]{{end}}
Total triggers: {{.Keywords.TriggerCount}} ({{printf "%.2f" .Keywords.Ratio}}% of heartbeats)
{{else}}No keyword events in this period.
{{end}}
### Downtime Log
{{if .Incidents}}{{range .Incidents}}- Down since {{.Start}}, lasting {{.Duration}}
{{end}}{{else}}No downtime events in this period.
{{end}}
{{- if .DroppedRecords}}
Note: {{.DroppedRecords}} heartbeat record(s) had unparseable timestamps and were excluded.
{{end}}
{{- end}}`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Render writes the Markdown report for the given period and monitor reports.
func (r *Renderer) Render(w io.Writer, period domain.Period, reports []*domain.MonitorReport, now time.Time) error {
	view := reportView{
		Title:          periodTitles[period],
		Company:        r.company,
		CompanyEnglish: r.companyEnglish,
		GeneratedOn:    now.UTC().Format("2006-01-02"),
	}

	for _, rep := range reports {
		view.Monitors = append(view.Monitors, buildMonitorView(rep))
	}

	return tmpl.Execute(w, view)
}

func buildMonitorView(rep *domain.MonitorReport) monitorView {
	mv := monitorView{
		Name:           rep.MonitorName,
		Keywords:       rep.Keywords,
		HasKeywords:    rep.Keywords.TriggerCount > 0,
		DroppedRecords: rep.DroppedRecords,
	}

	for _, w := range domain.SummaryWindows {
		s := rep.Summaries[w.Label]
		mv.Summaries = append(mv.Summaries, summaryRow{
			Window:      s.Period,
			Count:       s.IncidentCount,
			AvgDuration: domain.FormatDuration(s.AvgDuration),
			AvgLatency:  formatLatency(s.AvgLatencyMs),
			MaxLatency:  formatLatency(s.MaxLatencyMs),
			DownPercent: fmt.Sprintf("%.2f%%", s.DownPercent),
		})
	}

	// Newest incident first for display; the engine emits oldest first.
	for i := len(rep.Incidents) - 1; i >= 0; i-- {
		inc := rep.Incidents[i]
		duration := domain.FormatDuration(inc.Duration)
		if inc.Ongoing {
			duration += " (ongoing)"
		}
		mv.Incidents = append(mv.Incidents, incidentRow{
			Start:    inc.Start.UTC().Format("2006-01-02 15:04:05 MST"),
			Duration: duration,
		})
	}

	return mv
}

// formatLatency renders a latency value in whole milliseconds, or N/A when
// no sample was available.
func formatLatency(ms *float64) string {
	if ms == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d ms", int64(*ms))
}

// Filename returns the report file name for a period and generation instant.
func Filename(period domain.Period, now time.Time) string {
	return fmt.Sprintf("uptime-report-%s-%s.md", period, now.Format("20060102-150405"))
}
