package domain

import (
	"sort"
	"time"
)

// DowntimeIncident is a maximal contiguous span during which a monitor was
// down. Immutable once emitted. Ongoing is true only for the single trailing
// incident whose recovery has not been observed yet.
type DowntimeIncident struct {
	Start    time.Time     `json:"start"`
	Duration time.Duration `json:"duration"`
	Ongoing  bool          `json:"ongoing"`
}

// DetectIncidents walks a monitor's status stream and emits discrete downtime
// incidents, ordered by start ascending. The input is re-sorted stably by
// instant, so beats sharing an instant keep their caller-provided order and
// the result is reproducible from the same raw input.
//
// An incident opens on the first down beat and closes on the next up beat.
// If the stream ends while still down, the trailing incident is emitted with
// Ongoing=true and its duration measured against the evaluation instant now,
// not the last beat. The stale-probe case is deliberate: an outage is still
// in progress even when the most recent beat is old.
func DetectIncidents(beats []NormalizedBeat, now time.Time) []DowntimeIncident {
	sorted := make([]NormalizedBeat, len(beats))
	copy(sorted, beats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Instant.Before(sorted[j].Instant)
	})

	incidents := []DowntimeIncident{}
	var downSince *time.Time

	for _, beat := range sorted {
		switch {
		case beat.Status.IsDown() && downSince == nil:
			start := beat.Instant
			downSince = &start
		case !beat.Status.IsDown() && downSince != nil:
			incidents = append(incidents, DowntimeIncident{
				Start:    *downSince,
				Duration: beat.Instant.Sub(*downSince),
			})
			downSince = nil
		}
	}

	if downSince != nil {
		incidents = append(incidents, DowntimeIncident{
			Start:    *downSince,
			Duration: now.Sub(*downSince),
			Ongoing:  true,
		})
	}

	return incidents
}
