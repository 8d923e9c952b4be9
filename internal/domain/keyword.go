package domain

import (
	"regexp"
	"sort"
	"strings"
)

// keywordMarker is the literal substring that flags a heartbeat message as a
// keyword trigger candidate. Uptime Kuma phrases content-match failures as
// "... but keyword [x] found/not found", so the marker doubles as a cheap
// pre-filter before the regexp runs.
const keywordMarker = "but"

// bracketPattern extracts the content of the first square-bracket pair.
var bracketPattern = regexp.MustCompile(`\[(.*?)\]`)

// KeywordAnalysis summarizes keyword triggers across a whole heartbeat batch.
// It is batch-wide, not period-scoped.
type KeywordAnalysis struct {
	UniqueKeywords []string `json:"unique_keywords"`
	TriggerCount   int      `json:"trigger_count"`
	Ratio          float64  `json:"ratio"` // percent of records that triggered, 2 decimals
}

// ExtractKeyword pulls the bracketed diagnostic token out of a heartbeat
// message. Messages without the marker, without brackets, or with empty
// brackets yield ok=false.
func ExtractKeyword(message string) (string, bool) {
	if !strings.Contains(message, keywordMarker) {
		return "", false
	}
	m := bracketPattern.FindStringSubmatch(message)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// AnalyzeKeywords scans a raw heartbeat batch and accumulates the distinct
// extracted keywords, the trigger count, and the trigger ratio. An empty
// batch yields a zero ratio. Keywords are returned sorted so repeated runs
// over the same input produce identical output.
func AnalyzeKeywords(records []HeartbeatRecord) KeywordAnalysis {
	seen := make(map[string]struct{})
	triggers := 0

	for _, rec := range records {
		kw, ok := ExtractKeyword(rec.Message)
		if !ok {
			continue
		}
		seen[kw] = struct{}{}
		triggers++
	}

	unique := make([]string, 0, len(seen))
	for kw := range seen {
		unique = append(unique, kw)
	}
	sort.Strings(unique)

	ratio := 0.0
	if len(records) > 0 {
		ratio = RoundPercent(float64(triggers) / float64(len(records)) * 100)
	}

	return KeywordAnalysis{
		UniqueKeywords: unique,
		TriggerCount:   triggers,
		Ratio:          ratio,
	}
}
