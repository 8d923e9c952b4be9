package domain

import (
	"strings"
	"time"
)

// beatTimeLayout is the text form the monitoring backend reports,
// always UTC-naive.
const beatTimeLayout = "2006-01-02 15:04:05"

// ParseTimestamp canonicalizes a raw heartbeat timestamp to a UTC instant.
// Text values must look like "2006-01-02 15:04:05" with optional fractional
// seconds (discarded) and are labeled UTC; numeric values are epoch seconds.
// Any other shape yields ok=false. Malformed input is a signaled absence,
// never a panic or an error value.
func ParseTimestamp(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case string:
		s := v
		if i := strings.IndexByte(s, '.'); i >= 0 {
			s = s[:i]
		}
		t, err := time.ParseInLocation(beatTimeLayout, s, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case int:
		return time.Unix(int64(v), 0).UTC(), true
	case int64:
		return time.Unix(v, 0).UTC(), true
	case float64:
		sec := int64(v)
		nsec := int64((v - float64(sec)) * float64(time.Second))
		return time.Unix(sec, nsec).UTC(), true
	}
	return time.Time{}, false
}
