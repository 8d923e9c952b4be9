package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders a duration as a compact largest-unit-first
// breakdown like "1d 2h 3m 4s". Zero-valued leading units are omitted and a
// seconds part is always present when everything else is zero.
func FormatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	if total < 0 {
		total = 0
	}

	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}
