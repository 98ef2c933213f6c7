package market

import (
	"strconv"
	"strings"
	"time"
)

// issuanceSentinel is the far-past default substituted for a missing or
// unparseable first issuance timestamp.
var issuanceSentinel = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// timeLayouts are tried in order. The first two cover registry exports with
// offsets, the rest cover date-only and spreadsheet-style values.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ParseTimestamp coerces a raw timestamp string to UTC. Absent or malformed
// input reports ok=false and never an error; callers substitute sentinels.
func ParseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "null") {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseNumber coerces a raw numeric string. Absent or malformed input reports
// ok=false; callers substitute 0 (or the documented column default).
func ParseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "null") {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
