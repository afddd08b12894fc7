package util

import (
	"fmt"
	"time"
)

// layouts without a zone offset are parsed directly as naive UTC
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseNaiveTime parses an ISO-8601-ish timestamp and discards any zone
// offset, keeping the wall-clock fields. Upstream APIs disagree about
// offsets, so comparisons downstream are deliberately approximate.
func ParseNaiveTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return stripZone(t), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// WithinDays reports whether published falls inside the recency window.
// days <= 0 disables the window. A posting aged exactly days*24h is out.
func WithinDays(now, published time.Time, days int) bool {
	if days <= 0 {
		return true
	}
	return now.Sub(published) < time.Duration(days)*24*time.Hour
}
