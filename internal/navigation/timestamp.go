package navigation

import (
	"fmt"
	"time"

	"github.com/roman-kulish/segy-inspector/internal/header"
	"github.com/roman-kulish/segy-inspector/internal/segy"
)

// Timestamp is the recording time derived from trace header bytes 157-166.
type Timestamp struct {
	Year      int
	DayOfYear int
	Hour      int
	Minute    int
	Second    int
	HasClock  bool // Hour and minute are present
	HasSecond bool
}

// DeriveTimestamp reads the recording time of a trace. It returns nil when
// the year or the day of year is absent. Two-digit years below 50 map to
// 20xx, the rest to 19xx.
func DeriveTimestamp(h segy.TraceHeader) *Timestamp {
	year, ok := h.Value(header.TraceYear)
	if !ok {
		return nil
	}
	day, ok := h.Value(header.TraceDayOfYear)
	if !ok {
		return nil
	}

	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	ts := &Timestamp{Year: int(year), DayOfYear: int(day)}

	hour, okH := h.Value(header.TraceHour)
	minute, okM := h.Value(header.TraceMinute)
	if okH && okM {
		ts.HasClock = true
		ts.Hour, ts.Minute = int(hour), int(minute)
		if sec, okS := h.Value(header.TraceSecond); okS {
			ts.HasSecond = true
			ts.Second = int(sec)
		}
	}
	return ts
}

// String formats the timestamp as "YYYY-DDD HH:MM:SS", or "YYYY-DDD" when
// the time of day is unknown. A missing second prints as ":00".
func (t Timestamp) String() string {
	if !t.HasClock {
		return fmt.Sprintf("%d-%03d", t.Year, t.DayOfYear)
	}
	return fmt.Sprintf("%d-%03d %02d:%02d:%02d", t.Year, t.DayOfYear, t.Hour, t.Minute, t.Second)
}

// Time converts the timestamp to UTC.
func (t Timestamp) Time() time.Time {
	return time.Date(t.Year, time.January, 1, t.Hour, t.Minute, t.Second, 0, time.UTC).
		AddDate(0, 0, t.DayOfYear-1)
}

// formatTimestamp returns the string form of ts or "" when ts is nil.
func formatTimestamp(ts *Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.String()
}
