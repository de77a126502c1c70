package feasibility

import "time"

const dayLayout = "2006-01-02"

// ParseInstant extracts a time.Time from the timestamp shapes the upstream
// documents use: time.Time, RFC3339 strings, and epoch seconds or
// milliseconds. Unparseable values come back as the zero time so callers can
// skip the record.
func ParseInstant(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", dayLayout} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case int64:
		return fromEpoch(t)
	case int:
		return fromEpoch(int64(t))
	case float64:
		return fromEpoch(int64(t))
	}
	return time.Time{}
}

// Values above this are epoch milliseconds; below, epoch seconds. The cutoff
// is ~year 2255 in seconds and ~1971 in milliseconds, so schedules in either
// unit land on the right side.
const epochMillisCutoff = 9_000_000_000

func fromEpoch(v int64) time.Time {
	if v <= 0 {
		return time.Time{}
	}
	if v > epochMillisCutoff {
		return time.UnixMilli(v).UTC()
	}
	return time.Unix(v, 0).UTC()
}

// DayKey returns the calendar-day label a timestamp belongs to. All rolling
// windows are keyed on these labels, never on timestamp subtraction, so a
// log at 23:59 and one at 00:01 land in their own days regardless of zone
// offsets baked into the instants.
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// logsInWindow selects ledger entries whose date label falls within
// [refDate - (days-1), refDate], compared at calendar-day granularity.
func logsInWindow(logs []FtlLog, refDate string, days int) []FtlLog {
	ref, err := time.Parse(dayLayout, refDate)
	if err != nil {
		return nil
	}
	start := ref.AddDate(0, 0, -(days - 1))

	var selected []FtlLog
	for _, l := range logs {
		d, err := time.Parse(dayLayout, l.Date)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(ref) {
			selected = append(selected, l)
		}
	}
	return selected
}

// GapMinutes is the whole-minute gap between the end of one interval and the
// start of the next. Negative when the intervals overlap.
func GapMinutes(prevArrival, nextDeparture time.Time) int {
	return int(nextDeparture.Sub(prevArrival) / time.Minute)
}

// daysBetween counts calendar days from a to b, ignoring the time of day.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}
