package feasibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseInstant_Formats(t *testing.T) {
	want := time.Date(2026, 9, 1, 6, 30, 0, 0, time.UTC)

	assert.True(t, ParseInstant(want).Equal(want))
	assert.True(t, ParseInstant("2026-09-01T06:30:00Z").Equal(want))
	assert.True(t, ParseInstant("2026-09-01T06:30:00").Equal(want))
	assert.True(t, ParseInstant(want.UnixMilli()).Equal(want))
	assert.True(t, ParseInstant(want.Unix()).Equal(want))
	assert.True(t, ParseInstant(float64(want.UnixMilli())).Equal(want))
}

func TestParseInstant_BadInput(t *testing.T) {
	assert.True(t, ParseInstant("not a time").IsZero())
	assert.True(t, ParseInstant(nil).IsZero())
	assert.True(t, ParseInstant(0).IsZero())
	assert.True(t, ParseInstant(-5).IsZero())
}

func TestDayKey(t *testing.T) {
	late := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	early := time.Date(2026, 9, 1, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, "2026-08-31", DayKey(late))
	assert.Equal(t, "2026-09-01", DayKey(early))
}

func TestLogsInWindow_CalendarDays(t *testing.T) {
	logs := []FtlLog{
		{Date: "2026-08-25", FlightMinutes: 100},
		{Date: "2026-08-26", FlightMinutes: 200},
		{Date: "2026-09-01", FlightMinutes: 300},
		{Date: "bogus", FlightMinutes: 999},
	}

	day := logsInWindow(logs, "2026-09-01", 1)
	assert.Len(t, day, 1)
	assert.Equal(t, 300, day[0].FlightMinutes)

	// 7-day window covers 08-26 through 09-01 inclusive; 08-25 is out.
	week := logsInWindow(logs, "2026-09-01", 7)
	assert.Len(t, week, 2)

	month := logsInWindow(logs, "2026-09-01", 28)
	assert.Len(t, month, 3)
}

func TestLogsInWindow_BadReference(t *testing.T) {
	logs := []FtlLog{{Date: "2026-09-01"}}
	assert.Nil(t, logsInWindow(logs, "not-a-date", 7))
}

func TestGapMinutes(t *testing.T) {
	arr := time.Date(2026, 9, 1, 6, 55, 0, 0, time.UTC)
	dep := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)

	assert.Equal(t, 5, GapMinutes(arr, dep))
	assert.Equal(t, -5, GapMinutes(dep, arr))
}

func TestDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)
	b := time.Date(2026, 9, 2, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, daysBetween(a, b))
	assert.Equal(t, -1, daysBetween(b, a))
	assert.Equal(t, 0, daysBetween(a, a))
}
