package feasibility

import (
	"fmt"
	"strings"
	"time"
)

// Regulatory ceilings, in minutes. These are fixed by regulation, unlike
// PlanningRules which is operator configuration.
const (
	DailyDutyLimitMinutes    = 13 * 60
	DailyFlightLimitMinutes  = 8 * 60
	WeeklyFlightLimitMinutes = 60 * 60
	MonthlyFlightLimit28Days = 190 * 60

	MinRestMinutes = 10 * 60
)

// Risk band boundaries as a percentage of each limit.
const (
	riskWarningPct  = 80.0
	riskCriticalPct = 95.0
)

// RiskLevel is ranked: ok < warning < critical < violation. Violation is the
// terminal state where a limit is already breached.
type RiskLevel int

const (
	RiskOK RiskLevel = iota
	RiskWarning
	RiskCritical
	RiskViolation
)

func (r RiskLevel) String() string {
	switch r {
	case RiskOK:
		return "ok"
	case RiskWarning:
		return "warning"
	case RiskCritical:
		return "critical"
	case RiskViolation:
		return "violation"
	default:
		return "unknown"
	}
}

func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// FtlCheck is the structured per-limit breakdown preserved alongside the
// joined reason string.
type FtlCheck struct {
	Name    string    `json:"name"`
	Used    int       `json:"used_minutes"`
	Limit   int       `json:"limit_minutes"`
	Percent float64   `json:"percent"`
	Risk    RiskLevel `json:"risk"`
}

// FtlProjection carries the counters after the hypothetical new flight/duty
// has been added.
type FtlProjection struct {
	DailyDutyMinutes     int `json:"daily_duty_minutes"`
	DailyFlightMinutes   int `json:"daily_flight_minutes"`
	WeeklyFlightMinutes  int `json:"weekly_flight_minutes"`
	MonthlyFlightMinutes int `json:"monthly_flight_minutes"`
}

// FtlMargins is the remaining headroom per limit; negative when breached.
type FtlMargins struct {
	DailyDutyMinutes     int `json:"daily_duty_minutes"`
	DailyFlightMinutes   int `json:"daily_flight_minutes"`
	WeeklyFlightMinutes  int `json:"weekly_flight_minutes"`
	MonthlyFlightMinutes int `json:"monthly_flight_minutes"`
}

type FtlResult struct {
	Compliant     bool          `json:"compliant"`
	Reason        string        `json:"reason,omitempty"`
	RiskLevel     RiskLevel     `json:"risk_level"`
	Projected     FtlProjection `json:"projected"`
	Margins       FtlMargins    `json:"margins"`
	Checks        []FtlCheck    `json:"checks"`
	RestViolation bool          `json:"rest_violation"`
	RestMessage   string        `json:"rest_message,omitempty"`
}

const reasonSeparator = "; "

// CalculateFTL projects a crew member's flight/duty-time exposure if a new
// flight of newFlightMinutes is added on flightDate ("2006-01-02"). The day,
// 7-day and 28-day windows are calendar-day buckets over the ledger, not
// continuous 24-hour rolls. newDutyStart/newDutyEnd describe the hypothetical
// duty period and may be nil; the rest check only runs when a duty start is
// supplied.
func CalculateFTL(logs []FtlLog, flightDate string, newFlightMinutes int, newDutyStart, newDutyEnd *time.Time) FtlResult {
	dayLogs := logsInWindow(logs, flightDate, 1)
	weekLogs := logsInWindow(logs, flightDate, 7)
	monthLogs := logsInWindow(logs, flightDate, 28)

	dutyToday := sumDutyMinutes(dayLogs)
	if newDutyStart != nil && newDutyEnd != nil && newDutyEnd.After(*newDutyStart) {
		dutyToday += int(newDutyEnd.Sub(*newDutyStart) / time.Minute)
	}

	projected := FtlProjection{
		DailyDutyMinutes:     dutyToday,
		DailyFlightMinutes:   sumFlightMinutes(dayLogs) + newFlightMinutes,
		WeeklyFlightMinutes:  sumFlightMinutes(weekLogs) + newFlightMinutes,
		MonthlyFlightMinutes: sumFlightMinutes(monthLogs) + newFlightMinutes,
	}

	checks := []FtlCheck{
		newCheck("daily_duty", projected.DailyDutyMinutes, DailyDutyLimitMinutes),
		newCheck("daily_flight", projected.DailyFlightMinutes, DailyFlightLimitMinutes),
		newCheck("weekly_flight", projected.WeeklyFlightMinutes, WeeklyFlightLimitMinutes),
		newCheck("monthly_flight", projected.MonthlyFlightMinutes, MonthlyFlightLimit28Days),
	}

	result := FtlResult{
		Compliant: true,
		RiskLevel: RiskOK,
		Projected: projected,
		Margins: FtlMargins{
			DailyDutyMinutes:     DailyDutyLimitMinutes - projected.DailyDutyMinutes,
			DailyFlightMinutes:   DailyFlightLimitMinutes - projected.DailyFlightMinutes,
			WeeklyFlightMinutes:  WeeklyFlightLimitMinutes - projected.WeeklyFlightMinutes,
			MonthlyFlightMinutes: MonthlyFlightLimit28Days - projected.MonthlyFlightMinutes,
		},
		Checks: checks,
	}

	var reasons []string
	for _, check := range checks {
		if check.Risk > result.RiskLevel {
			result.RiskLevel = check.Risk
		}
		if check.Risk == RiskViolation {
			result.Compliant = false
			reasons = append(reasons, fmt.Sprintf("%s of %d min exceeds the %d min limit", check.Name, check.Used, check.Limit))
		}
	}

	if newDutyStart != nil {
		if msg, violated := checkRest(logs, *newDutyStart); violated {
			result.Compliant = false
			result.RestViolation = true
			result.RestMessage = msg
			result.RiskLevel = RiskViolation
			reasons = append(reasons, msg)
		}
	}

	result.Reason = strings.Join(reasons, reasonSeparator)
	return result
}

func newCheck(name string, used, limit int) FtlCheck {
	pct := 0.0
	if limit > 0 {
		pct = float64(used) / float64(limit) * 100.0
	}
	return FtlCheck{Name: name, Used: used, Limit: limit, Percent: pct, Risk: classifyRisk(pct)}
}

func classifyRisk(pct float64) RiskLevel {
	switch {
	case pct >= 100.0:
		return RiskViolation
	case pct >= riskCriticalPct:
		return RiskCritical
	case pct >= riskWarningPct:
		return RiskWarning
	default:
		return RiskOK
	}
}

// checkRest finds the most recent duty end strictly before the new duty
// start and verifies the interval meets the regulatory minimum.
func checkRest(logs []FtlLog, newDutyStart time.Time) (string, bool) {
	var lastEnd time.Time
	for _, l := range logs {
		if l.DutyEnd.IsZero() || !l.DutyEnd.Before(newDutyStart) {
			continue
		}
		if l.DutyEnd.After(lastEnd) {
			lastEnd = l.DutyEnd
		}
	}
	if lastEnd.IsZero() {
		return "", false
	}

	rest := int(newDutyStart.Sub(lastEnd) / time.Minute)
	if rest >= MinRestMinutes {
		return "", false
	}
	return fmt.Sprintf("rest of %d min since last duty is below the %d min minimum", rest, MinRestMinutes), true
}

func sumDutyMinutes(logs []FtlLog) int {
	total := 0
	for _, l := range logs {
		if l.DutyStart.IsZero() || l.DutyEnd.IsZero() || !l.DutyEnd.After(l.DutyStart) {
			continue
		}
		total += int(l.DutyEnd.Sub(l.DutyStart) / time.Minute)
	}
	return total
}

func sumFlightMinutes(logs []FtlLog) int {
	total := 0
	for _, l := range logs {
		total += l.FlightMinutes
	}
	return total
}
