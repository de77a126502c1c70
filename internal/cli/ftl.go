package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"airops/internal/feasibility"
)

var (
	ftlLedgerPath    string
	ftlDate          string
	ftlFlightMinutes int
	ftlDutyStart     string
	ftlDutyEnd       string
)

var ftlCmd = &cobra.Command{
	Use:   "ftl",
	Short: "Evaluate flight/duty-time limits for one crew member",
	Long: `Project a crew member's FTL exposure from an exported ledger file plus a
hypothetical new flight, and report per-limit usage and risk.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(ftlLedgerPath)
		if err != nil {
			return fmt.Errorf("failed to read ledger: %w", err)
		}
		var logs []feasibility.FtlLog
		if err := json.Unmarshal(data, &logs); err != nil {
			return fmt.Errorf("failed to parse ledger: %w", err)
		}

		var dutyStart, dutyEnd *time.Time
		if ftlDutyStart != "" {
			t := feasibility.ParseInstant(ftlDutyStart)
			if t.IsZero() {
				return fmt.Errorf("invalid --duty-start value %q", ftlDutyStart)
			}
			dutyStart = &t
		}
		if ftlDutyEnd != "" {
			t := feasibility.ParseInstant(ftlDutyEnd)
			if t.IsZero() {
				return fmt.Errorf("invalid --duty-end value %q", ftlDutyEnd)
			}
			dutyEnd = &t
		}

		result := feasibility.CalculateFTL(logs, ftlDate, ftlFlightMinutes, dutyStart, dutyEnd)
		printFtlResult(result)

		if !result.Compliant {
			return fmt.Errorf("ftl non-compliant: %s", result.Reason)
		}
		return nil
	},
}

func printFtlResult(result feasibility.FtlResult) {
	for _, check := range result.Checks {
		badge := okColor
		switch check.Risk {
		case feasibility.RiskWarning:
			badge = warningColor
		case feasibility.RiskCritical, feasibility.RiskViolation:
			badge = criticalColor
		}
		_, _ = badge.Printf("%-10s", check.Risk)
		fmt.Printf(" %-15s %5d / %5d min (%.0f%%)\n", check.Name, check.Used, check.Limit, check.Percent)
	}
	if result.RestViolation {
		_, _ = criticalColor.Printf("%-10s", "violation")
		fmt.Printf(" rest            %s\n", result.RestMessage)
	}
	fmt.Printf("\noverall risk: %s\n", result.RiskLevel)
}

func init() {
	ftlCmd.Flags().StringVar(&ftlLedgerPath, "ledger", "", "path to the FTL ledger JSON")
	ftlCmd.Flags().StringVar(&ftlDate, "date", "", "flight date (2006-01-02)")
	ftlCmd.Flags().IntVar(&ftlFlightMinutes, "flight-minutes", 0, "minutes of the hypothetical new flight")
	ftlCmd.Flags().StringVar(&ftlDutyStart, "duty-start", "", "hypothetical duty start (RFC3339)")
	ftlCmd.Flags().StringVar(&ftlDutyEnd, "duty-end", "", "hypothetical duty end (RFC3339)")
	_ = ftlCmd.MarkFlagRequired("ledger")
	_ = ftlCmd.MarkFlagRequired("date")
}
