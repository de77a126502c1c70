package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"airops/internal/feasibility"
)

var (
	lintSchedulePath string
	lintRulesPath    string

	criticalColor = color.New(color.FgRed, color.Bold)
	warningColor  = color.New(color.FgYellow, color.Bold)
	okColor       = color.New(color.FgGreen, color.Bold)
	dimColor      = color.New(color.FgHiBlack)
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Detect conflicts in an exported schedule",
	Long: `Run every conflict detector over a schedule snapshot file and print the
findings. Exits non-zero when critical conflicts are present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		schedule, err := loadSchedule(lintSchedulePath)
		if err != nil {
			return err
		}
		rules, err := loadRules(schedule, lintRulesPath)
		if err != nil {
			return err
		}

		flights := schedule.toFlights()
		conflicts := feasibility.AnalyzeAllConflicts(flights, schedule.Fleet, rules)

		if len(conflicts) == 0 {
			_, _ = okColor.Printf("✓ %d flights, no conflicts\n", len(flights))
			return nil
		}

		criticals := 0
		for _, c := range conflicts {
			printConflict(c)
			if c.Severity >= feasibility.SeverityCritical {
				criticals++
			}
		}
		fmt.Printf("\n%d conflicts (%d critical) across %d flights\n", len(conflicts), criticals, len(flights))

		if criticals > 0 {
			return fmt.Errorf("schedule has %d critical conflicts", criticals)
		}
		return nil
	},
}

func printConflict(c feasibility.Conflict) {
	badge := warningColor
	if c.Severity >= feasibility.SeverityCritical {
		badge = criticalColor
	}
	_, _ = badge.Printf("%-8s", c.Severity)
	fmt.Printf(" [%s] %s\n", c.Kind, c.Message)
	for _, s := range c.Suggestions {
		_, _ = dimColor.Printf("         → %s\n", s.Label)
	}
}

func init() {
	lintCmd.Flags().StringVar(&lintSchedulePath, "schedule", "", "path to the schedule snapshot JSON")
	lintCmd.Flags().StringVar(&lintRulesPath, "rules", "", "path to a planning rules YAML override")
	_ = lintCmd.MarkFlagRequired("schedule")
}
