// Package cli implements the opsctl command line: offline schedule linting
// and FTL evaluation against exported snapshot files, without a running
// service.
package cli

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:     "opsctl",
	Version: "dev",
	Short:   "Offline feasibility checks for airline schedules",
	Long: `opsctl runs the operational feasibility engine over exported snapshot
files: conflict detection across a schedule, and flight/duty-time limitation
checks for individual crew members.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(ftlCmd)
}
