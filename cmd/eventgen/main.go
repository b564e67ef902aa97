package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/teranos/eventgen/cmd/eventgen/commands"
	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "eventgen",
	Short: "eventgen - synthetic multi-day event datasets",
	Long: `eventgen - synthetic multi-day event datasets.

Generates attendees, staff, rooms, a multi-track schedule, announcements,
resources, and help requests that reference each other consistently, and
writes each run to its own directory as CSV or XLSX tables.

Available commands:
  generate - Generate a new run
  verify   - Check a run's cross-table invariants
  config   - Show and validate configuration
  version  - Show version information

Examples:
  eventgen generate                        # 500 persons, 3 days, CSV
  eventgen generate --persons 50 --seed 7  # small reproducible run
  eventgen generate --format xlsx --out /tmp/runs
  eventgen verify data/<run-id>
  eventgen config show --format yaml

Exit codes:
  1 - run failed or verification found violations
  2 - invalid configuration
  3 - unique emails exhausted (lower generation.persons)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		logger.Debugw("output verbosity",
			"level", logger.LevelName(verbosity),
			"shows", logger.VerbosityDescription(verbosity),
		)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", verbosityHelp())
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Emit JSON (progress events, reports, logs)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.VerifyCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	// .env is optional; its variables feed EVENTGEN_* config overrides
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(exitCode(err))
	}
}

const (
	exitFailure       = 1
	exitInvalidConfig = 2
	exitCapacity      = 3
)

// exitCode maps an error to the process exit status
func exitCode(err error) int {
	switch {
	case errors.IsInvalidConfig(err):
		return exitInvalidConfig
	case errors.IsCapacityExhausted(err):
		return exitCapacity
	default:
		return exitFailure
	}
}

func verbosityHelp() string {
	return fmt.Sprintf("Increase output verbosity (-v: %s; -vv: %s)",
		logger.VerbosityDescription(logger.VerbosityInfo),
		logger.VerbosityDescription(logger.VerbosityDebug))
}
