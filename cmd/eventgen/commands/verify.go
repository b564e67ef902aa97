package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/logger"
	"github.com/teranos/eventgen/verify"
)

// VerifyCmd checks a finished run
var VerifyCmd = &cobra.Command{
	Use:   "verify <run-dir>",
	Short: "Check a run's cross-table invariants",
	Long: `Read a run back and check it: manifest compatibility, table headers, row
shapes, unique emails, subteam/role agreement, person references, room XOR
zoom_url, admin-only ownership, and row counts against the manifest.

Exits non-zero when any check fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	report, err := verify.NewVerifier().Verify(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput(cmd) {
		if err := writeReportJSON(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		printReport(report, verbosity(cmd))
	}

	if !report.OK() {
		return errors.Newf("%d invariant violations in %s", len(report.Violations), report.Dir)
	}
	return nil
}

func writeReportJSON(w io.Writer, report *verify.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "failed to marshal report to JSON")
	}
	return nil
}

func printReport(report *verify.Report, verbosity int) {
	pterm.DefaultSection.Printf("Run %s", report.RunID)

	names := make([]string, 0, len(report.Tables))
	for name := range report.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	if logger.ShouldOutput(verbosity, logger.OutputTableCounts) {
		counts := pterm.TableData{{"table", "rows"}}
		for _, name := range names {
			counts = append(counts, []string{name, fmt.Sprintf("%d", report.Tables[name])})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(counts).Render()
	}
	pterm.Printf("Distinct events: %s\n", pterm.LightCyan(report.DistinctEvents))

	if report.OK() {
		pterm.Success.Println("All checks passed")
		return
	}

	violations := pterm.TableData{{"check", "table", "detail"}}
	for _, v := range report.Violations {
		violations = append(violations, []string{v.Check, v.Table, v.Detail})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(violations).Render()
}
