package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/eventgen/errors"
	"github.com/teranos/eventgen/run"
	"github.com/teranos/eventgen/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show eventgen version information",
	Long:  `Display version, build time, commit hash, platform, and the run schema version this binary writes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		out := cmd.OutOrStdout()

		if jsonOutput(cmd) {
			output, err := json.MarshalIndent(struct {
				version.Info
				RunSchema string `json:"run_schema"`
			}{info, run.SchemaVersion}, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to format JSON")
			}
			fmt.Fprintln(out, string(output))
			return nil
		}

		fmt.Fprintln(out, info.String())
		fmt.Fprintf(out, "Platform: %s\n", info.Platform)
		fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
		fmt.Fprintf(out, "Run schema: %s\n", run.SchemaVersion)
		return nil
	},
}
