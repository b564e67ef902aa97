package commands

import "github.com/spf13/cobra"

// jsonOutput reports whether the persistent --json flag is set
func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// verbosity returns the -v count
func verbosity(cmd *cobra.Command) int {
	v, _ := cmd.Flags().GetCount("verbose")
	return v
}
