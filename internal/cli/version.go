package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version, commit, and build date of gitunjam.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "gitunjam version %s\n", versionStr)
		if commitStr != "none" && commitStr != "" {
			fmt.Fprintf(out, "  commit: %s\n", commitStr)
		}
		if dateStr != "unknown" && dateStr != "" {
			fmt.Fprintf(out, "  built:  %s\n", dateStr)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
