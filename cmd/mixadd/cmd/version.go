package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/mixadd/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information for mixadd.

Displays the current version, commit hash, build date,
and Go/platform information.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	cmd.Println(version.Current().FullString())
	return nil
}
