package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version and GitCommit are set at build time via -ldflags, mirroring the
// teacher's cmd.Version/cmd.GitCommit.
var (
	Version   = "dev"
	GitCommit = "HEAD"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and commit information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Git Commit: %s\n", GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
