package cmd

import (
	"fmt"

	"github.com/alexiusacademia/buildmeta/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of buildmeta",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "buildmeta %s\n", version.Summary())
		fmt.Fprintln(out, "Build metadata from environment, properties and git")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
