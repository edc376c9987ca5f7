package cmd

import (
	"fmt"

	"github.com/alexiusacademia/buildmeta/internal/assets"
	"github.com/spf13/cobra"
)

var writeOutput string

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write metadata JSON into src/main/assets",
	Long: `Resolve every value and write them as pretty JSON into the project's
src/main/assets directory, creating the directory if needed.

Examples:
  buildmeta write
  buildmeta -C ./app write --output version.json`,
	Args: cobra.NoArgs,
	RunE: runWrite,
}

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().StringVarP(&writeOutput, "output", "o", assets.MetadataFile, "File name inside the assets directory")
}

func runWrite(cmd *cobra.Command, args []string) error {
	session, ctx, cancel, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	md, err := session.All(ctx)
	if err != nil {
		return err
	}

	dir, err := assets.EnsureDir(projectDir)
	if err != nil {
		return err
	}
	path, err := assets.WriteJSON(dir, writeOutput, md)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
