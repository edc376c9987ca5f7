package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/buildmeta/internal/assets"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every resolved value",
	Long: `Resolve every value and print them as a table, or as pretty JSON
with --json (the same document 'write' stores in the assets directory).

Examples:
  buildmeta show
  buildmeta show --json
  buildmeta -C ./app show`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print as pretty JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	session, ctx, cancel, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	md, err := session.All(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showJSON {
		return assets.Encoder(out).Encode(md)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ABI:\t%s\n", md.ABI)
	fmt.Fprintf(w, "Builder:\t%s\n", md.Builder)
	fmt.Fprintf(w, "Repository:\t%s\n", md.GitRepo)
	fmt.Fprintf(w, "Version:\t%s\n", md.VersionName)
	fmt.Fprintf(w, "Commit:\t%s\n", md.CommitHash)
	fmt.Fprintf(w, "Timestamp:\t%s\n", md.Timestamp)
	return w.Flush()
}
