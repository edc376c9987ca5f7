package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/buildmeta/internal/meta"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show where each value comes from",
	Long: `For every value, print the environment variable and project property
that can override it, which tier answered (env, property or default)
and the resolved value.

A value whose default fails is reported with its error instead of
aborting the listing.`,
	Args: cobra.NoArgs,
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	session, ctx, cancel, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tENV\tPROPERTY\tSOURCE\tVALUE\n")
	for _, k := range meta.Keys() {
		v, src, err := session.Explain(ctx, k.Name)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t<error: %v>\n", k.Name, k.Env, k.Property, src, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", k.Name, k.Env, k.Property, src, v)
	}
	return w.Flush()
}
