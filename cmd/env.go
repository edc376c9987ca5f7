package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/buildmeta/internal/meta"
	"github.com/spf13/cobra"
)

var envExport bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print resolved values as environment assignments",
	Long: `Print NAME=value lines using the environment variable names, so later
build steps see the same values without recomputing them. A value
spanning several lines is written in the NAME<<DELIMITER form that
$GITHUB_ENV accepts, so it cannot inject extra assignments.

Examples:
  buildmeta env >> "$GITHUB_ENV"
  eval "$(buildmeta env --export)"`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	rootCmd.AddCommand(envCmd)

	envCmd.Flags().BoolVar(&envExport, "export", false, "Prefix lines with 'export' and shell-quote values")
}

func runEnv(cmd *cobra.Command, args []string) error {
	session, ctx, cancel, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	out := cmd.OutOrStdout()
	for _, k := range meta.Keys() {
		v, err := session.Get(ctx, k.Name)
		if err != nil {
			return err
		}
		switch {
		case envExport:
			fmt.Fprintf(out, "export %s=%s\n", k.Env, shellQuote(v))
		case strings.ContainsAny(v, "\r\n"):
			delim := envDelimiter(v)
			fmt.Fprintf(out, "%s<<%s\n%s\n%s\n", k.Env, delim, v, delim)
		default:
			fmt.Fprintf(out, "%s=%s\n", k.Env, v)
		}
	}
	return nil
}
