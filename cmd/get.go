package cmd

import (
	"fmt"

	"github.com/alexiusacademia/buildmeta/internal/meta"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print one resolved value",
	Long: `Print a single resolved value on stdout with no decoration, for use
in scripts.

Names: abi, builder, gitRepo, versionName, commitHash, timestamp

Examples:
  buildmeta get versionName
  BUILD_ABI=x86_64 buildmeta get abi
  buildmeta get builder -P ciName=nightly-ci`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: keyNames(),
	RunE:      runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	session, ctx, cancel, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	v, err := session.Get(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func keyNames() []string {
	var names []string
	for _, k := range meta.Keys() {
		names = append(names, k.Name)
	}
	return names
}
