package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/buildmeta/internal/meta"
	"github.com/spf13/cobra"
)

var (
	ldflagsPackage string
	ldflagsAll     bool
)

// ldflagsVars maps metadata names to the variable names -X sets. The first
// three match the version packages most Go binaries carry.
var ldflagsVars = []struct {
	name     string
	variable string
	extra    bool
}{
	{meta.NameVersionName, "Version", false},
	{meta.NameCommitHash, "GitCommit", false},
	{meta.NameTimestamp, "BuildTime", false},
	{meta.NameABI, "ABI", true},
	{meta.NameBuilder, "Builder", true},
	{meta.NameGitRepo, "GitRepo", true},
}

var ldflagsCmd = &cobra.Command{
	Use:   "ldflags",
	Short: "Print -X linker flags for go build",
	Long: `Print -X flags that stamp the resolved values into package-level
string variables of a Go binary:

  <package>.Version    versionName
  <package>.GitCommit  commitHash
  <package>.BuildTime  timestamp

With --all, ABI, Builder and GitRepo are added as well. Fields are
quoted the way the go command splits -ldflags: in single quotes, or in
double quotes when the value holds an apostrophe. A value holding both
is an error.

Examples:
  go build -ldflags "$(buildmeta ldflags --package main)"
  buildmeta ldflags --package github.com/alexiusacademia/buildmeta/internal/version`,
	Args: cobra.NoArgs,
	RunE: runLdflags,
}

func init() {
	rootCmd.AddCommand(ldflagsCmd)

	ldflagsCmd.Flags().StringVarP(&ldflagsPackage, "package", "p", "main", "Import path of the package holding the variables")
	ldflagsCmd.Flags().BoolVar(&ldflagsAll, "all", false, "Also emit ABI, Builder and GitRepo")
}

func runLdflags(cmd *cobra.Command, args []string) error {
	session, ctx, cancel, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	var flags []string
	for _, v := range ldflagsVars {
		if v.extra && !ldflagsAll {
			continue
		}
		value, err := session.Get(ctx, v.name)
		if err != nil {
			return err
		}
		field, err := ldflagsQuote(fmt.Sprintf("%s.%s=%s", ldflagsPackage, v.variable, value))
		if err != nil {
			return fmt.Errorf("%s: %w", v.name, err)
		}
		flags = append(flags, "-X "+field)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(flags, " "))
	return nil
}
