package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alexiusacademia/buildmeta/internal/logging"
	"github.com/alexiusacademia/buildmeta/internal/version"
	"github.com/spf13/cobra"
)

// Persistent flags shared by every subcommand.
var (
	projectDir     string
	propertyArgs   []string
	propertiesFile string
	gitTimeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "buildmeta",
	Short: "Build metadata resolver",
	Long: `buildmeta - build metadata from environment, properties and git

Resolves the values a build stamps into its artifacts:

  abi          BUILD_ABI           buildABI           arm64-v8a
  builder      CI_NAME             ciName             git config user.name
  gitRepo      BUILD_GIT_REPO      buildGitRepo       git remote get-url origin
  versionName  BUILD_VERSION_NAME  buildVersionName   git describe --tags --long --always
  commitHash   BUILD_COMMIT_HASH   buildCommitHash    git rev-parse HEAD
  timestamp    BUILD_TIMESTAMP     buildTimestamp     current time (epoch ms)

A non-blank environment variable wins. Otherwise the project property is
used, taken from -P name=value, buildmeta.hcl or gradle.properties in
that order. Otherwise the default is computed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   buildmeta v%-45s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Build metadata from environment, properties and git     ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'buildmeta show' to print every resolved value.")
		fmt.Fprintln(out, "  Use 'buildmeta --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(logging.Init)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&projectDir, "project-dir", "C", ".", "Project root; git runs here and property files are read from here")
	pf.StringArrayVarP(&propertyArgs, "property", "P", nil, "Project property as name=value (repeatable)")
	pf.StringVar(&propertiesFile, "properties-file", "", "HCL property file to use instead of <project-dir>/buildmeta.hcl")
	pf.DurationVar(&gitTimeout, "timeout", 0, "Abort git commands after this long (0 = no limit)")
}
