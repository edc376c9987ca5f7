package cmd

import (
	"context"

	"github.com/alexiusacademia/buildmeta/internal/meta"
	"github.com/alexiusacademia/buildmeta/internal/props"
	"github.com/alexiusacademia/buildmeta/internal/resolve"
	"github.com/alexiusacademia/buildmeta/internal/shell"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Swapped out in tests.
var (
	newRunner = func(dir string) shell.Runner { return shell.ExecRunner{Dir: dir} }
	processEnv resolve.Env = resolve.OSEnv{}
)

// newSession wires the persistent flags into a metadata session. One
// command invocation is one build session, so values are resolved once.
func newSession(cmd *cobra.Command) (*meta.Session, context.Context, context.CancelFunc, error) {
	properties, err := props.Load(props.Options{
		ProjectDir:  projectDir,
		Assignments: propertyArgs,
		HCLFile:     propertiesFile,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cancel := context.CancelFunc(func() {})
	if gitTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, gitTimeout)
	}

	log.Debug().Str("project_dir", projectDir).Int("properties", len(propertyArgs)).Msg("starting session")

	r := meta.New(processEnv, properties, newRunner(projectDir))
	return meta.NewSession(r), ctx, cancel, nil
}
