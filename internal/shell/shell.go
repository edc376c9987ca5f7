// Package shell runs external commands such as git and returns their
// trimmed standard output.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrCommandFailed = errors.New("command failed")
	ErrEmptyCommand  = errors.New("empty command line")
)

// Runner executes a command line and returns its trimmed stdout.
type Runner interface {
	Run(ctx context.Context, commandLine string) (string, error)
}

// CommandError describes a command that could not be started or exited non-zero.
type CommandError struct {
	Command  string
	ExitCode int // -1 if the process never ran
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %q", ErrCommandFailed, e.Command)
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" exited with code %d", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() []error {
	return []error{ErrCommandFailed, e.Err}
}

// ExecRunner runs commands as subprocesses in Dir. An empty Dir means the
// current working directory.
type ExecRunner struct {
	Dir string
}

// Run splits commandLine on whitespace and executes it. There is no quoting;
// arguments containing spaces are not supported.
func (r ExecRunner) Run(ctx context.Context, commandLine string) (string, error) {
	argv := strings.Fields(commandLine)
	if len(argv) == 0 {
		return "", ErrEmptyCommand
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug().Str("cmd", commandLine).Str("dir", r.Dir).Msg("running command")

	if err := cmd.Run(); err != nil {
		cerr := &CommandError{
			Command:  commandLine,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr.ExitCode = exitErr.ExitCode()
		}
		return "", cerr
	}

	return strings.TrimSpace(stdout.String()), nil
}

// FuncRunner adapts a function to the Runner interface.
type FuncRunner func(ctx context.Context, commandLine string) (string, error)

// Run implements Runner.
func (f FuncRunner) Run(ctx context.Context, commandLine string) (string, error) {
	return f(ctx, commandLine)
}
