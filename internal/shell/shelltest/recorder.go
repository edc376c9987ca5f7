// Package shelltest provides a scripted shell.Runner for tests.
package shelltest

import (
	"context"
	"os/exec"

	"github.com/alexiusacademia/buildmeta/internal/shell"
)

// Response is the scripted result for one command line.
type Response struct {
	Out string
	Err error
}

// Recorder answers command lines from a script and records every call.
// Unscripted commands fail as if the binary were missing.
type Recorder struct {
	Script map[string]Response
	Calls  []string
}

// NewRecorder returns a Recorder with an empty script.
func NewRecorder() *Recorder {
	return &Recorder{Script: make(map[string]Response)}
}

// On scripts a successful output for commandLine.
func (r *Recorder) On(commandLine, out string) *Recorder {
	r.Script[commandLine] = Response{Out: out}
	return r
}

// Fail scripts a failing exit for commandLine.
func (r *Recorder) Fail(commandLine string, exitCode int) *Recorder {
	r.Script[commandLine] = Response{Err: &shell.CommandError{
		Command:  commandLine,
		ExitCode: exitCode,
		Stderr:   "fatal: scripted failure",
	}}
	return r
}

// Run implements shell.Runner.
func (r *Recorder) Run(_ context.Context, commandLine string) (string, error) {
	r.Calls = append(r.Calls, commandLine)
	resp, ok := r.Script[commandLine]
	if !ok {
		return "", &shell.CommandError{Command: commandLine, ExitCode: -1, Err: exec.ErrNotFound}
	}
	return resp.Out, resp.Err
}

// Count returns how many times commandLine was run.
func (r *Recorder) Count(commandLine string) int {
	n := 0
	for _, c := range r.Calls {
		if c == commandLine {
			n++
		}
	}
	return n
}
