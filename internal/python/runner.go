package python

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Runner abstracts process execution so provisioning logic can be tested
// without a Python installation.
type Runner interface {
	// Run executes a command, streaming its stdout and stderr to the
	// terminal. Child diagnostics are the child's own; they pass through
	// untouched.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and returns its combined output.
	Output(ctx context.Context, name string, args ...string) (string, error)
	// LookPath searches the executable search path for a binary.
	LookPath(file string) (string, error)
}

// CommandError reports a failed child process, preserving its exit code so
// the caller can propagate it as the process exit status.
type CommandError struct {
	Err      error
	Name     string
	Args     []string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Name, strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner backed by real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command with stdout and stderr attached to the terminal.
func (*ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("command", name).Strs("args", args).Msg("executing command")

	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- command paths are resolved by discovery, not user input
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		log.Error().Str("command", name).Strs("args", args).Err(err).Msg("command failed")
		return wrapCommandError(name, args, err)
	}
	return nil
}

// Output executes the command and captures combined stdout and stderr.
func (*ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	log := zerolog.Ctx(ctx)
	log.Debug().Str("command", name).Strs("args", args).Msg("executing command")

	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- command paths are resolved by discovery, not user input
	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error().Str("command", name).Strs("args", args).
			Str("output", string(output)).Err(err).Msg("command failed")
		return string(output), wrapCommandError(name, args, err)
	}
	return string(output), nil
}

// LookPath searches PATH for the named binary.
func (*ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file) //nolint:wrapcheck // direct exec wrapper, callers add context
}

func wrapCommandError(name string, args []string, err error) error {
	code := 1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &CommandError{Name: name, Args: args, ExitCode: code, Err: err}
}
