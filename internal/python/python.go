// Package python locates a Python interpreter and drives the venv and pip
// child processes used during provisioning.
package python

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// MinimumVersion is the oldest Python release the stoker service supports.
// The probe does not verify it numerically; it only appears in diagnostics.
const MinimumVersion = "3.8"

// Interpreter names tried on the executable search path, in order.
var candidateNames = []string{"python3", "python"}

// Common installation locations checked as fallback when PATH has nothing.
var commonLocations = []string{
	"/opt/homebrew/bin/python3", // macOS Homebrew
	"/usr/local/bin/python3",    // Unix standard location
}

// NotFoundError reports that no usable Python interpreter could be located.
type NotFoundError struct {
	AttemptedPaths []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Python interpreter not found (tried %s): install Python %s or newer and re-run",
		strings.Join(e.AttemptedPaths, ", "), MinimumVersion)
}

// Interpreter is a located Python binary.
type Interpreter struct {
	runner Runner
	Path   string
}

// Find locates a Python interpreter via PATH lookup of the candidate names,
// falling back to common installation locations probed through fs so tests
// control what the fallback sees.
func Find(runner Runner, fs afero.Fs) (*Interpreter, error) {
	attemptedPaths := make([]string, 0, len(candidateNames)+len(commonLocations))

	for _, name := range candidateNames {
		pathBinary, err := runner.LookPath(name)
		if err != nil {
			attemptedPaths = append(attemptedPaths, fmt.Sprintf("PATH: %s", name))
			continue
		}
		return &Interpreter{Path: pathBinary, runner: runner}, nil
	}

	for _, location := range commonLocations {
		attemptedPaths = append(attemptedPaths, fmt.Sprintf("common: %s", location))

		if err := validateBinary(fs, location); err == nil {
			return &Interpreter{Path: location, runner: runner}, nil
		}
	}

	return nil, &NotFoundError{AttemptedPaths: attemptedPaths}
}

// Probe asks the interpreter for its version string. Any runnable
// interpreter passes; the version is echoed, not compared.
func (i *Interpreter) Probe(ctx context.Context) (string, error) {
	output, err := i.runner.Output(ctx, i.Path, "--version")
	if err != nil {
		return "", fmt.Errorf("failed to probe Python version: %w", err)
	}
	return strings.TrimSpace(output), nil
}

// CreateVenv asks the interpreter to build a virtual environment at dir.
func (i *Interpreter) CreateVenv(ctx context.Context, dir string) error {
	if err := i.runner.Run(ctx, i.Path, "-m", "venv", dir); err != nil {
		return fmt.Errorf("failed to create virtual environment: %w", err)
	}
	return nil
}

// validateBinary checks that the path exists and is a regular executable file.
func validateBinary(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return err //nolint:wrapcheck // stat error is descriptive
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a binary", path)
	}
	if info.Mode()&0o111 == 0 {
		return fmt.Errorf("%s is not executable", path)
	}
	return nil
}
