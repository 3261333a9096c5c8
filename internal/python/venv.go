package python

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
)

// Venv addresses an existing virtual environment through its own interpreter
// by absolute path. Shell activation is process-scoped and does not reliably
// redirect child processes started from here, so pip is always invoked as
// `<venv-python> -m pip ...` instead.
type Venv struct {
	runner Runner
	Dir    string
}

// NewVenv wraps the virtual environment rooted at dir.
func NewVenv(dir string, runner Runner) *Venv {
	return &Venv{Dir: dir, runner: runner}
}

// Interpreter returns the path of the interpreter inside the venv.
func (v *Venv) Interpreter() string {
	return VenvInterpreter(v.Dir)
}

// VenvInterpreter returns the interpreter path for a venv rooted at dir,
// following the platform's venv layout.
func VenvInterpreter(dir string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(dir, "Scripts", "python.exe")
	}
	return filepath.Join(dir, "bin", "python")
}

// UpgradePip upgrades the in-venv pip to its latest version.
func (v *Venv) UpgradePip(ctx context.Context) error {
	if err := v.runner.Run(ctx, v.Interpreter(), "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("failed to upgrade pip: %w", err)
	}
	return nil
}

// InstallRequirements installs every entry of the dependency manifest into
// the venv. Installer failures surface through the child's own stderr; there
// is no retry.
func (v *Venv) InstallRequirements(ctx context.Context, manifest string) error {
	if err := v.runner.Run(ctx, v.Interpreter(), "-m", "pip", "install", "-r", manifest); err != nil {
		return fmt.Errorf("failed to install requirements from %s: %w", manifest, err)
	}
	return nil
}
