// Package bootstrap runs the ordered provisioning procedure that prepares a
// workstation for the stoker temperature-control service.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/afero"
	"github.com/vheusov/stoker-setup/internal/console"
	"github.com/vheusov/stoker-setup/internal/logging"
	"github.com/vheusov/stoker-setup/internal/prompt"
	"github.com/vheusov/stoker-setup/internal/python"
	"github.com/vheusov/stoker-setup/internal/workspace"
)

// App wires the provisioning collaborators together. Every external effect
// goes through an injectable seam: the filesystem, the process runner, the
// reporter and the pause prompter.
type App struct {
	fs       afero.Fs
	runner   python.Runner
	out      *console.Reporter
	prompter prompt.Prompter
	workDir  string
	pause    bool
}

// Option configures an App.
type Option func(*App)

// WithFs injects the filesystem used for all workspace mutation.
func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.fs = fs }
}

// WithRunner injects the process runner used for python and pip.
func WithRunner(runner python.Runner) Option {
	return func(a *App) { a.runner = runner }
}

// WithReporter injects the terminal reporter.
func WithReporter(out *console.Reporter) Option {
	return func(a *App) { a.out = out }
}

// WithPrompter injects the pause prompter.
func WithPrompter(p prompt.Prompter) Option {
	return func(a *App) { a.prompter = p }
}

// WithPause controls whether the run ends with a terminal pause.
func WithPause(pause bool) Option {
	return func(a *App) { a.pause = pause }
}

// New creates an App provisioning the given project directory.
func New(workDir string, opts ...Option) *App {
	app := &App{
		workDir: workDir,
		fs:      afero.NewOsFs(),
		runner:  python.NewExecRunner(),
		out:     console.New(os.Stdout),
		pause:   true,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run executes the provisioning phases in order. The runtime probe strictly
// precedes any filesystem mutation; child-process failures abort without
// rollback, leaving whatever earlier phases produced.
func (a *App) Run(ctx context.Context) error {
	log := logging.Get(ctx)
	layout := workspace.NewLayout(a.workDir, a.fs)

	a.out.Print("Stoker temperature controller: workstation setup")
	a.out.Blank()

	interp, err := a.probeRuntime(ctx)
	if err != nil {
		return err
	}

	venv, err := a.ensureVenv(ctx, layout, interp)
	if err != nil {
		return err
	}

	a.out.Step("Upgrading pip")
	if err := venv.UpgradePip(ctx); err != nil {
		return err
	}

	a.out.Step("Installing dependencies from %s", workspace.RequirementsFile)
	if err := venv.InstallRequirements(ctx, layout.Path(workspace.RequirementsFile)); err != nil {
		return err
	}
	a.out.OK("Dependencies installed")
	log.Info().Msg("dependencies installed")

	if err := a.scaffold(layout); err != nil {
		return err
	}

	if err := a.seedConfig(layout); err != nil {
		return err
	}

	a.printGuidance(venv)
	log.Info().Str("workspace", a.workDir).Msg("provisioning complete")

	return a.pauseBeforeExit()
}

// probeRuntime locates the Python interpreter and echoes its version. It
// runs before anything touches the filesystem.
func (a *App) probeRuntime(ctx context.Context) (*python.Interpreter, error) {
	interp, err := python.Find(a.runner, a.fs)
	if err != nil {
		a.out.Fail("Python %s or newer is required but no interpreter was found", python.MinimumVersion)
		return nil, err
	}

	version, err := interp.Probe(ctx)
	if err != nil {
		a.out.Fail("Python %s or newer is required; %s did not run", python.MinimumVersion, interp.Path)
		return nil, err
	}

	a.out.OK("%s (%s)", version, interp.Path)
	logging.Get(ctx).Info().Str("python", interp.Path).Str("version", version).Msg("runtime probe ok")
	return interp, nil
}

// ensureVenv creates venv/ when absent and resolves the in-venv interpreter.
// Pip is addressed through that interpreter by path; there is no reliance on
// shell activation side effects.
func (a *App) ensureVenv(ctx context.Context, layout *workspace.Layout, interp *python.Interpreter) (*python.Venv, error) {
	exists, err := layout.DirExists(workspace.VenvDir)
	if err != nil {
		return nil, err
	}

	venvPath := layout.Path(workspace.VenvDir)
	if exists {
		a.out.Skip("%s/ already exists, reusing it", workspace.VenvDir)
	} else {
		a.out.Step("Creating virtual environment in %s/", workspace.VenvDir)
		if err := interp.CreateVenv(ctx, venvPath); err != nil {
			return nil, err
		}
		a.out.OK("Virtual environment created")
	}

	venv := python.NewVenv(venvPath, a.runner)
	venvPython, err := afero.Exists(a.fs, venv.Interpreter())
	if err != nil {
		return nil, fmt.Errorf("failed to check venv interpreter: %w", err)
	}
	if !venvPython {
		return nil, fmt.Errorf("virtual environment at %s has no interpreter at %s", venvPath, venv.Interpreter())
	}
	a.out.OK("Using venv interpreter %s", venv.Interpreter())

	return venv, nil
}

// scaffold creates the application directories and keep-markers, skipping
// anything already present. Markers exist only under logs/ and data/.
func (a *App) scaffold(layout *workspace.Layout) error {
	for _, dir := range workspace.ScaffoldDirs() {
		created, err := layout.EnsureDir(dir)
		if err != nil {
			return err
		}
		if created {
			a.out.OK("Created %s/", dir)
		} else {
			a.out.Skip("%s/ already exists", dir)
		}
	}

	for _, marker := range workspace.KeepMarkers() {
		created, err := layout.EnsureKeepMarker(marker)
		if err != nil {
			return err
		}
		if created {
			a.out.OK("Created %s", marker)
		}
	}

	return nil
}

// seedConfig copies the shipped example into place when no active
// configuration exists. A pre-existing config.yaml is never overwritten; a
// missing example is silent.
func (a *App) seedConfig(layout *workspace.Layout) error {
	result, err := layout.SeedConfig()
	if err != nil {
		return err
	}

	switch result {
	case workspace.ConfigSeeded:
		a.out.Warn("%s created from %s, edit it before the first run",
			workspace.ConfigFile, workspace.ExampleConfigFile)
	case workspace.ConfigAlreadyPresent:
		a.out.Skip("%s already exists, leaving it untouched", workspace.ConfigFile)
	case workspace.ConfigNoExample:
		// Example was not shipped; nothing to seed, nothing to say.
	}
	return nil
}

func (a *App) printGuidance(venv *python.Venv) {
	activate := "source venv/bin/activate"
	if runtime.GOOS == "windows" {
		activate = `venv\Scripts\activate`
	}

	a.out.Blank()
	a.out.Print("Next steps:")
	a.out.Print("  1. Edit %s with your sensors, plugs and thresholds", workspace.ConfigFile)
	a.out.Print("  2. Validate the setup in test mode:  %s main.py --test", venv.Interpreter())
	a.out.Print("  3. Start the controller:             %s main.py", venv.Interpreter())
	a.out.Print("  4. In future shells, activate the environment first: %s", activate)
}

// pauseBeforeExit keeps the terminal open so the output stays readable when
// launched from a window that closes on exit. Skipped without a usable
// terminal so scripted runs never hang.
func (a *App) pauseBeforeExit() error {
	if !a.pause {
		return nil
	}
	if a.prompter != nil {
		return prompt.PauseWithPrompter(a.prompter)
	}
	if !prompt.TerminalSupported() {
		return nil
	}
	return prompt.Pause()
}
