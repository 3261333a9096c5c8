package python

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVenvInterpreterPath(t *testing.T) {
	t.Parallel()

	got := VenvInterpreter("venv")
	if runtime.GOOS == "windows" {
		require.Equal(t, filepath.Join("venv", "Scripts", "python.exe"), got)
	} else {
		require.Equal(t, filepath.Join("venv", "bin", "python"), got)
	}
}

func TestUpgradePipTargetsVenvInterpreter(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	venv := NewVenv("venv", runner)

	err := venv.UpgradePip(context.Background())
	require.NoError(t, err)
	require.Len(t, runner.commands, 1)
	require.Equal(t, venv.Interpreter(), runner.commands[0][0])
	require.Equal(t, []string{"-m", "pip", "install", "--upgrade", "pip"}, runner.commands[0][1:])
}

func TestInstallRequirementsPassesManifest(t *testing.T) {
	t.Parallel()

	runner := newFakeRunner()
	venv := NewVenv("venv", runner)

	err := venv.InstallRequirements(context.Background(), "requirements.txt")
	require.NoError(t, err)
	require.Len(t, runner.commands, 1)
	require.Equal(t, []string{"-m", "pip", "install", "-r", "requirements.txt"}, runner.commands[0][1:])
}

func TestExecRunnerLookPathMissingBinary(t *testing.T) {
	t.Parallel()

	runner := NewExecRunner()
	_, err := runner.LookPath("definitely-not-a-real-binary-name")
	require.Error(t, err)
}
