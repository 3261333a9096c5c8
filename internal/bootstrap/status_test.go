package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusOnEmptyWorkspace(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)

	report, err := ta.app.Status(context.Background())
	require.NoError(t, err)

	require.Contains(t, report, "stoker-setup status for /project")
	require.Contains(t, report, "Python 3.11.2")
	require.Contains(t, report, "venv/ missing")
	require.Contains(t, report, "logs/ missing")
	require.Contains(t, report, "config.yaml missing")
}

func TestStatusAfterProvisioning(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.writeFile(t, "requirements.txt", "pyyaml\n")
	ta.writeFile(t, "config.example.yaml", "placeholder: true\n")
	require.NoError(t, ta.app.Run(context.Background()))

	report, err := ta.app.Status(context.Background())
	require.NoError(t, err)

	require.Contains(t, report, "venv/ present")
	require.Contains(t, report, "logs/.gitkeep present")
	require.Contains(t, report, "data/.gitkeep present")
	require.Contains(t, report, "config.yaml present")
	require.NotContains(t, report, "missing")
}

func TestStatusListsConfigSections(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.writeFile(t, "config.yaml", "sensors:\n  poll: 5\napi:\n  port: 8080\nlogging:\n  level: info\n")

	report, err := ta.app.Status(context.Background())
	require.NoError(t, err)
	require.Contains(t, report, "sections: api, logging, sensors")
}

func TestStatusReportsUnparseableConfigWithoutFailing(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.writeFile(t, "config.yaml", "sensors: [unclosed\n")

	report, err := ta.app.Status(context.Background())
	require.NoError(t, err)
	require.Contains(t, report, "not parseable")
}

func TestStatusReportsMissingPython(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)
	ta.runner.lookPaths = map[string]string{}

	report, err := ta.app.Status(context.Background())
	require.NoError(t, err)
	require.Contains(t, report, "Python: not found")
}

func TestStatusPerformsNoWrites(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t)

	_, err := ta.app.Status(context.Background())
	require.NoError(t, err)

	require.False(t, ta.dirExists(t, "venv"))
	require.False(t, ta.dirExists(t, "logs"))
	require.False(t, ta.fileExists(t, "config.yaml"))
}
