package logging

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAttachesLoggerToContext(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, Config{
		Writer:    &buf,
		Workspace: "/project",
		Level:     InfoLevel,
	})
	require.NoError(t, err)

	Get(ctx).Info().Str("phase", "probe").Msg("python located")

	out := buf.String()
	require.Contains(t, out, `"workspace":"/project"`)
	require.Contains(t, out, `"phase":"probe"`)
	require.Contains(t, out, "python located")
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, Config{
		Writer: &buf,
		Level:  WarnLevel,
	})
	require.NoError(t, err)

	Get(ctx).Info().Msg("suppressed")
	Get(ctx).Warn().Msg("emitted")

	require.NotContains(t, buf.String(), "suppressed")
	require.Contains(t, buf.String(), "emitted")
}

func TestDebugLevelEnablesChildCommandTracing(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	ctx, err := New(context.Background(), nil, Config{
		Writer: &buf,
		Level:  DebugLevel,
	})
	require.NoError(t, err)

	Get(ctx).Debug().Str("command", "/usr/bin/python3").Msg("executing command")
	require.Contains(t, buf.String(), "executing command")
}

func TestNewRequiresFilesystemWithoutWriter(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), nil, Config{})
	require.Error(t, err)
}

func TestGetReturnsDisabledLoggerForBareContext(t *testing.T) {
	t.Parallel()

	logger := Get(context.Background())
	require.NotNil(t, logger)
	// Writing through the disabled logger must not panic.
	logger.Info().Msg("ignored")
}
