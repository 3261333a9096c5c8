package storage

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestGetDataDirCreatesDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	manager := New(fs)

	dataDir, err := manager.GetDataDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(xdg.DataHome, AppName), dataDir)

	exists, err := afero.DirExists(fs, dataDir)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestGetLogPathUnderDataDir(t *testing.T) {
	t.Parallel()

	manager := New(afero.NewMemMapFs())

	logPath, err := manager.GetLogPath()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(logPath, filepath.Join(xdg.DataHome, AppName)))
	require.Equal(t, "stoker-setup.log", filepath.Base(logPath))
}
