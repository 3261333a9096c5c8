// Package workspace lays out the stoker project directory: the venv root,
// the scaffold directories, version-control keep-markers, and the active
// configuration seeded from the shipped example.
package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Well-known paths, relative to the project root.
const (
	VenvDir           = "venv"
	LogsDir           = "logs"
	DataDir           = "data"
	StaticDir         = "web/static"
	TemplatesDir      = "web/templates"
	ConfigFile        = "config.yaml"
	ExampleConfigFile = "config.example.yaml"
	RequirementsFile  = "requirements.txt"
	keepMarkerName    = ".gitkeep"
)

// SeedResult describes which branch configuration seeding took.
type SeedResult int

const (
	// ConfigSeeded means config.yaml was created from the example.
	ConfigSeeded SeedResult = iota
	// ConfigAlreadyPresent means config.yaml existed and was left untouched.
	ConfigAlreadyPresent
	// ConfigNoExample means neither file existed; nothing was done.
	ConfigNoExample
)

// Layout resolves and provisions paths under a single project root. All IO
// goes through the injected filesystem so tests can run against MemMapFs.
type Layout struct {
	fs   afero.Fs
	root string
}

// NewLayout creates a layout rooted at the project directory.
func NewLayout(root string, fs afero.Fs) *Layout {
	return &Layout{root: root, fs: fs}
}

// Root returns the project root the layout was created with.
func (l *Layout) Root() string {
	return l.root
}

// Path resolves a root-relative path to one usable against the filesystem.
func (l *Layout) Path(rel string) string {
	return filepath.Join(l.root, filepath.FromSlash(rel))
}

// ScaffoldDirs lists the directories the application expects, in creation
// order.
func ScaffoldDirs() []string {
	return []string{LogsDir, DataDir, StaticDir, TemplatesDir}
}

// KeepMarkers lists the keep-marker files. Only logs/ and data/ carry
// markers; the web/ subdirectories never have (matching the shipped repo).
func KeepMarkers() []string {
	return []string{
		LogsDir + "/" + keepMarkerName,
		DataDir + "/" + keepMarkerName,
	}
}

// DirExists reports whether the root-relative path exists as a directory.
func (l *Layout) DirExists(rel string) (bool, error) {
	exists, err := afero.DirExists(l.fs, l.Path(rel))
	if err != nil {
		return false, fmt.Errorf("failed to check directory %s: %w", rel, err)
	}
	return exists, nil
}

// FileExists reports whether the root-relative path exists as a regular file.
func (l *Layout) FileExists(rel string) (bool, error) {
	exists, err := afero.Exists(l.fs, l.Path(rel))
	if err != nil {
		return false, fmt.Errorf("failed to check file %s: %w", rel, err)
	}
	if !exists {
		return false, nil
	}
	isDir, err := afero.IsDir(l.fs, l.Path(rel))
	if err != nil {
		return false, fmt.Errorf("failed to check file %s: %w", rel, err)
	}
	return !isDir, nil
}

// EnsureDir creates the directory (and missing parents) if absent. Returns
// whether it was created by this call.
func (l *Layout) EnsureDir(rel string) (bool, error) {
	exists, err := l.DirExists(rel)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := l.fs.MkdirAll(l.Path(rel), 0o750); err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", rel, err)
	}
	return true, nil
}

// EnsureKeepMarker creates an empty marker file if absent. Returns whether
// it was created by this call.
func (l *Layout) EnsureKeepMarker(rel string) (bool, error) {
	exists, err := l.FileExists(rel)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := afero.WriteFile(l.fs, l.Path(rel), []byte{}, 0o640); err != nil {
		return false, fmt.Errorf("failed to create keep-marker %s: %w", rel, err)
	}
	return true, nil
}

// SeedConfig copies config.example.yaml to config.yaml byte-for-byte when
// the active configuration is absent and the example is present. An existing
// config.yaml is never touched; a missing example is not an error.
func (l *Layout) SeedConfig() (SeedResult, error) {
	active, err := l.FileExists(ConfigFile)
	if err != nil {
		return ConfigNoExample, err
	}
	if active {
		return ConfigAlreadyPresent, nil
	}

	example, err := l.FileExists(ExampleConfigFile)
	if err != nil {
		return ConfigNoExample, err
	}
	if !example {
		return ConfigNoExample, nil
	}

	data, err := afero.ReadFile(l.fs, l.Path(ExampleConfigFile))
	if err != nil {
		return ConfigNoExample, fmt.Errorf("failed to read %s: %w", ExampleConfigFile, err)
	}
	if err := afero.WriteFile(l.fs, l.Path(ConfigFile), data, 0o640); err != nil {
		return ConfigNoExample, fmt.Errorf("failed to write %s: %w", ConfigFile, err)
	}
	return ConfigSeeded, nil
}
