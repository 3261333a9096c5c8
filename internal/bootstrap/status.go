package bootstrap

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/vheusov/stoker-setup/internal/console"
	"github.com/vheusov/stoker-setup/internal/python"
	"github.com/vheusov/stoker-setup/internal/workspace"
	"gopkg.in/yaml.v3"
)

// Status reports what is already provisioned, without writing anything.
func (a *App) Status(ctx context.Context) (string, error) {
	var b strings.Builder
	out := console.New(&b)
	layout := workspace.NewLayout(a.workDir, a.fs)

	out.Print("stoker-setup status for %s", a.workDir)

	if interp, err := python.Find(a.runner, a.fs); err != nil {
		out.Fail("Python: not found")
	} else if version, probeErr := interp.Probe(ctx); probeErr != nil {
		out.Fail("Python: %s does not run", interp.Path)
	} else {
		out.OK("Python: %s (%s)", version, interp.Path)
	}

	venvExists, err := layout.DirExists(workspace.VenvDir)
	if err != nil {
		return "", err
	}
	a.statusLine(out, venvExists, workspace.VenvDir+"/")

	for _, dir := range workspace.ScaffoldDirs() {
		exists, dirErr := layout.DirExists(dir)
		if dirErr != nil {
			return "", dirErr
		}
		a.statusLine(out, exists, dir+"/")
	}

	for _, marker := range workspace.KeepMarkers() {
		exists, markerErr := layout.FileExists(marker)
		if markerErr != nil {
			return "", markerErr
		}
		a.statusLine(out, exists, marker)
	}

	for _, file := range []string{workspace.RequirementsFile, workspace.ExampleConfigFile} {
		exists, fileErr := layout.FileExists(file)
		if fileErr != nil {
			return "", fileErr
		}
		a.statusLine(out, exists, file)
	}

	if err := a.configStatus(out, layout); err != nil {
		return "", err
	}

	return b.String(), nil
}

func (*App) statusLine(out *console.Reporter, present bool, name string) {
	if present {
		out.OK("%s present", name)
	} else {
		out.Fail("%s missing", name)
	}
}

// configStatus reports on config.yaml. When present, a best-effort parse
// lists its top-level sections; a parse failure is reported as a line item,
// never as a command failure.
func (a *App) configStatus(out *console.Reporter, layout *workspace.Layout) error {
	exists, err := layout.FileExists(workspace.ConfigFile)
	if err != nil {
		return err
	}
	if !exists {
		out.Fail("%s missing", workspace.ConfigFile)
		return nil
	}

	data, err := afero.ReadFile(a.fs, layout.Path(workspace.ConfigFile))
	if err != nil {
		return err //nolint:wrapcheck // afero read error is descriptive
	}

	sections, err := configSections(data)
	switch {
	case err != nil:
		out.Warn("%s present but not parseable as YAML", workspace.ConfigFile)
	case len(sections) == 0:
		out.OK("%s present (empty)", workspace.ConfigFile)
	default:
		out.OK("%s present (sections: %s)", workspace.ConfigFile, strings.Join(sections, ", "))
	}
	return nil
}

// configSections returns the sorted top-level mapping keys of a YAML
// document.
func configSections(data []byte) ([]string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err //nolint:wrapcheck // caller reports, never propagates
	}

	sections := make([]string, 0, len(doc))
	for key := range doc {
		sections = append(sections, key)
	}
	sort.Strings(sections)
	return sections, nil
}
