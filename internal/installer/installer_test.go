package installer

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/patchwork-ui/patchwork/internal/assets"
	"github.com/patchwork-ui/patchwork/internal/logger"
	"github.com/patchwork-ui/patchwork/internal/project"
	"github.com/patchwork-ui/patchwork/internal/registry"
	patchworkerrors "github.com/patchwork-ui/patchwork/pkg/errors"
)

const buttonSource = `import type { ViewStyle } from 'react-native';

interface ButtonProps {
  label: string;
}

export function Button({ label }: ButtonProps) {
  return null;
}
`

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	fsys := fstest.MapFS{
		"ui/button.tsx": {Data: []byte(buttonSource)},
		"ui/dialog.tsx": {Data: []byte("export function Dialog() {}\n")},
	}

	r, err := registry.New(fsys, []registry.Component{
		{
			Key:          "button",
			Name:         "Button",
			Dependencies: []string{"react-native-reanimated"},
			Files:        []registry.FileMapping{{Source: "ui/button.tsx", Target: "ui/button.tsx"}},
		},
		{
			Key:      "dialog",
			Name:     "Dialog",
			Requires: []string{"button"},
			Files:    []registry.FileMapping{{Source: "ui/dialog.tsx", Target: "ui/dialog.tsx"}},
		},
		{
			Key:   "broken",
			Name:  "Broken",
			Files: []registry.FileMapping{{Source: "ui/missing.tsx", Target: "ui/missing.tsx"}},
		},
	})
	require.NoError(t, err)
	return r
}

func typescriptProject(t *testing.T) *project.Project {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name": "app"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte(`{}`), 0o644))

	p, err := project.Detect(dir)
	require.NoError(t, err)
	return p
}

func javascriptProject(t *testing.T) *project.Project {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name": "app"}`), 0o644))

	p, err := project.Detect(dir)
	require.NoError(t, err)
	return p
}

func TestInstallTypeScriptCopiesByteIdentical(t *testing.T) {
	t.Parallel()

	proj := typescriptProject(t)
	inst := New(testRegistry(t), logger.Discard())

	report, err := inst.Install(proj, []string{"button"})
	require.NoError(t, err)
	require.Len(t, report.Files, 1)

	written, err := os.ReadFile(filepath.Join(proj.ComponentsDir(), "ui", "button.tsx"))
	require.NoError(t, err)
	require.Equal(t, buttonSource, string(written))
	require.Equal(t, []string{"react-native-reanimated"}, report.NpmDependencies)
}

func TestInstallJavaScriptTransformsAndRenames(t *testing.T) {
	t.Parallel()

	proj := javascriptProject(t)
	inst := New(testRegistry(t), logger.Discard())

	_, err := inst.Install(proj, []string{"button"})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(proj.ComponentsDir(), "ui", "button.tsx"))
	require.True(t, os.IsNotExist(err), "TypeScript file must not be written for JS projects")

	written, err := os.ReadFile(filepath.Join(proj.ComponentsDir(), "ui", "button.jsx"))
	require.NoError(t, err)
	require.NotContains(t, string(written), "interface")
	require.Contains(t, string(written), "export function Button({ label }) {")
}

func TestInstallUnknownKeyWritesNothing(t *testing.T) {
	t.Parallel()

	proj := typescriptProject(t)
	inst := New(testRegistry(t), logger.Discard())

	_, err := inst.Install(proj, []string{"button", "bogus"})
	require.Error(t, err)
	var unknown *patchworkerrors.UnknownComponentError
	require.ErrorAs(t, err, &unknown)

	_, statErr := os.Stat(proj.ComponentsDir())
	require.True(t, os.IsNotExist(statErr), "failed install must not create the components dir")
}

func TestInstallResolvesRequires(t *testing.T) {
	t.Parallel()

	proj := typescriptProject(t)
	inst := New(testRegistry(t), logger.Discard())

	report, err := inst.Install(proj, []string{"dialog"})
	require.NoError(t, err)
	require.Len(t, report.Components, 2)

	_, err = os.Stat(filepath.Join(proj.ComponentsDir(), "ui", "button.tsx"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(proj.ComponentsDir(), "ui", "dialog.tsx"))
	require.NoError(t, err)
}

func TestInstallOverwritesExistingFiles(t *testing.T) {
	t.Parallel()

	proj := typescriptProject(t)
	inst := New(testRegistry(t), logger.Discard())

	dest := filepath.Join(proj.ComponentsDir(), "ui", "button.tsx")
	require.NoError(t, os.MkdirAll(filepath.Dir(dest), 0o755))
	require.NoError(t, os.WriteFile(dest, []byte("locally modified"), 0o644))

	_, err := inst.Install(proj, []string{"button"})
	require.NoError(t, err)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, buttonSource, string(written))
}

func TestInstallMissingSourceFails(t *testing.T) {
	t.Parallel()

	proj := typescriptProject(t)
	inst := New(testRegistry(t), logger.Discard())

	_, err := inst.Install(proj, []string{"broken"})
	require.Error(t, err)
	var installErr *patchworkerrors.InstallError
	require.ErrorAs(t, err, &installErr)
	require.Equal(t, "broken", installErr.Component)
}

func TestWriteTheme(t *testing.T) {
	t.Parallel()

	template, err := assets.ReadFile(registry.ThemeTemplate)
	require.NoError(t, err)

	tsProj := typescriptProject(t)
	inst := New(testRegistry(t), logger.Discard())

	path, err := inst.WriteTheme(tsProj, template)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tsProj.ComponentsDir(), "theme.ts"), path)
	require.Equal(t, path, ThemePath(tsProj))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, template, written)

	jsProj := javascriptProject(t)
	path, err = inst.WriteTheme(jsProj, template)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(jsProj.ComponentsDir(), "theme.js"), path)

	written, err = os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(written), "export type Theme")
}
