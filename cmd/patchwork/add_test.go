package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddInstallsComponent(t *testing.T) {
	t.Parallel()

	dir := writeProject(t, true)
	out, err := runCommand(t, "add", "button", "--dir", dir)
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(dir, "components", "ui", "button.tsx"))
	require.Contains(t, out, "Installed 1 component(s)")
	require.Contains(t, out, "TypeScript")
	require.Contains(t, out, "npm install react-native-reanimated")
}

func TestAddJavaScriptProjectGetsDowngradedFiles(t *testing.T) {
	t.Parallel()

	dir := writeProject(t, false)
	out, err := runCommand(t, "add", "button", "--dir", dir)
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(dir, "components", "ui", "button.jsx"))
	require.NoFileExists(t, filepath.Join(dir, "components", "ui", "button.tsx"))
	require.Contains(t, out, "JavaScript")

	data, err := os.ReadFile(filepath.Join(dir, "components", "ui", "button.jsx"))
	require.NoError(t, err)
	require.NotContains(t, string(data), "interface ")
}

func TestAddResolvesRequiredComponents(t *testing.T) {
	t.Parallel()

	dir := writeProject(t, true)
	out, err := runCommand(t, "add", "dialog", "--dir", dir)
	require.NoError(t, err)

	// Dialog imports Button, so both land in the project.
	require.FileExists(t, filepath.Join(dir, "components", "ui", "dialog.tsx"))
	require.FileExists(t, filepath.Join(dir, "components", "ui", "button.tsx"))
	require.Contains(t, out, "Installed 2 component(s)")
}

func TestAddUnknownComponentFailsBeforeWriting(t *testing.T) {
	t.Parallel()

	dir := writeProject(t, true)
	_, err := runCommand(t, "add", "button", "carousel", "--dir", dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown component "carousel"`)
	require.Contains(t, err.Error(), "button")

	// Resolution happens before any write, so nothing was installed.
	require.NoDirExists(t, filepath.Join(dir, "components"))
}

func TestAddOutsideProjectFails(t *testing.T) {
	t.Parallel()

	_, err := runCommand(t, "add", "button", "--dir", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "package.json")
}

func TestAddAllInstallsEveryComponent(t *testing.T) {
	t.Parallel()

	dir := writeProject(t, true)
	out, err := runCommand(t, "add", "--all", "--dir", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Installed 21 component(s)")

	entries, err := os.ReadDir(filepath.Join(dir, "components", "ui"))
	require.NoError(t, err)
	require.Len(t, entries, 21)
	for _, e := range entries {
		require.True(t, strings.HasSuffix(e.Name(), ".tsx"))
	}
}
