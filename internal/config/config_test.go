package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	patchworkerrors "github.com/patchwork-ui/patchwork/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "patchwork.yaml"))
	require.NoError(t, err)
	require.Equal(t, "components", settings.ComponentsDir)
	require.Equal(t, LanguageAuto, settings.Language)
	require.Empty(t, settings.Registry)
}

func TestLoadSettingsOverrides(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "patchwork.yaml", `
components_dir: src/components
language: javascript
registry: https://github.com/acme/patchwork-registry
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, "src/components", settings.ComponentsDir)
	require.Equal(t, LanguageJavaScript, settings.Language)
	require.Equal(t, "https://github.com/acme/patchwork-registry", settings.Registry)
}

func TestLoadSettingsRejectsAbsoluteComponentsDir(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "patchwork.yaml", "components_dir: /etc/components\n")

	_, err := LoadSettings(path)
	require.Error(t, err)
	var validationErr *patchworkerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLoadSettingsRejectsUnknownLanguage(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "patchwork.yaml", "language: coffeescript\n")

	_, err := LoadSettings(path)
	require.Error(t, err)
}

func TestLoadSettingsReportsParseLine(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "patchwork.yaml", "components_dir: [\n  broken\n")

	_, err := LoadSettings(path)
	require.Error(t, err)
	var parseErr *patchworkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "registry.yaml", `
name: acme
components:
  - key: button
    name: Button
    files:
      - source: ui/button.tsx
        target: ui/button.tsx
  - key: dialog
    name: Dialog
    requires: [button]
    files:
      - source: ui/dialog.tsx
        target: ui/dialog.tsx
`)

	manifest, err := ParseManifest(path)
	require.NoError(t, err)
	require.Equal(t, "acme", manifest.Name)
	require.Len(t, manifest.Components, 2)
	require.Equal(t, []string{"button"}, manifest.Components[1].Requires)
}

func TestParseManifestRejectsDuplicateKeys(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "registry.yaml", `
name: acme
components:
  - key: button
    name: Button
  - key: button
    name: Button Again
`)

	_, err := ParseManifest(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate component key")
}

func TestParseManifestRejectsDanglingRequires(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "registry.yaml", `
name: acme
components:
  - key: dialog
    name: Dialog
    requires: [button]
`)

	_, err := ParseManifest(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown component "button"`)
}

func TestParseManifestRejectsBadKey(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "registry.yaml", `
name: acme
components:
  - key: Button!
    name: Button
`)

	_, err := ParseManifest(path)
	require.Error(t, err)
}
