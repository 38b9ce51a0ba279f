// Package config parses and validates the two YAML surfaces patchwork reads:
// the optional patchwork.yaml at a consumer project root and the registry.yaml
// manifest of a remote component registry.
package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	patchworkerrors "github.com/patchwork-ui/patchwork/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadSettings reads patchwork.yaml from disk, applies defaults for omitted
// fields, and validates the result. A missing file is not an error; the
// defaults are returned.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return Settings{}, patchworkerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, patchworkerrors.NewParseError(path, extractLine(err), err)
	}

	if settings.ComponentsDir == "" {
		settings.ComponentsDir = DefaultSettings().ComponentsDir
	}
	if settings.Language == "" {
		settings.Language = LanguageAuto
	}

	if err := ValidateSettings(&settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// ParseManifest parses and validates a remote registry manifest.
func ParseManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, patchworkerrors.NewParseError(path, 0, err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, patchworkerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateManifest(&manifest); err != nil {
		return nil, err
	}

	return &manifest, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
