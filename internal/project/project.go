// Package project inspects a consumer project directory: whether it is a
// JavaScript or TypeScript project, and where installed components belong.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/patchwork-ui/patchwork/internal/config"
	patchworkerrors "github.com/patchwork-ui/patchwork/pkg/errors"
)

// ErrNoPackageManifest indicates the directory has no package.json and is
// therefore not an installable target.
var ErrNoPackageManifest = errors.New("no package.json found")

// Project describes a detected consumer project.
type Project struct {
	Root       string
	TypeScript bool
	Settings   config.Settings
}

type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Detect inspects root and returns the resulting project description. The
// project is TypeScript when a tsconfig.json exists or the package manifest
// depends on typescript; an explicit language in patchwork.yaml overrides
// detection either way.
func Detect(root string) (*Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	manifestPath := filepath.Join(absRoot, "package.json")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", absRoot, ErrNoPackageManifest)
		}
		return nil, err
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, patchworkerrors.NewParseError(manifestPath, 0, err)
	}

	settings, err := config.LoadSettings(filepath.Join(absRoot, "patchwork.yaml"))
	if err != nil {
		return nil, err
	}

	p := &Project{
		Root:     absRoot,
		Settings: settings,
	}

	switch settings.Language {
	case config.LanguageTypeScript:
		p.TypeScript = true
	case config.LanguageJavaScript:
		p.TypeScript = false
	default:
		p.TypeScript = detectTypeScript(absRoot, manifest)
	}

	return p, nil
}

func detectTypeScript(root string, manifest packageManifest) bool {
	if _, err := os.Stat(filepath.Join(root, "tsconfig.json")); err == nil {
		return true
	}
	if _, ok := manifest.Dependencies["typescript"]; ok {
		return true
	}
	if _, ok := manifest.DevDependencies["typescript"]; ok {
		return true
	}
	return false
}

// ComponentsDir returns the absolute directory installed component files are
// written under.
func (p *Project) ComponentsDir() string {
	return filepath.Join(p.Root, filepath.FromSlash(p.Settings.ComponentsDir))
}
