// Package installer copies component sources from a registry into a consumer
// project, downgrading to JavaScript when the project calls for it.
package installer

import (
	"os"
	"path/filepath"

	"github.com/patchwork-ui/patchwork/internal/logger"
	"github.com/patchwork-ui/patchwork/internal/project"
	"github.com/patchwork-ui/patchwork/internal/registry"
	"github.com/patchwork-ui/patchwork/internal/transform"
	patchworkerrors "github.com/patchwork-ui/patchwork/pkg/errors"
)

// Installer writes resolved components into a project.
type Installer struct {
	registry *registry.Registry
	log      *logger.Logger
}

// New constructs an installer over the given registry. A nil logger is valid
// and silences logging.
func New(reg *registry.Registry, log *logger.Logger) *Installer {
	return &Installer{registry: reg, log: log}
}

// InstalledFile records one file written during installation.
type InstalledFile struct {
	Component string
	Path      string
}

// Report summarizes a completed installation.
type Report struct {
	Components []registry.Component
	Files      []InstalledFile
	// NpmDependencies is the union of npm packages the installed components
	// import. The CLI prints an install command for these; it never runs one.
	NpmDependencies []string
}

// Install resolves keys against the registry and writes every file of every
// resolved component into the project's components directory. Existing files
// are overwritten without confirmation. Resolution happens before any write,
// so an unknown key never leaves a partial install behind.
func (i *Installer) Install(proj *project.Project, keys []string) (*Report, error) {
	components, err := i.registry.Resolve(keys)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Components:      components,
		NpmDependencies: registry.NpmDependencies(components),
	}

	for _, c := range components {
		for _, mapping := range c.Files {
			path, err := i.installFile(proj, c, mapping)
			if err != nil {
				return nil, err
			}
			report.Files = append(report.Files, InstalledFile{Component: c.Key, Path: path})
		}
	}

	i.log.Info("installation complete",
		"components", len(report.Components),
		"files", len(report.Files),
	)

	return report, nil
}

func (i *Installer) installFile(proj *project.Project, c registry.Component, mapping registry.FileMapping) (string, error) {
	data, err := i.registry.Open(mapping.Source)
	if err != nil {
		return "", patchworkerrors.NewInstallError(c.Key, mapping.Source, err)
	}

	target := mapping.Target
	if !proj.TypeScript {
		data = transform.TSToJS(data)
		target = transform.RenameExtension(target)
	}

	dest := filepath.Join(proj.ComponentsDir(), filepath.FromSlash(target))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", patchworkerrors.NewInstallError(c.Key, dest, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", patchworkerrors.NewInstallError(c.Key, dest, err)
	}

	i.log.Debug("wrote component file", "component", c.Key, "path", dest)
	return dest, nil
}

// WriteTheme writes the theme configuration template into the project's
// components directory, downgrading for JavaScript projects. It returns the
// written path.
func (i *Installer) WriteTheme(proj *project.Project, template []byte) (string, error) {
	data := template
	name := "theme.ts"
	if !proj.TypeScript {
		data = transform.TSToJS(data)
		name = transform.RenameExtension(name)
	}

	dest := filepath.Join(proj.ComponentsDir(), name)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", patchworkerrors.NewInstallError("theme", dest, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", patchworkerrors.NewInstallError("theme", dest, err)
	}

	i.log.Debug("wrote theme file", "path", dest)
	return dest, nil
}

// ThemePath returns where WriteTheme would write for the given project.
func ThemePath(proj *project.Project) string {
	name := "theme.ts"
	if !proj.TypeScript {
		name = transform.RenameExtension(name)
	}
	return filepath.Join(proj.ComponentsDir(), name)
}
