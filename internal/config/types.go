package config

// Language constrains how the installer treats component sources for a
// project. Auto defers to project detection.
const (
	LanguageAuto       = "auto"
	LanguageTypeScript = "typescript"
	LanguageJavaScript = "javascript"
)

// Settings is the optional patchwork.yaml at a consumer project root. Every
// field has a working default; the file only exists to override them.
type Settings struct {
	// ComponentsDir is where installed component files land, relative to the
	// project root.
	ComponentsDir string `yaml:"components_dir" validate:"omitempty,relative_path"`
	// Language forces TypeScript or JavaScript output instead of detecting it
	// from the project.
	Language string `yaml:"language" validate:"omitempty,oneof=auto typescript javascript"`
	// Registry is a git URL of a remote component registry used instead of the
	// built-in one.
	Registry string `yaml:"registry" validate:"omitempty,url"`
}

// DefaultSettings returns the settings used when no patchwork.yaml exists.
func DefaultSettings() Settings {
	return Settings{
		ComponentsDir: "components",
		Language:      LanguageAuto,
	}
}

// Manifest is the registry.yaml at the root of a remote component registry
// repository.
type Manifest struct {
	Name       string              `yaml:"name" validate:"required"`
	Components []ManifestComponent `yaml:"components" validate:"required,min=1,dive"`
}

// ManifestComponent declares one component of a remote registry. Files may be
// omitted, in which case sources are discovered by glob from the component
// key.
type ManifestComponent struct {
	Key          string         `yaml:"key" validate:"required,component_key"`
	Name         string         `yaml:"name" validate:"required"`
	Description  string         `yaml:"description"`
	Dependencies []string       `yaml:"dependencies"`
	Requires     []string       `yaml:"requires,omitempty" validate:"omitempty,dive,component_key"`
	Files        []ManifestFile `yaml:"files,omitempty" validate:"omitempty,dive"`
	Doc          string         `yaml:"doc,omitempty"`
}

// ManifestFile pairs a repo-relative source with an install target.
type ManifestFile struct {
	Source string `yaml:"source" validate:"required,relative_path"`
	Target string `yaml:"target" validate:"required,relative_path"`
}
