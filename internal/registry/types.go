package registry

// FileMapping pairs a source path inside the registry's filesystem with the
// destination path the installer writes, relative to the project's components
// directory.
type FileMapping struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// Component describes one installable component: its identity, the npm
// packages its source imports, the other registry components it imports, and
// the files to copy.
type Component struct {
	Key          string        `json:"key" yaml:"key"`
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description" yaml:"description"`
	Dependencies []string      `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Requires     []string      `json:"requires,omitempty" yaml:"requires,omitempty"`
	Files        []FileMapping `json:"files" yaml:"files"`
	Doc          string        `json:"-" yaml:"doc,omitempty"`
}
