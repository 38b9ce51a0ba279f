// Package assets holds the component sources, docs, and config templates that
// ship inside the patchwork binary. Everything the installer copies into a
// consumer project originates here.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed templates docs
var embedded embed.FS

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return embedded
}

// ReadFile reads a single embedded asset by path.
func ReadFile(path string) ([]byte, error) {
	return embedded.ReadFile(path)
}
