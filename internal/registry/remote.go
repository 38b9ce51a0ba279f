package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	git "github.com/go-git/go-git/v5"

	"github.com/patchwork-ui/patchwork/internal/config"
)

// ManifestName is the file a remote registry repository must carry at its
// root.
const ManifestName = "registry.yaml"

// OpenRemote clones or updates the registry repository at url under cacheDir
// and builds a Registry from its manifest. The clone is shallow; repeated
// invocations reuse and fast-forward the cached checkout.
func OpenRemote(ctx context.Context, url, cacheDir string) (*Registry, error) {
	dir := filepath.Join(cacheDir, "registries", cacheSlug(url))

	if err := syncRemote(ctx, url, dir); err != nil {
		return nil, fmt.Errorf("syncing registry %s: %w", url, err)
	}

	manifest, err := config.ParseManifest(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}

	components, err := manifestComponents(manifest, dir)
	if err != nil {
		return nil, err
	}

	return New(os.DirFS(dir), components)
}

// FromManifest builds a registry from an already-parsed manifest rooted at
// dir. Split out from OpenRemote so tests can exercise manifest handling
// without a git remote.
func FromManifest(manifest *config.Manifest, dir string) (*Registry, error) {
	components, err := manifestComponents(manifest, dir)
	if err != nil {
		return nil, err
	}
	return New(os.DirFS(dir), components)
}

func syncRemote(ctx context.Context, url, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		repo, err := git.PlainOpen(dir)
		if err != nil {
			return err
		}
		worktree, err := repo.Worktree()
		if err != nil {
			return err
		}
		err = worktree.PullContext(ctx, &git.PullOptions{})
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil
		}
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return err
	}

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	return err
}

func manifestComponents(manifest *config.Manifest, dir string) ([]Component, error) {
	fsys := os.DirFS(dir)
	components := make([]Component, 0, len(manifest.Components))

	for _, mc := range manifest.Components {
		c := Component{
			Key:          mc.Key,
			Name:         mc.Name,
			Description:  mc.Description,
			Dependencies: mc.Dependencies,
			Requires:     mc.Requires,
			Doc:          mc.Doc,
		}

		for _, f := range mc.Files {
			c.Files = append(c.Files, FileMapping{Source: f.Source, Target: f.Target})
		}

		// Components without explicit files are discovered by key.
		if len(c.Files) == 0 {
			matches, err := doublestar.Glob(fsys, "**/"+mc.Key+".{ts,tsx}")
			if err != nil {
				return nil, err
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("registry %s: no source files found for component %q", manifest.Name, mc.Key)
			}
			for _, match := range matches {
				c.Files = append(c.Files, FileMapping{
					Source: match,
					Target: filepath.ToSlash(filepath.Join("ui", filepath.Base(match))),
				})
			}
		}

		if c.Doc == "" {
			docPath := "docs/" + mc.Key + ".md"
			if _, err := os.Stat(filepath.Join(dir, docPath)); err == nil {
				c.Doc = docPath
			}
		}

		components = append(components, c)
	}

	return components, nil
}

func cacheSlug(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:8])
}
