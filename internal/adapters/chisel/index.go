// Package chisel reads the curated slice-definitions repository so
// already-covered packages can be skipped.
package chisel

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/autoslice/internal/adapters/shell"
	"go.trai.ch/autoslice/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultRepoURL is the upstream curated-definitions repository.
const DefaultRepoURL = "https://github.com/canonical/chisel-releases"

// Index implements ports.CuratedIndex with a shallow git clone of the
// release branch. Clones are memoized per release for the run.
type Index struct {
	runner  *shell.Runner
	ws      ports.Workspace
	repoURL string

	mu       sync.Mutex
	releases map[string]map[string]bool
}

// NewIndex creates a new Index cloning from repoURL, or DefaultRepoURL
// when empty.
func NewIndex(runner *shell.Runner, ws ports.Workspace, repoURL string) *Index {
	if repoURL == "" {
		repoURL = DefaultRepoURL
	}
	return &Index{
		runner:   runner,
		ws:       ws,
		repoURL:  repoURL,
		releases: make(map[string]map[string]bool),
	}
}

// Packages returns the package names with curated definitions for the
// given release tag (a branch of the repository, e.g. "ubuntu-24.04").
func (i *Index) Packages(ctx context.Context, release string) (map[string]bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if pkgs, ok := i.releases[release]; ok {
		return pkgs, nil
	}

	// The clone shares the run's scratch space with package downloads.
	dir, err := i.ws.PackageDir("chisel-releases@" + release)
	if err != nil {
		return nil, err
	}

	cloneDir := filepath.Join(dir, "repo")
	if _, err := i.runner.Run(ctx, "", "git", "clone", "--depth", "1", "--branch", release, i.repoURL, cloneDir); err != nil {
		return nil, zerr.With(err, "release", release)
	}

	pkgs, err := listSliceFiles(filepath.Join(cloneDir, "slices"))
	if err != nil {
		return nil, err
	}

	i.releases[release] = pkgs
	return pkgs, nil
}

// listSliceFiles maps slices/<name>.yaml files to package names.
func listSliceFiles(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list curated slices")
	}
	pkgs := make(map[string]bool, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		pkgs[strings.TrimSuffix(name, ".yaml")] = true
	}
	return pkgs, nil
}
