// Package workspace implements the per-run scratch directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Workspace implements ports.Workspace on a temporary directory. Each
// package gets a private subdirectory named by the xxhash digest of its
// name, so concurrent fetches of different packages cannot collide and
// arbitrary package names cannot escape the root.
type Workspace struct {
	root string
}

// New creates the scratch directory for one run.
func New() (*Workspace, error) {
	root, err := os.MkdirTemp("", "autoslice-*")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create workspace")
	}
	return &Workspace{root: root}, nil
}

// Root returns the workspace root directory.
func (w *Workspace) Root() string {
	return w.root
}

// PackageDir returns the private directory for the named package,
// creating it if needed.
func (w *Workspace) PackageDir(pkg string) (string, error) {
	dir := filepath.Join(w.root, fmt.Sprintf("%016x", xxhash.Sum64String(pkg)))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create package directory"), "package", pkg)
	}
	return dir, nil
}

// Close removes the workspace and everything beneath it.
func (w *Workspace) Close() error {
	if err := os.RemoveAll(w.root); err != nil {
		return zerr.Wrap(err, "failed to remove workspace")
	}
	return nil
}
