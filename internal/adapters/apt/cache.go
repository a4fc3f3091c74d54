// Package apt implements ports.PackageCache on top of the system apt
// tooling: apt-cache for metadata, apt-get for candidate downloads.
package apt

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/autoslice/internal/adapters/shell"
	"go.trai.ch/autoslice/internal/core/domain"
	"go.trai.ch/autoslice/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache implements ports.PackageCache.
type Cache struct {
	runner *shell.Runner
	logger ports.Logger
}

// NewCache creates a new Cache.
func NewCache(runner *shell.Runner, logger ports.Logger) *Cache {
	return &Cache{runner: runner, logger: logger}
}

// DirectDependencies returns the Depends relations of the package's
// candidate version. An unknown package is a diagnostic, not an error:
// the caller gets an empty list and the run continues. Cancellation and
// apt itself failing propagate, so a broken cache cannot silently
// produce empty dependency lists.
func (c *Cache) DirectDependencies(ctx context.Context, pkg string) ([]string, error) {
	lines, err := c.runner.Run(ctx, "", "apt-cache", "depends", pkg)
	switch {
	case err == nil:
		return parseDepends(lines), nil
	case ctx.Err() != nil:
		return nil, err
	case isUnknownPackage(err):
		c.logger.Warn("package " + pkg + " not found")
		return nil, nil
	default:
		return nil, zerr.With(err, "package", pkg)
	}
}

// CandidateBinary downloads the candidate binary of the package into
// destDir and returns the archive path.
func (c *Cache) CandidateBinary(ctx context.Context, pkg, destDir string) (string, error) {
	if _, err := c.runner.Run(ctx, "", "apt-cache", "show", pkg); err != nil {
		if ctx.Err() == nil && isUnknownPackage(err) {
			return "", zerr.With(domain.ErrPackageNotFound, "package", pkg)
		}
		return "", err
	}

	if _, err := c.runner.Run(ctx, destDir, "apt-get", "download", pkg); err != nil {
		return "", err
	}

	archive, err := findArchive(destDir, pkg)
	if err != nil {
		return "", err
	}
	return archive, nil
}

// isUnknownPackage reports whether a runner error is apt refusing the
// package name rather than apt itself failing. apt-cache reports an
// unknown name with "E: No packages found" on stderr and a non-zero
// exit; locking problems, corrupted caches and killed processes look
// different and must propagate.
func isUnknownPackage(err error) bool {
	return shell.ExitCode(err) > 0 && strings.Contains(shell.Stderr(err), "No packages found")
}

// parseDepends extracts dependency names from apt-cache depends output.
// Lines look like "  Depends: libc6"; alternatives are prefixed with "|"
// and virtual packages are wrapped in angle brackets.
func parseDepends(lines []string) []string {
	var deps []string
	for _, line := range lines {
		entry := strings.TrimSpace(line)
		entry = strings.TrimPrefix(entry, "|")
		name, ok := strings.CutPrefix(entry, "Depends:")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" || strings.HasPrefix(name, "<") {
			continue
		}
		deps = append(deps, name)
	}
	return deps
}

// findArchive locates the downloaded .deb for the package in dir.
func findArchive(dir, pkg string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read download directory")
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, pkg+"_") && strings.HasSuffix(name, ".deb") {
			return filepath.Join(dir, name), nil
		}
	}
	return "", zerr.With(domain.ErrPackageNotFound, "package", pkg)
}
