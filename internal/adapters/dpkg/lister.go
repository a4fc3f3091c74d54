// Package dpkg implements ports.ArchiveLister by shelling out to dpkg.
package dpkg

import (
	"context"

	"go.trai.ch/autoslice/internal/adapters/shell"
)

// Lister lists archive contents via "dpkg -c".
type Lister struct {
	runner *shell.Runner
}

// NewLister creates a new Lister.
func NewLister(runner *shell.Runner) *Lister {
	return &Lister{runner: runner}
}

// List returns the raw per-entry listing lines of the archive. A non-zero
// dpkg exit surfaces as domain.ErrExternalTool with captured stderr.
func (l *Lister) List(ctx context.Context, archivePath string) ([]string, error) {
	return l.runner.Run(ctx, "", "dpkg", "-c", archivePath)
}
