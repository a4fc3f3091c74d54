package ports

import "context"

// ArchiveLister lists the raw file manifest of a downloaded package archive.
//
//go:generate go run go.uber.org/mock/mockgen -source=archive_lister.go -destination=mocks/mock_archive_lister.go -package=mocks
type ArchiveLister interface {
	// List returns the per-entry listing lines of the archive at the
	// given path, one line per installed file or directory. It returns
	// domain.ErrExternalTool when the listing tool exits non-zero.
	List(ctx context.Context, archivePath string) ([]string, error)
}
