package ports

import "context"

// CuratedIndex reports which packages already have curated slice
// definitions for a release, so redundant proposals can be skipped.
//
//go:generate go run go.uber.org/mock/mockgen -source=curated_index.go -destination=mocks/mock_curated_index.go -package=mocks
type CuratedIndex interface {
	// Packages returns the set of package names covered by the curated
	// definitions repository for the given release tag.
	Packages(ctx context.Context, release string) (map[string]bool, error)
}
