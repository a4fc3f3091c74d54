// Package ports defines the core interfaces for the application.
package ports

import "context"

// PackageCache resolves package metadata and candidate binaries from the
// system package cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_cache.go -destination=mocks/mock_package_cache.go -package=mocks
type PackageCache interface {
	// CandidateBinary resolves and downloads the candidate binary artifact
	// of the named package into destDir, returning the archive path.
	// It returns domain.ErrPackageNotFound when the cache has no candidate.
	CandidateBinary(ctx context.Context, pkg, destDir string) (string, error)

	// DirectDependencies returns the package names declared as Depends
	// relations of the named package's candidate version. An unknown
	// package yields an empty list, not an error; cache failures and
	// cancellation propagate.
	DirectDependencies(ctx context.Context, pkg string) ([]string, error)
}
