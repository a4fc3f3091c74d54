package ports

// Workspace is the per-run scratch directory. It is created at run start
// and removed at run end regardless of per-package failures.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Root returns the workspace root directory.
	Root() string

	// PackageDir returns a directory private to the named package,
	// creating it if needed. Distinct names never share a directory, so
	// concurrent fetches cannot collide.
	PackageDir(pkg string) (string, error)

	// Close removes the workspace and everything beneath it. Closing an
	// already-removed workspace is a no-op.
	Close() error
}
