package apt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/autoslice/internal/adapters/shell"
	"go.trai.ch/autoslice/internal/core/domain"
	"go.trai.ch/autoslice/internal/core/ports/mocks"
)

func TestParseDepends(t *testing.T) {
	lines := []string{
		"openssl",
		"  Depends: libc6",
		"  Depends: libssl3t64",
		" |Depends: debconf",
		"  Depends: <debconf-2.0>",
		"    debconf",
		"  Suggests: ca-certificates",
		"",
	}

	assert.Equal(t, []string{"libc6", "libssl3t64", "debconf"}, parseDepends(lines))
}

func TestParseDepends_NoDepends(t *testing.T) {
	assert.Empty(t, parseDepends([]string{"hello", "  Suggests: foo"}))
}

func TestFindArchive(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"libfoo_1.0_amd64.deb",
		"foo_1.2-3ubuntu1_amd64.deb",
		"foo_notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	archive, err := findArchive(dir, "foo")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "foo_1.2-3ubuntu1_amd64.deb"), archive)
}

func TestFindArchive_NotDownloaded(t *testing.T) {
	_, err := findArchive(t.TempDir(), "foo")
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound))
}

// runnerErr fabricates a tool failure through the real runner, matching
// what apt-cache produces in the wild.
func runnerErr(t *testing.T, script string) error {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	_, err := shell.NewRunner(logger).Run(context.Background(), "", "sh", "-c", script)
	require.Error(t, err)
	return err
}

func TestIsUnknownPackage(t *testing.T) {
	unknown := runnerErr(t, "echo 'E: No packages found' >&2; exit 100")
	assert.True(t, isUnknownPackage(unknown))

	locked := runnerErr(t, "echo 'E: Could not get lock' >&2; exit 100")
	assert.False(t, isUnknownPackage(locked), "apt failing is not the package missing")

	assert.False(t, isUnknownPackage(errors.New("spawn failed")))
}
