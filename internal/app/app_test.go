package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/autoslice/internal/adapters/sdf"
	"go.trai.ch/autoslice/internal/app"
	"go.trai.ch/autoslice/internal/core/domain"
	"go.trai.ch/autoslice/internal/core/ports"
	"go.trai.ch/autoslice/internal/core/ports/mocks"
	"go.trai.ch/autoslice/internal/engine/slicer"
)

type fixture struct {
	cache     *mocks.MockPackageCache
	lister    *mocks.MockArchiveLister
	ws        *mocks.MockWorkspace
	curated   *mocks.MockCuratedIndex
	confirmer *mocks.MockConfirmer
	logger    *mocks.MockLogger
	out       bytes.Buffer
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		cache:     mocks.NewMockPackageCache(ctrl),
		lister:    mocks.NewMockArchiveLister(ctrl),
		ws:        mocks.NewMockWorkspace(ctrl),
		curated:   mocks.NewMockCuratedIndex(ctrl),
		confirmer: mocks.NewMockConfirmer(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	s := slicer.New(f.cache, f.lister, f.ws, f.logger)
	f.app = app.New(s, f.curated, sdf.NewRenderer(), f.confirmer, f.ws, f.logger)
	f.app.SetOutput(&f.out)
	return f
}

func (f *fixture) expectClose() {
	f.ws.EXPECT().Close().Return(nil).Times(1)
}

func (f *fixture) expectPackage(pkg string, lines []string) {
	dir := "/scratch/" + pkg
	archive := dir + "/" + pkg + "_1.0_amd64.deb"
	f.ws.EXPECT().PackageDir(pkg).Return(dir, nil).Times(1)
	f.cache.EXPECT().CandidateBinary(gomock.Any(), pkg, dir).Return(archive, nil).Times(1)
	f.lister.EXPECT().List(gomock.Any(), archive).Return(lines, nil).Times(1)
}

func line(path string) string {
	return "-rw-r--r-- root/root 1234 2024-03-31 08:10 " + path
}

func TestRun_ConflictingModes(t *testing.T) {
	f := newFixture(t)
	f.expectClose()

	err := f.app.Run(context.Background(), app.RunOptions{
		Package:     "foo",
		Depends:     true,
		FullDepends: true,
	})
	assert.True(t, errors.Is(err, domain.ErrConflictingModes))
}

func TestRun_DependsPrintsList(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "foo").Return([]string{"libc6", "zlib1g"}, nil)

	err := f.app.Run(context.Background(), app.RunOptions{Package: "foo", Depends: true})
	require.NoError(t, err)
	assert.Equal(t, "libc6 zlib1g\n", f.out.String())
}

func TestRun_FullDependsPrintsClosure(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "foo").Return([]string{"bar"}, nil)
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "bar").Return([]string{"baz"}, nil)
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "baz").Return(nil, nil)

	err := f.app.Run(context.Background(), app.RunOptions{Package: "foo", FullDepends: true})
	require.NoError(t, err)
	assert.Equal(t, "bar baz\n", f.out.String())
}

func TestRun_SliceSinglePackage(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	f.curated.EXPECT().Packages(gomock.Any(), "ubuntu-24.04").Return(map[string]bool{}, nil)
	f.expectPackage("foo", []string{
		line("./usr/bin/foo"),
		line("./usr/share/doc/foo/copyright"),
	})
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "foo").Return(nil, nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Package: "foo",
		Slice:   true,
		Release: "ubuntu-24.04",
	})
	require.NoError(t, err)

	out := f.out.String()
	assert.Contains(t, out, "THE SDF-LIKE SLICE DEFINITION FOR foo:\n")
	assert.Contains(t, out, "=====BEGIN=====\n")
	assert.Contains(t, out, "package: foo\n")
	assert.Contains(t, out, "======END======\n")
}

func TestRun_SliceSkipsCurated(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	f.curated.EXPECT().Packages(gomock.Any(), "ubuntu-24.04").
		Return(map[string]bool{"foo": true}, nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Package: "foo",
		Slice:   true,
		Release: "ubuntu-24.04",
	})
	require.NoError(t, err)
	assert.Empty(t, f.out.String(), "curated packages produce no document")
}

func TestRun_AllBypassesCuratedIndex(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	f.expectPackage("foo", []string{line("./usr/bin/foo")})
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "foo").Return(nil, nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Package: "foo",
		Slice:   true,
		All:     true,
		Release: "ubuntu-24.04",
	})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "package: foo\n")
}

func TestRun_CuratedIndexErrorAborts(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	indexErr := errors.New("clone failed")
	f.curated.EXPECT().Packages(gomock.Any(), "ubuntu-24.04").Return(nil, indexErr)

	err := f.app.Run(context.Background(), app.RunOptions{
		Package: "foo",
		Slice:   true,
		Release: "ubuntu-24.04",
	})
	assert.True(t, errors.Is(err, indexErr))
}

func TestRun_QuitStopsQueue(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "foo").Return([]string{"d1"}, nil).AnyTimes()
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "d1").Return(nil, nil).AnyTimes()
	f.expectPackage("d1", []string{line("./usr/lib/libd1.so.1")})
	f.confirmer.EXPECT().Continue("foo").Return(ports.DecisionQuit, nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Package: "foo",
		Depends: true,
		Slice:   true,
		All:     true,
	})
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "package: d1\n")
	assert.NotContains(t, f.out.String(), "package: foo\n", "quit stops before the next package")
}

func TestRun_InvalidInputStopsQueue(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "foo").Return([]string{"d1"}, nil).AnyTimes()
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "d1").Return(nil, nil).AnyTimes()
	f.expectPackage("d1", []string{line("./usr/lib/libd1.so.1")})
	f.confirmer.EXPECT().Continue("foo").Return(ports.DecisionInvalid, nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Package: "foo",
		Depends: true,
		Slice:   true,
		All:     true,
	})
	require.NoError(t, err)
	assert.NotContains(t, f.out.String(), "package: foo\n")
}

func TestRun_PackageFailureIsIsolated(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	f.logger.EXPECT().Error(gomock.Any()).Times(1)
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "foo").Return([]string{"d1"}, nil).AnyTimes()
	f.cache.EXPECT().DirectDependencies(gomock.Any(), "d1").Return(nil, nil).AnyTimes()

	f.ws.EXPECT().PackageDir("d1").Return("/scratch/d1", nil)
	f.cache.EXPECT().CandidateBinary(gomock.Any(), "d1", "/scratch/d1").
		Return("", domain.ErrExternalTool)
	f.expectPackage("foo", []string{line("./usr/bin/foo")})
	f.confirmer.EXPECT().Continue("foo").Return(ports.DecisionContinue, nil)

	err := f.app.Run(context.Background(), app.RunOptions{
		Package: "foo",
		Depends: true,
		Slice:   true,
		All:     true,
	})
	assert.True(t, errors.Is(err, domain.ErrRunHadFailures), "got %+v", err)
	assert.Contains(t, f.out.String(), "package: foo\n", "later packages still run")
}

func TestRun_UnknownPackageIsSkippedNotFailed(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	f.ws.EXPECT().PackageDir("ghost").Return("/scratch/ghost", nil)
	f.cache.EXPECT().CandidateBinary(gomock.Any(), "ghost", "/scratch/ghost").
		Return("", domain.ErrPackageNotFound)

	err := f.app.Run(context.Background(), app.RunOptions{
		Package: "ghost",
		Slice:   true,
		All:     true,
	})
	require.NoError(t, err, "a lookup miss must not make the run exit non-zero")
	assert.Empty(t, f.out.String())
}

func TestRun_CancelledContext(t *testing.T) {
	f := newFixture(t)
	f.expectClose()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.app.Run(ctx, app.RunOptions{Package: "foo", Slice: true, All: true})
	assert.True(t, errors.Is(err, context.Canceled))
}
