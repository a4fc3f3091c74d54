package slicer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/autoslice/internal/core/ports/mocks"
	"go.trai.ch/autoslice/internal/engine/slicer"
)

func TestGrapher_Direct_Memoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockPackageCache(ctrl)
	cache.EXPECT().DirectDependencies(gomock.Any(), "foo").Return([]string{"bar"}, nil).Times(1)

	g := slicer.NewGrapher(cache)
	ctx := context.Background()

	for range 3 {
		deps, err := g.Direct(ctx, "foo")
		require.NoError(t, err)
		assert.Equal(t, []string{"bar"}, deps)
	}
}

func TestGrapher_Transitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockPackageCache(ctrl)
	cache.EXPECT().DirectDependencies(gomock.Any(), "a").Return([]string{"b"}, nil)
	cache.EXPECT().DirectDependencies(gomock.Any(), "b").Return([]string{"c", "d"}, nil)
	cache.EXPECT().DirectDependencies(gomock.Any(), "c").Return(nil, nil)
	cache.EXPECT().DirectDependencies(gomock.Any(), "d").Return(nil, nil)

	g := slicer.NewGrapher(cache)

	deps, err := g.Transitive(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, deps, "closure is sorted and excludes the seed")
}

func TestGrapher_Transitive_Cycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockPackageCache(ctrl)
	cache.EXPECT().DirectDependencies(gomock.Any(), "a").Return([]string{"b"}, nil).Times(1)
	cache.EXPECT().DirectDependencies(gomock.Any(), "b").Return([]string{"a"}, nil).Times(1)

	g := slicer.NewGrapher(cache)

	deps, err := g.Transitive(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, deps, "a cycle back to the seed includes it")
}

func TestGrapher_Transitive_SharedDependency(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockPackageCache(ctrl)
	cache.EXPECT().DirectDependencies(gomock.Any(), "a").Return([]string{"b", "c"}, nil).Times(1)
	cache.EXPECT().DirectDependencies(gomock.Any(), "b").Return([]string{"d"}, nil).Times(1)
	cache.EXPECT().DirectDependencies(gomock.Any(), "c").Return([]string{"d"}, nil).Times(1)
	cache.EXPECT().DirectDependencies(gomock.Any(), "d").Return(nil, nil).Times(1)

	g := slicer.NewGrapher(cache)

	deps, err := g.Transitive(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, deps, "shared dependencies appear once")
}
