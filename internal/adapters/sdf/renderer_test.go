package sdf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/autoslice/internal/adapters/sdf"
	"go.trai.ch/autoslice/internal/core/domain"
)

func render(t *testing.T, def *domain.SliceDefinition) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, sdf.NewRenderer().Render(&buf, def))
	return buf.String()
}

func TestRender(t *testing.T) {
	def := &domain.SliceDefinition{
		Package:   "foo",
		Essential: []string{"foo_copyright"},
		Slices: []domain.Slice{
			{
				Category: domain.CategoryCopyright,
				Contents: []domain.ContentEntry{{Path: "/usr/share/doc/foo/copyright"}},
			},
			{
				Category: domain.CategoryConfig,
				Contents: []domain.ContentEntry{{Path: "/etc/foo.conf"}},
			},
			{
				Category:  domain.CategoryBins,
				Essential: []string{"foo_config"},
				Contents: []domain.ContentEntry{
					{Path: "/usr/bin/foo"},
					{Path: "/usr/bin/foo-compat", Target: "foo"},
				},
			},
		},
	}

	want := `package: foo

essential:
  - foo_copyright

slices:
  copyright:
    contents:
      /usr/share/doc/foo/copyright:
  config:
    contents:
      /etc/foo.conf:
  bins:
    essential:
      - foo_config
    contents:
      /usr/bin/foo:
      /usr/bin/foo-compat: foo
`

	assert.Equal(t, want, render(t, def))
}

func TestRender_NoPackageEssential(t *testing.T) {
	def := &domain.SliceDefinition{
		Package: "foo",
		Slices: []domain.Slice{
			{
				Category: domain.CategoryBins,
				Contents: []domain.ContentEntry{{Path: "/usr/bin/foo"}},
			},
		},
	}

	want := `package: foo

slices:
  bins:
    contents:
      /usr/bin/foo:
`

	assert.Equal(t, want, render(t, def))
}

func TestRender_EmptyEssentialListKept(t *testing.T) {
	// An empty but present list means the category is covered by the
	// policy and resolved to nothing, which is different from absent.
	def := &domain.SliceDefinition{
		Package: "foo",
		Slices: []domain.Slice{
			{
				Category:  domain.CategoryLibs,
				Essential: []string{},
				Contents:  []domain.ContentEntry{{Path: "/usr/lib/libfoo.so.1"}},
			},
		},
	}

	want := `package: foo

slices:
  libs:
    essential: []
    contents:
      /usr/lib/libfoo.so.1:
`

	assert.Equal(t, want, render(t, def))
}
