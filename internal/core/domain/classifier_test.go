package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/autoslice/internal/core/domain"
)

func record(path string) domain.PathRecord {
	return domain.PathRecord{TypeFlags: "-rw-r--r--", Path: path}
}

func dirRecord(path string) domain.PathRecord {
	return domain.PathRecord{TypeFlags: "drwxr-xr-x", Path: path}
}

func classify(t *testing.T, records ...domain.PathRecord) domain.ClassifiedManifest {
	t.Helper()
	return domain.NewClassifier().Classify(records)
}

func paths(records []domain.PathRecord) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Path)
	}
	return out
}

func TestClassify_EndToEndExample(t *testing.T) {
	manifest := classify(t,
		record("/etc/foo.conf"),
		record("/usr/bin/foo"),
		record("/usr/share/doc/foo/copyright"),
		dirRecord("/usr/lib/foo/"),
	)

	assert.Equal(t, []string{"/usr/share/doc/foo/copyright"}, paths(manifest[domain.CategoryCopyright]))
	assert.Equal(t, []string{"/etc/foo.conf"}, paths(manifest[domain.CategoryConfig]))
	assert.Equal(t, []string{"/usr/bin/foo"}, paths(manifest[domain.CategoryBins]))
	assert.Empty(t, manifest[domain.CategoryLibs], "directory-only paths are excluded")
	assert.Empty(t, manifest[domain.CategoryData])
	assert.Empty(t, manifest[domain.CategoryRest])
}

func TestClassify_PartitionCompleteAndExclusive(t *testing.T) {
	records := []domain.PathRecord{
		record("/etc/foo/foo.conf"),
		record("/usr/share/foo/table.dat"),
		record("/usr/lib/x86_64-linux-gnu/libfoo.so.1"),
		record("/usr/sbin/food"),
		record("/opt/foo/plugin"),
		record("/usr/share/doc/foo/copyright"),
	}

	manifest := classify(t, records...)

	seen := make(map[string]int)
	for _, cat := range domain.Categories() {
		for _, rec := range manifest[cat] {
			seen[rec.Path]++
		}
	}

	require.Equal(t, len(records), manifest.Total(), "no path may be dropped")
	for _, rec := range records {
		assert.Equal(t, 1, seen[rec.Path], "path %s must land in exactly one category", rec.Path)
	}
}

func TestClassify_PriorityIsAuthoritative(t *testing.T) {
	// Matches both the config rule (/etc) and the data rule would not
	// even be consulted: stage order decides.
	manifest := classify(t, record("/etc/foo/data"))

	assert.Equal(t, []string{"/etc/foo/data"}, paths(manifest[domain.CategoryConfig]))
	assert.Empty(t, manifest[domain.CategoryData])
}

func TestClassify_ConfigSuffixOutsideEtc(t *testing.T) {
	manifest := classify(t, record("/opt/foo/settings.json"))
	assert.Equal(t, []string{"/opt/foo/settings.json"}, paths(manifest[domain.CategoryConfig]))
}

func TestClassify_CopyrightException(t *testing.T) {
	manifest := classify(t,
		record("/usr/share/doc/foo/copyright"),
		record("/usr/share/doc/foo/README"),
		record("/usr/share/man/man1/foo.1.gz"),
		record("/usr/share/lintian/overrides/foo"),
	)

	assert.Equal(t, []string{"/usr/share/doc/foo/copyright"}, paths(manifest[domain.CategoryCopyright]))
	assert.Zero(t, manifest.Total()-1, "other documentation paths are dropped entirely")
}

func TestClassify_DirectoryEntriesDropped(t *testing.T) {
	manifest := classify(t, dirRecord("/usr/bin/"), dirRecord("/etc/foo/"))
	assert.Zero(t, manifest.Total())
}

func TestClassify_LooseDirectoryContainment(t *testing.T) {
	// Substring matching is deliberate: a path merely containing a
	// configured directory string still matches.
	manifest := classify(t, record("/opt/usr/bin/x"))
	assert.Equal(t, []string{"/opt/usr/bin/x"}, paths(manifest[domain.CategoryBins]))
}

func TestClassify_UnmatchedGoesToRest(t *testing.T) {
	manifest := classify(t, record("/srv/foo/payload"))
	assert.Equal(t, []string{"/srv/foo/payload"}, paths(manifest[domain.CategoryRest]))
}

func TestClassify_EmptyManifest(t *testing.T) {
	manifest := classify(t)

	require.Len(t, manifest, len(domain.Categories()), "all categories present")
	for _, cat := range domain.Categories() {
		assert.Empty(t, manifest[cat])
	}
}

func TestClassify_OutputSorted(t *testing.T) {
	manifest := classify(t,
		record("/usr/bin/zeta"),
		record("/usr/bin/alpha"),
		record("/usr/bin/mid"),
	)

	assert.Equal(t, []string{"/usr/bin/alpha", "/usr/bin/mid", "/usr/bin/zeta"}, paths(manifest[domain.CategoryBins]))
}
