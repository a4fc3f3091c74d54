package domain

import "strings"

// Category names one semantic slice of a package's manifest.
type Category string

// The fixed category vocabulary, in canonical evaluation and display order.
const (
	CategoryCopyright Category = "copyright"
	CategoryConfig    Category = "config"
	CategoryData      Category = "data"
	CategoryLibs      Category = "libs"
	CategoryBins      Category = "bins"
	CategoryRest      Category = "rest"
)

// Categories returns the fixed vocabulary in canonical order.
func Categories() []Category {
	return []Category{
		CategoryCopyright,
		CategoryConfig,
		CategoryData,
		CategoryLibs,
		CategoryBins,
		CategoryRest,
	}
}

// IsKnownCategory reports whether c belongs to the fixed vocabulary.
func IsKnownCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryRule assigns paths to a category by directory containment or
// suffix match. Either list may be empty. Rules are evaluated in order;
// the first matching rule wins.
type CategoryRule struct {
	Category Category
	Dirs     []string
	Suffixes []string
}

// Matches reports whether the rule claims the given path. Directory
// matching is deliberately loose substring containment, preserved from
// the behavior this tool proposes drafts for: "/opt/usr/bin/x" matches a
// "/usr/bin" rule. Suffix matching is an exact string suffix. A rule with
// both lists matches on either.
func (r CategoryRule) Matches(p string) bool {
	for _, dir := range r.Dirs {
		if dir != "" && strings.Contains(p, dir) {
			return true
		}
	}
	for _, suffix := range r.Suffixes {
		if suffix != "" && strings.HasSuffix(p, suffix) {
			return true
		}
	}
	return false
}

// Directory and suffix tables mirrored from the curated slicing
// conventions for Debian-style filesystem layouts.
var (
	docDirs  = []string{"/usr/share/doc", "/usr/share/man"}
	lintDirs = []string{"/usr/share/lintian"}

	confDirs     = []string{"/etc"}
	confSuffixes = []string{
		".conf", ".cfg", ".config", ".ini", ".json", ".xml", ".yaml", ".yml", ".cnf",
	}

	dataDirs = []string{
		"/usr/share",
		"/usr/local/share",
		"/var/lib",
		"/var/local/lib",
		"/var/local/share",
		"/var/share",
	}

	libsDirs = []string{
		"/lib",
		"/lib32",
		"/lib64",
		"/usr/lib",
		"/usr/lib32",
		"/usr/lib64",
		"/usr/local/lib",
		"/usr/local/lib32",
		"/usr/local/lib64",
	}

	binDirs = []string{
		"/bin",
		"/sbin",
		"/usr/bin",
		"/usr/sbin",
		"/usr/local/bin",
		"/usr/local/sbin",
	}
)

// DefaultFilterDirs returns the documentation and lint directories whose
// contents are dropped before classification, copyright files excepted.
func DefaultFilterDirs() []string {
	dirs := make([]string, 0, len(docDirs)+len(lintDirs))
	dirs = append(dirs, docDirs...)
	dirs = append(dirs, lintDirs...)
	return dirs
}

// DefaultRules returns the ordered category rules evaluated after the
// copyright stage: config, data, libs, bins. Paths claimed by no rule
// fall through to the rest category.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{Category: CategoryConfig, Dirs: confDirs, Suffixes: confSuffixes},
		{Category: CategoryData, Dirs: dataDirs},
		{Category: CategoryLibs, Dirs: libsDirs},
		{Category: CategoryBins, Dirs: binDirs},
	}
}
