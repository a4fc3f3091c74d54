package domain

import (
	"slices"
	"strings"
)

// ClassifiedManifest maps each category of the fixed vocabulary to its
// sorted path records. All six categories are always present; empty
// categories hold nil slices. Categories are mutually exclusive and
// their union equals the pre-filtered input exactly.
type ClassifiedManifest map[Category][]PathRecord

// NonEmpty reports whether the category holds at least one record.
func (m ClassifiedManifest) NonEmpty(c Category) bool {
	return len(m[c]) > 0
}

// Total returns the number of records across all categories.
func (m ClassifiedManifest) Total() int {
	n := 0
	for _, recs := range m {
		n += len(recs)
	}
	return n
}

// Classifier partitions a normalized manifest into categories using a
// directory pre-filter and an ordered rule list.
type Classifier struct {
	// FilterDirs are directories whose contents are dropped before
	// categorization unless the final path component is the copyright
	// exception.
	FilterDirs []string

	// Rules are evaluated in order after the copyright stage. Each rule
	// consumes its matches from the remaining pool.
	Rules []CategoryRule
}

// copyrightBasename is the one filename retained under filtered
// documentation directories and claimed by the first classification stage.
const copyrightBasename = "copyright"

// NewClassifier returns a Classifier with the default filter directories
// and category rules.
func NewClassifier() *Classifier {
	return &Classifier{
		FilterDirs: DefaultFilterDirs(),
		Rules:      DefaultRules(),
	}
}

// Classify pre-filters and partitions the given records. Every surviving
// record lands in exactly one category; unmatched records land in rest.
// An empty input yields all categories present but empty.
func (c *Classifier) Classify(records []PathRecord) ClassifiedManifest {
	pool := c.prefilter(records)

	manifest := make(ClassifiedManifest, len(Categories()))
	for _, cat := range Categories() {
		manifest[cat] = nil
	}

	manifest[CategoryCopyright], pool = takeCopyright(pool)
	for _, rule := range c.Rules {
		manifest[rule.Category], pool = takeMatching(pool, rule)
	}
	manifest[CategoryRest] = pool

	for cat := range manifest {
		sortRecords(manifest[cat])
	}
	return manifest
}

// prefilter drops directory entries and anything under the filter
// directories other than copyright files.
func (c *Classifier) prefilter(records []PathRecord) []PathRecord {
	kept := make([]PathRecord, 0, len(records))
	for _, rec := range records {
		if rec.IsDir() {
			continue
		}
		if c.isFiltered(rec) {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

func (c *Classifier) isFiltered(rec PathRecord) bool {
	if rec.Basename() == copyrightBasename {
		return false
	}
	for _, dir := range c.FilterDirs {
		if strings.Contains(rec.Path, dir) {
			return true
		}
	}
	return false
}

// takeCopyright implements the first classification stage: any record
// whose final component is exactly "copyright".
func takeCopyright(pool []PathRecord) (matched, rest []PathRecord) {
	return partition(pool, func(rec PathRecord) bool {
		return rec.Basename() == copyrightBasename
	})
}

func takeMatching(pool []PathRecord, rule CategoryRule) (matched, rest []PathRecord) {
	return partition(pool, func(rec PathRecord) bool {
		return rule.Matches(rec.Path)
	})
}

func partition(pool []PathRecord, match func(PathRecord) bool) (in, out []PathRecord) {
	for _, rec := range pool {
		if match(rec) {
			in = append(in, rec)
		} else {
			out = append(out, rec)
		}
	}
	return in, out
}

func sortRecords(recs []PathRecord) {
	slices.SortFunc(recs, func(a, b PathRecord) int {
		return strings.Compare(a.Path, b.Path)
	})
}
