// Package domain contains the core domain models and algorithms for
// manifest classification and slice-definition assembly.
package domain

import (
	"path"
	"strings"

	"go.trai.ch/zerr"
)

// PathRecord is one normalized entry of a package file manifest.
// It is immutable once produced by ParseListing.
type PathRecord struct {
	// TypeFlags is the raw permission column of the archive listing
	// (e.g. "drwxr-xr-x"). Its first rune carries the entry type and is
	// consulted by the classifier's directory pre-filter.
	TypeFlags string

	// Path is the installed path as listed in the archive.
	Path string

	// Target is the symlink target, empty for regular entries.
	Target string
}

// IsDir reports whether the record describes a directory entry.
func (r PathRecord) IsDir() bool {
	return strings.HasPrefix(r.TypeFlags, "d")
}

// Basename returns the final component of the record's path.
func (r PathRecord) Basename() string {
	return path.Base(r.Path)
}

// installedPath returns the path with a single leading "." stripped,
// the form used for slice contents keys ("./usr/bin/x" -> "/usr/bin/x").
func (r PathRecord) installedPath() string {
	return strings.TrimPrefix(r.Path, ".")
}

// ParseListing tokenizes the raw per-entry lines of an archive listing
// into PathRecords. Each line carries permission bits, owner/group, size,
// date and time fields followed by the path and, for symlinks, a "->"
// target. Blank lines are skipped. No filtering happens here; directory
// entries are preserved so the classifier can drop them.
func ParseListing(lines []string) ([]PathRecord, error) {
	records := make([]PathRecord, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseListingLine(line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// listingPathField is the index of the path token in a listing line:
// perms(0) owner/group(1) size(2) date(3) time(4) path(5...).
const listingPathField = 5

func parseListingLine(line string) (PathRecord, error) {
	fields := strings.Fields(line)
	if len(fields) <= listingPathField {
		return PathRecord{}, zerr.With(ErrManifestParse, "line", line)
	}

	rec := PathRecord{TypeFlags: fields[0]}

	// Everything from the path token onward belongs to the path, except a
	// trailing "-> target" pair marking a symlink. Paths containing spaces
	// are rejoined rather than truncated.
	rest := fields[listingPathField:]
	arrow := -1
	for i := 1; i < len(rest); i++ {
		if rest[i] == "->" {
			arrow = i
			break
		}
	}
	switch {
	case arrow < 0:
		rec.Path = strings.Join(rest, " ")
	case arrow == len(rest)-1:
		return PathRecord{}, zerr.With(ErrManifestParse, "line", line)
	default:
		rec.Path = strings.Join(rest[:arrow], " ")
		rec.Target = strings.Join(rest[arrow+1:], " ")
	}

	return rec, nil
}
