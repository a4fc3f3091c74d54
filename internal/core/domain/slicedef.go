package domain

// ContentEntry is one file of a slice: the installed path and, for
// symlinks, the link target.
type ContentEntry struct {
	Path   string
	Target string
}

// Slice is one named subset of a package's files plus the slices it
// requires to function.
type Slice struct {
	Category  Category
	Essential []string
	Contents  []ContentEntry
}

// SliceDefinition is the per-package document proposed to the maintainer.
// Slices appear in canonical category order; empty categories are omitted.
type SliceDefinition struct {
	Package string

	// Essential is the package-level essential list, currently the
	// copyright slice when that category is non-empty.
	Essential []string

	Slices []Slice
}

// BuildDefinition assembles a classified manifest and the resolved
// essential lists into a SliceDefinition. The essentials map carries one
// entry per category present in the interdependency policy; entries for
// empty categories are computed by the resolver but discarded here.
func BuildDefinition(pkg string, manifest ClassifiedManifest, policy Policy, essentials map[Category][]string) *SliceDefinition {
	def := &SliceDefinition{Package: pkg}

	for _, cat := range policy.Package {
		if manifest.NonEmpty(cat) {
			def.Essential = append(def.Essential, SliceName(pkg, cat))
		}
	}

	for _, cat := range Categories() {
		records := manifest[cat]
		if len(records) == 0 {
			continue
		}
		s := Slice{Category: cat}
		if ess, ok := essentials[cat]; ok {
			s.Essential = ess
		}
		s.Contents = make([]ContentEntry, 0, len(records))
		for _, rec := range records {
			s.Contents = append(s.Contents, ContentEntry{
				Path:   rec.installedPath(),
				Target: rec.Target,
			})
		}
		def.Slices = append(def.Slices, s)
	}

	return def
}
