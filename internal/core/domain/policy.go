package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DescriptorKind distinguishes the two forms a slice interdependency can
// take. The set is closed so policy handling is exhaustively checkable.
type DescriptorKind int

const (
	// SamePackage marks a descriptor referencing another slice of the
	// same package ("bins needs this package's libs").
	SamePackage DescriptorKind = iota

	// DependencyCategory marks a descriptor referencing a category of
	// every direct dependency that produces it non-empty ("libs needs
	// each dependency's libs").
	DependencyCategory
)

// Descriptor is one interdependency of a slice.
type Descriptor struct {
	Kind     DescriptorKind
	Category Category
}

// dependsPrefix is the textual marker of a cross-package descriptor in
// policy files: "depends_libs" targets the libs category of dependencies.
const dependsPrefix = "depends_"

// ParseDescriptor parses the textual descriptor form used in policy
// files: a bare category name for same-package descriptors, or a
// "depends_"-prefixed category name for cross-package descriptors.
func ParseDescriptor(s string) (Descriptor, error) {
	kind := SamePackage
	name := s
	if rest, ok := strings.CutPrefix(s, dependsPrefix); ok {
		kind = DependencyCategory
		name = rest
	}
	cat := Category(name)
	if !IsKnownCategory(cat) {
		return Descriptor{}, zerr.With(ErrUnknownCategory, "descriptor", s)
	}
	return Descriptor{Kind: kind, Category: cat}, nil
}

// String renders the descriptor in its policy-file form.
func (d Descriptor) String() string {
	if d.Kind == DependencyCategory {
		return dependsPrefix + string(d.Category)
	}
	return string(d.Category)
}

// Policy is the interdependency policy: which other slices each generated
// slice must mark essential. It is data, not code, and can be replaced
// wholesale from a policy file.
type Policy struct {
	// Package lists categories promoted to the package-level essential
	// list when their slice is non-empty.
	Package []Category

	// Slices maps a category to its ordered interdependency descriptors.
	// Categories absent from the map get no essential list at all.
	Slices map[Category][]Descriptor
}

// DefaultPolicy returns the built-in interdependency policy: every
// package is essential on its copyright slice, libs slices require each
// dependency's libs, and bins slices additionally require the package's
// own libs and config.
func DefaultPolicy() Policy {
	return Policy{
		Package: []Category{CategoryCopyright},
		Slices: map[Category][]Descriptor{
			CategoryLibs: {
				{Kind: DependencyCategory, Category: CategoryLibs},
			},
			CategoryBins: {
				{Kind: SamePackage, Category: CategoryLibs},
				{Kind: SamePackage, Category: CategoryConfig},
				{Kind: DependencyCategory, Category: CategoryLibs},
			},
		},
	}
}

// SliceName formats the identifier of one slice of one package.
func SliceName(pkg string, c Category) string {
	return pkg + "_" + string(c)
}
