package slicer

import (
	"context"
	"errors"
	"slices"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/autoslice/internal/core/domain"
)

// classifyParallelism bounds how many dependency manifests are fetched
// and classified at once during essential resolution.
const classifyParallelism = 4

// resolveEssentials computes the essential-slice list for every category
// the policy covers, including categories that turned out empty; the
// emitter discards those. Lists are sorted and deduplicated.
//
// Same-package descriptors emit only when the target category is
// non-empty in this package, so a definition never references one of its
// own slices that does not exist. Cross-package descriptors emit for
// every direct dependency whose classification has the target category
// non-empty; dependencies that cannot be classified are skipped with a
// warning rather than failing the owning package.
func (s *Slicer) resolveEssentials(ctx context.Context, pkg string, manifest domain.ClassifiedManifest, policy domain.Policy) (map[domain.Category][]string, error) {
	var deps []string
	if policyWantsDependencies(policy) {
		var err error
		deps, err = s.grapher.Direct(ctx, pkg)
		if err != nil {
			return nil, err
		}
		s.prefetch(ctx, deps)
	}

	essentials := make(map[domain.Category][]string, len(policy.Slices))
	for cat, descriptors := range policy.Slices {
		list := []string{}
		for _, d := range descriptors {
			switch d.Kind {
			case domain.SamePackage:
				if manifest.NonEmpty(d.Category) {
					list = append(list, domain.SliceName(pkg, d.Category))
				}
			case domain.DependencyCategory:
				list = append(list, s.dependencySlices(ctx, deps, d.Category)...)
			}
		}
		slices.Sort(list)
		essentials[cat] = slices.Compact(list)
	}
	return essentials, nil
}

// dependencySlices names the non-empty target-category slices of the
// given direct dependencies.
func (s *Slicer) dependencySlices(ctx context.Context, deps []string, cat domain.Category) []string {
	var out []string
	for _, dep := range deps {
		depManifest, err := s.ClassifyPackage(ctx, dep)
		if err != nil {
			if errors.Is(err, domain.ErrPackageNotFound) {
				s.logger.Info("dependency " + dep + " has no candidate binary, skipping")
			} else {
				s.logger.Warn("could not classify dependency " + dep + ": " + err.Error())
			}
			continue
		}
		if depManifest.NonEmpty(cat) {
			out = append(out, domain.SliceName(dep, cat))
		}
	}
	return out
}

// prefetch classifies dependency manifests with bounded parallelism so
// the sequential policy walk hits only the cache. Failures are cached
// too and reported when the walk observes them.
func (s *Slicer) prefetch(ctx context.Context, deps []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(classifyParallelism)
	for _, dep := range deps {
		g.Go(func() error {
			_, _ = s.ClassifyPackage(ctx, dep)
			return nil
		})
	}
	_ = g.Wait()
}

func policyWantsDependencies(policy domain.Policy) bool {
	for _, descriptors := range policy.Slices {
		for _, d := range descriptors {
			if d.Kind == domain.DependencyCategory {
				return true
			}
		}
	}
	return false
}
