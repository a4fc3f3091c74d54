// Package slicer implements the per-package slicing pipeline: fetch,
// list, tokenize, classify, resolve essentials, assemble the definition.
package slicer

import (
	"context"

	"go.trai.ch/autoslice/internal/core/domain"
	"go.trai.ch/autoslice/internal/core/ports"
	"go.trai.ch/zerr"
)

// Slicer orchestrates manifest classification and essential resolution
// for one run. All derived artifacts are computed fresh per invocation;
// only the dependency and manifest caches persist across packages within
// the run.
type Slicer struct {
	cache      ports.PackageCache
	lister     ports.ArchiveLister
	ws         ports.Workspace
	logger     ports.Logger
	classifier *domain.Classifier
	grapher    *Grapher
	manifests  *manifestCache
}

// New creates a new Slicer.
func New(cache ports.PackageCache, lister ports.ArchiveLister, ws ports.Workspace, logger ports.Logger) *Slicer {
	return &Slicer{
		cache:      cache,
		lister:     lister,
		ws:         ws,
		logger:     logger,
		classifier: domain.NewClassifier(),
		grapher:    NewGrapher(cache),
		manifests:  newManifestCache(),
	}
}

// Grapher exposes the dependency grapher for dependency-listing modes.
func (s *Slicer) Grapher() *Grapher {
	return s.grapher
}

// Propose generates the slice definition proposal for one package under
// the given interdependency policy.
func (s *Slicer) Propose(ctx context.Context, pkg string, policy domain.Policy) (*domain.SliceDefinition, error) {
	manifest, err := s.ClassifyPackage(ctx, pkg)
	if err != nil {
		return nil, zerr.With(err, "package", pkg)
	}

	essentials, err := s.resolveEssentials(ctx, pkg, manifest, policy)
	if err != nil {
		return nil, zerr.With(err, "package", pkg)
	}

	return domain.BuildDefinition(pkg, manifest, policy, essentials), nil
}

// ClassifyPackage fetches the package's candidate binary, lists its
// manifest and classifies it. Results are memoized for the run.
func (s *Slicer) ClassifyPackage(ctx context.Context, pkg string) (domain.ClassifiedManifest, error) {
	return s.manifests.get(pkg, func() (domain.ClassifiedManifest, error) {
		return s.classify(ctx, pkg)
	})
}

func (s *Slicer) classify(ctx context.Context, pkg string) (domain.ClassifiedManifest, error) {
	dir, err := s.ws.PackageDir(pkg)
	if err != nil {
		return nil, err
	}

	archive, err := s.cache.CandidateBinary(ctx, pkg, dir)
	if err != nil {
		return nil, err
	}

	lines, err := s.lister.List(ctx, archive)
	if err != nil {
		return nil, err
	}

	records, err := domain.ParseListing(lines)
	if err != nil {
		return nil, err
	}

	return s.classifier.Classify(records), nil
}
