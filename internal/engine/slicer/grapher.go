package slicer

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/autoslice/internal/core/ports"
)

// Grapher computes direct and transitive dependency sets through the
// package cache. Direct lookups are memoized for the run; the map is
// mutex-guarded so dependency classification can run in parallel.
type Grapher struct {
	cache ports.PackageCache

	mu     sync.Mutex
	direct map[string][]string
}

// NewGrapher creates a new Grapher.
func NewGrapher(cache ports.PackageCache) *Grapher {
	return &Grapher{
		cache:  cache,
		direct: make(map[string][]string),
	}
}

// Direct returns the declared direct dependencies of the package.
// Unknown packages yield an empty list.
func (g *Grapher) Direct(ctx context.Context, pkg string) ([]string, error) {
	g.mu.Lock()
	deps, ok := g.direct[pkg]
	g.mu.Unlock()
	if ok {
		return deps, nil
	}

	deps, err := g.cache.DirectDependencies(ctx, pkg)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.direct[pkg] = deps
	g.mu.Unlock()
	return deps, nil
}

// Transitive returns the sorted transitive dependency closure of the
// package. The expansion is an iterative worklist with a visited set, so
// cyclic graphs terminate and deep graphs cannot exhaust the call stack.
// The seed is excluded unless a cycle reaches it again.
func (g *Grapher) Transitive(ctx context.Context, pkg string) ([]string, error) {
	discovered := make(map[string]bool)
	expanded := make(map[string]bool)
	work := []string{pkg}

	for len(work) > 0 {
		next := work[len(work)-1]
		work = work[:len(work)-1]
		if expanded[next] {
			continue
		}
		expanded[next] = true

		deps, err := g.Direct(ctx, next)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if !discovered[dep] {
				discovered[dep] = true
				work = append(work, dep)
			}
		}
	}

	out := make([]string, 0, len(discovered))
	for dep := range discovered {
		out = append(out, dep)
	}
	slices.Sort(out)
	return out, nil
}
