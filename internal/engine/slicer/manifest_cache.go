package slicer

import (
	"sync"

	"go.trai.ch/autoslice/internal/core/domain"
)

// manifestCache memoizes classified manifests per package name with
// per-key once semantics: each package is fetched and classified at most
// once per run, even when dependency classification runs in parallel.
type manifestCache struct {
	mu      sync.Mutex
	entries map[string]*manifestEntry
}

type manifestEntry struct {
	once     sync.Once
	manifest domain.ClassifiedManifest
	err      error
}

func newManifestCache() *manifestCache {
	return &manifestCache{entries: make(map[string]*manifestEntry)}
}

func (c *manifestCache) get(pkg string, compute func() (domain.ClassifiedManifest, error)) (domain.ClassifiedManifest, error) {
	c.mu.Lock()
	entry, ok := c.entries[pkg]
	if !ok {
		entry = &manifestEntry{}
		c.entries[pkg] = entry
	}
	c.mu.Unlock()

	entry.once.Do(func() {
		entry.manifest, entry.err = compute()
	})
	return entry.manifest, entry.err
}
