// Package config loads the interdependency policy from a YAML file.
package config

import (
	"os"

	"go.trai.ch/autoslice/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// policyFile mirrors the on-disk policy format:
//
//	package: [copyright]
//	slices:
//	  libs: [depends_libs]
//	  bins: [libs, config, depends_libs]
//
// Bare category names are same-package descriptors; the "depends_" prefix
// targets the category of every direct dependency.
type policyFile struct {
	Package []string            `yaml:"package"`
	Slices  map[string][]string `yaml:"slices"`
}

// LoadPolicy reads a policy file. An empty path yields the built-in
// default policy.
func LoadPolicy(path string) (domain.Policy, error) {
	if path == "" {
		return domain.DefaultPolicy(), nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return domain.Policy{}, zerr.Wrap(err, "failed to read policy file")
	}
	return parsePolicy(data)
}

func parsePolicy(data []byte) (domain.Policy, error) {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Policy{}, zerr.Wrap(err, "failed to parse policy file")
	}

	policy := domain.Policy{
		Slices: make(map[domain.Category][]domain.Descriptor, len(file.Slices)),
	}

	for _, name := range file.Package {
		cat := domain.Category(name)
		if !domain.IsKnownCategory(cat) {
			return domain.Policy{}, zerr.With(domain.ErrUnknownCategory, "category", name)
		}
		policy.Package = append(policy.Package, cat)
	}

	for name, descriptors := range file.Slices {
		cat := domain.Category(name)
		if !domain.IsKnownCategory(cat) {
			return domain.Policy{}, zerr.With(domain.ErrUnknownCategory, "category", name)
		}
		parsed := make([]domain.Descriptor, 0, len(descriptors))
		for _, text := range descriptors {
			d, err := domain.ParseDescriptor(text)
			if err != nil {
				return domain.Policy{}, err
			}
			parsed = append(parsed, d)
		}
		policy.Slices[cat] = parsed
	}

	return policy, nil
}
