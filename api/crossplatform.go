package api

import (
	"log"

	"github.com/therealcoolnerd/omni-packages/types"
)

type CrossPlatformIndex struct {
	Version     string                         `json:"version"`
	LastUpdated string                         `json:"last_updated"`
	Mappings    map[string]types.CrossPlatform `json:"mappings"`

	// ReverseMappings indexes platform -> manager -> manager-specific
	// package name -> owning package name.
	ReverseMappings map[string]map[string]map[string]string `json:"reverse_mappings"`
}

// buildCrossPlatformIndex emits each package's cross-platform structure
// verbatim plus the reverse index. On a manager-specific name claimed by
// two packages the later package wins; the overwrite is logged, not an
// error.
func buildCrossPlatformIndex(pkgs []types.Package, lastUpdated string) CrossPlatformIndex {
	mappings := make(map[string]types.CrossPlatform)
	reverse := map[string]map[string]map[string]string{
		"linux":   {},
		"macos":   {},
		"windows": {},
	}

	for _, pkg := range pkgs {
		if pkg.CrossPlatform == nil {
			continue
		}
		mappings[pkg.Name] = pkg.CrossPlatform

		for platform, managers := range pkg.CrossPlatform {
			if _, ok := reverse[platform]; !ok {
				reverse[platform] = map[string]map[string]string{}
			}
			for manager, names := range managers {
				if _, ok := reverse[platform][manager]; !ok {
					reverse[platform][manager] = map[string]string{}
				}
				for _, name := range names {
					if owner, ok := reverse[platform][manager][name]; ok && owner != pkg.Name {
						log.Printf("%s/%s name %q remapped from %s to %s", platform, manager, name, owner, pkg.Name)
					}
					reverse[platform][manager][name] = pkg.Name
				}
			}
		}
	}

	return CrossPlatformIndex{
		Version:         apiVersion,
		LastUpdated:     lastUpdated,
		Mappings:        mappings,
		ReverseMappings: reverse,
	}
}
