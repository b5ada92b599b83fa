package api

import (
	"github.com/samber/lo"

	"github.com/therealcoolnerd/omni-packages/types"
)

const fallbackCategory = "other"

type CategoryEntry struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

type CategoriesIndex struct {
	Version         string                     `json:"version"`
	LastUpdated     string                     `json:"last_updated"`
	Categories      map[string][]CategoryEntry `json:"categories"`
	TotalCategories int                        `json:"total_categories"`
	TotalPackages   int                        `json:"total_packages"`
}

// buildCategoriesIndex groups every record by category, keeping package
// order within each group.
func buildCategoriesIndex(pkgs []types.Package, lastUpdated string) CategoriesIndex {
	grouped := lo.GroupBy(pkgs, func(pkg types.Package) string {
		if pkg.Category == "" {
			return fallbackCategory
		}
		return pkg.Category
	})
	categories := lo.MapValues(grouped, func(members []types.Package, _ string) []CategoryEntry {
		return lo.Map(members, func(pkg types.Package, _ int) CategoryEntry {
			return CategoryEntry{
				Name:        pkg.Name,
				DisplayName: pkg.DisplayName,
				Description: pkg.Description,
			}
		})
	})

	return CategoriesIndex{
		Version:         apiVersion,
		LastUpdated:     lastUpdated,
		Categories:      categories,
		TotalCategories: len(categories),
		TotalPackages:   len(pkgs),
	}
}
