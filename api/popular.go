package api

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"github.com/therealcoolnerd/omni-packages/types"
)

type PopularPackage struct {
	Rank              int    `json:"rank"`
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	Category          string `json:"category"`
	DownloadsPerMonth int    `json:"downloads_per_month"`
	SearchFrequency   int    `json:"search_frequency"`
	CrossPlatform     bool   `json:"cross_platform"`
}

type PopularIndex struct {
	Version         string              `json:"version"`
	LastUpdated     string              `json:"last_updated"`
	TotalPackages   int                 `json:"total_packages"`
	PopularPackages []PopularPackage    `json:"popular_packages"`
	Categories      map[string][]string `json:"categories"`
}

// buildPopularIndex keeps only ranked packages, sorted ascending by rank.
// The sort is stable so equal ranks preserve load order.
func buildPopularIndex(pkgs []types.Package, lastUpdated string) PopularIndex {
	ranked := lo.Filter(pkgs, func(pkg types.Package, _ int) bool {
		return pkg.Popularity != nil && pkg.Popularity.Rank != nil
	})
	slices.SortStableFunc(ranked, func(a, b types.Package) int {
		return *a.Popularity.Rank - *b.Popularity.Rank
	})

	popular := make([]PopularPackage, 0, len(ranked))
	categories := make(map[string][]string)
	for _, pkg := range ranked {
		popular = append(popular, PopularPackage{
			Rank:              *pkg.Popularity.Rank,
			Name:              pkg.Name,
			DisplayName:       pkg.DisplayName,
			Category:          pkg.Category,
			DownloadsPerMonth: pkg.Popularity.DownloadsPerMonth,
			SearchFrequency:   pkg.Popularity.SearchFrequency,
			CrossPlatform:     len(pkg.CrossPlatform) > 0,
		})
		categories[pkg.Category] = append(categories[pkg.Category], pkg.Name)
	}

	return PopularIndex{
		Version:         apiVersion,
		LastUpdated:     lastUpdated,
		TotalPackages:   len(popular),
		PopularPackages: popular,
		Categories:      categories,
	}
}
