package api

import "github.com/therealcoolnerd/omni-packages/types"

type PackageIndex struct {
	Version       string          `json:"version"`
	LastUpdated   string          `json:"last_updated"`
	TotalPackages int             `json:"total_packages"`
	Packages      []types.Package `json:"packages"`
}

// buildPackageIndex emits every loaded record verbatim, in load order.
func buildPackageIndex(pkgs []types.Package, lastUpdated string) PackageIndex {
	if pkgs == nil {
		pkgs = []types.Package{}
	}
	return PackageIndex{
		Version:       apiVersion,
		LastUpdated:   lastUpdated,
		TotalPackages: len(pkgs),
		Packages:      pkgs,
	}
}
