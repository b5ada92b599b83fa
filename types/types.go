package types

import "encoding/json"

// Package is one package metadata document. Optional fields keep
// `omitempty` so records round-trip into the generated API files.
type Package struct {
	Name            string        `json:"name"`
	DisplayName     string        `json:"display_name"`
	Category        string        `json:"category,omitempty"`
	Description     string        `json:"description"`
	Homepage        string        `json:"homepage,omitempty"`
	License         string        `json:"license,omitempty"`
	CrossPlatform   CrossPlatform `json:"cross_platform,omitempty"`
	Popularity      *Popularity   `json:"popularity,omitempty"`
	Security        *Security     `json:"security,omitempty"`
	SimilarPackages []string      `json:"similar_packages,omitempty"`
	Alternatives    []Alternative `json:"alternatives,omitempty"`
	Tags            []string      `json:"tags,omitempty"`
	UpdatedAt       string        `json:"updated_at,omitempty"`
}

// CrossPlatform maps a platform key (linux, macos, windows) to package
// managers and their manager-specific package names.
type CrossPlatform map[string]map[string][]string

// ManagerCount returns the total number of (platform, manager) entries.
func (cp CrossPlatform) ManagerCount() int {
	var n int
	for _, managers := range cp {
		n += len(managers)
	}
	return n
}

type Popularity struct {
	Rank              *int `json:"rank,omitempty"`
	DownloadsPerMonth int  `json:"downloads_per_month,omitempty"`
	GithubStars       int  `json:"github_stars,omitempty"`
	SearchFrequency   int  `json:"search_frequency,omitempty"`
}

// Security carries the per-package audit data. Vulnerability entries have
// no fixed shape, so they are kept as raw JSON and re-emitted verbatim.
type Security struct {
	Score            *float64          `json:"score,omitempty"`
	LastAudit        string            `json:"last_audit,omitempty"`
	Vulnerabilities  []json.RawMessage `json:"vulnerabilities,omitempty"`
	CveCount         int               `json:"cve_count,omitempty"`
	SecurityFeatures []string          `json:"security_features,omitempty"`
}

type Alternative struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
