package api

import (
	"encoding/json"

	"github.com/therealcoolnerd/omni-packages/types"
)

type SecurityGuidelines struct {
	MinimumScore     float64 `json:"minimum_score"`
	RecommendedScore float64 `json:"recommended_score"`
	UpdateFrequency  string  `json:"update_frequency"`
}

type SecurityIndex struct {
	Version             string                     `json:"version"`
	LastUpdated         string                     `json:"last_updated"`
	SecurityScores      map[string]*types.Security `json:"security_scores"`
	SecurityCategories  map[string][]string        `json:"security_categories"`
	VulnerabilityAlerts []json.RawMessage          `json:"vulnerability_alerts"`
	SecurityGuidelines  SecurityGuidelines         `json:"security_guidelines"`
}

// buildSecurityIndex keeps each security object verbatim, buckets packages
// by score and concatenates all non-empty vulnerability lists in package
// order.
func buildSecurityIndex(pkgs []types.Package, lastUpdated string) SecurityIndex {
	scores := make(map[string]*types.Security)
	buckets := map[string][]string{
		"excellent": {},
		"good":      {},
		"fair":      {},
		"poor":      {},
	}
	alerts := make([]json.RawMessage, 0)

	for _, pkg := range pkgs {
		if pkg.Security == nil {
			continue
		}
		scores[pkg.Name] = pkg.Security

		bucket := scoreBucket(pkg.Security.Score)
		buckets[bucket] = append(buckets[bucket], pkg.Name)

		if len(pkg.Security.Vulnerabilities) > 0 {
			alerts = append(alerts, pkg.Security.Vulnerabilities...)
		}
	}

	return SecurityIndex{
		Version:             apiVersion,
		LastUpdated:         lastUpdated,
		SecurityScores:      scores,
		SecurityCategories:  buckets,
		VulnerabilityAlerts: alerts,
		SecurityGuidelines: SecurityGuidelines{
			MinimumScore:     7.0,
			RecommendedScore: 8.5,
			UpdateFrequency:  "daily",
		},
	}
}

// scoreBucket partitions a security score, missing scores count as 0.
func scoreBucket(score *float64) string {
	var s float64
	if score != nil {
		s = *score
	}
	switch {
	case s >= 9.0:
		return "excellent"
	case s >= 8.0:
		return "good"
	case s >= 6.0:
		return "fair"
	default:
		return "poor"
	}
}
