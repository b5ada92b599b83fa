package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/therealcoolnerd/omni-packages/types"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func rankedPackage(name, category string, rank int) types.Package {
	return types.Package{
		Name:        name,
		DisplayName: name,
		Category:    category,
		Popularity:  &types.Popularity{Rank: intPtr(rank)},
	}
}

func TestBuildPopularIndex(t *testing.T) {
	pkgs := []types.Package{
		rankedPackage("c", "tools", 3),
		rankedPackage("a", "tools", 1),
		{Name: "unranked", DisplayName: "unranked", Category: "tools"},
		rankedPackage("b", "editors", 2),
	}

	index := buildPopularIndex(pkgs, "2025-03-15T10:30:00Z")

	assert.Equal(t, 3, index.TotalPackages)
	var ranks []int
	var names []string
	for _, p := range index.PopularPackages {
		ranks = append(ranks, p.Rank)
		names = append(names, p.Name)
	}
	assert.Equal(t, []int{1, 2, 3}, ranks)
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, map[string][]string{
		"tools":   {"a", "c"},
		"editors": {"b"},
	}, index.Categories)
}

func TestBuildPopularIndex_StableOnEqualRanks(t *testing.T) {
	pkgs := []types.Package{
		rankedPackage("first", "tools", 1),
		rankedPackage("second", "tools", 1),
	}

	index := buildPopularIndex(pkgs, "2025-03-15T10:30:00Z")

	assert.Equal(t, "first", index.PopularPackages[0].Name)
	assert.Equal(t, "second", index.PopularPackages[1].Name)
}

func TestBuildCrossPlatformIndex_LastWriterWins(t *testing.T) {
	pkgs := []types.Package{
		{
			Name: "older",
			CrossPlatform: types.CrossPlatform{
				"linux": {"apt": {"shared-name"}},
			},
		},
		{
			Name: "newer",
			CrossPlatform: types.CrossPlatform{
				"linux": {"apt": {"shared-name"}},
				"bsd":   {"pkg": {"newer"}},
			},
		},
		{Name: "no-mapping"},
	}

	index := buildCrossPlatformIndex(pkgs, "2025-03-15T10:30:00Z")

	assert.Len(t, index.Mappings, 2)
	assert.NotContains(t, index.Mappings, "no-mapping")

	// the colliding apt name has exactly one entry, owned by the later package
	assert.Equal(t, map[string]string{"shared-name": "newer"}, index.ReverseMappings["linux"]["apt"])

	// platform keys beyond linux/macos/windows are created on demand
	assert.Equal(t, "newer", index.ReverseMappings["bsd"]["pkg"]["newer"])
	assert.Contains(t, index.ReverseMappings, "macos")
	assert.Contains(t, index.ReverseMappings, "windows")
}

func TestBuildSecurityIndex(t *testing.T) {
	pkgs := []types.Package{
		{Name: "excellent-pkg", Security: &types.Security{Score: floatPtr(9.5)}},
		{Name: "good-pkg", Security: &types.Security{
			Score:           floatPtr(8.5),
			Vulnerabilities: []json.RawMessage{json.RawMessage(`{"id":"V-1"}`)},
		}},
		{Name: "fair-pkg", Security: &types.Security{Score: floatPtr(7.0)}},
		{Name: "poor-pkg", Security: &types.Security{
			Score:           floatPtr(3.0),
			Vulnerabilities: []json.RawMessage{json.RawMessage(`{"id":"V-2"}`), json.RawMessage(`{"id":"V-3"}`)},
		}},
		{Name: "scoreless", Security: &types.Security{}},
		{Name: "no-security"},
	}

	index := buildSecurityIndex(pkgs, "2025-03-15T10:30:00Z")

	assert.Equal(t, map[string][]string{
		"excellent": {"excellent-pkg"},
		"good":      {"good-pkg"},
		"fair":      {"fair-pkg"},
		"poor":      {"poor-pkg", "scoreless"},
	}, index.SecurityCategories)

	assert.Len(t, index.SecurityScores, 5)
	assert.NotContains(t, index.SecurityScores, "no-security")

	// alerts concatenate every non-empty list in package order
	assert.Len(t, index.VulnerabilityAlerts, 3)
	assert.JSONEq(t, `{"id":"V-1"}`, string(index.VulnerabilityAlerts[0]))
	assert.JSONEq(t, `{"id":"V-2"}`, string(index.VulnerabilityAlerts[1]))
	assert.JSONEq(t, `{"id":"V-3"}`, string(index.VulnerabilityAlerts[2]))

	assert.Equal(t, SecurityGuidelines{
		MinimumScore:     7.0,
		RecommendedScore: 8.5,
		UpdateFrequency:  "daily",
	}, index.SecurityGuidelines)
}

func TestScoreBucket_Boundaries(t *testing.T) {
	tests := []struct {
		score *float64
		want  string
	}{
		{floatPtr(10.0), "excellent"},
		{floatPtr(9.0), "excellent"},
		{floatPtr(8.9), "good"},
		{floatPtr(8.0), "good"},
		{floatPtr(7.9), "fair"},
		{floatPtr(6.0), "fair"},
		{floatPtr(5.9), "poor"},
		{floatPtr(0.0), "poor"},
		{nil, "poor"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreBucket(tt.score))
	}
}

func TestBuildCategoriesIndex(t *testing.T) {
	pkgs := []types.Package{
		{Name: "a", DisplayName: "A", Category: "tools", Description: "a"},
		{Name: "b", DisplayName: "B", Description: "b"},
		{Name: "c", DisplayName: "C", Category: "tools", Description: "c"},
	}

	index := buildCategoriesIndex(pkgs, "2025-03-15T10:30:00Z")

	assert.Equal(t, 2, index.TotalCategories)
	assert.Equal(t, 3, index.TotalPackages)
	assert.Equal(t, []CategoryEntry{
		{Name: "a", DisplayName: "A", Description: "a"},
		{Name: "c", DisplayName: "C", Description: "c"},
	}, index.Categories["tools"])
	assert.Equal(t, []CategoryEntry{
		{Name: "b", DisplayName: "B", Description: "b"},
	}, index.Categories["other"])
}

func TestBuildPackageIndex(t *testing.T) {
	index := buildPackageIndex(nil, "2025-03-15T10:30:00Z")
	assert.Equal(t, 0, index.TotalPackages)
	assert.NotNil(t, index.Packages)

	pkgs := []types.Package{{Name: "z"}, {Name: "a"}}
	index = buildPackageIndex(pkgs, "2025-03-15T10:30:00Z")
	assert.Equal(t, 2, index.TotalPackages)
	assert.Equal(t, "z", index.Packages[0].Name)
	assert.Equal(t, "a", index.Packages[1].Name)
}
