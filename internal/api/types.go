// File path: internal/api/types.go
package api

import "github.com/Artzzx/lootforge/internal/compiler"

type generateResponse struct {
	Result *compiler.Result `json:"result"`
	XML    string           `json:"xml"`
}

// affixSummary is one scored affix with its display name resolved from the
// affix catalog. Affixes the catalog does not name keep an empty name.
type affixSummary struct {
	ID       int     `json:"id"`
	Name     string  `json:"name,omitempty"`
	Weight   float64 `json:"weight"`
	Category string  `json:"category"`
}

type analyzeResponse struct {
	Mastery        string         `json:"mastery"`
	BaseClass      string         `json:"base_class"`
	Phase          string         `json:"phase"`
	Strictness     string         `json:"strictness"`
	AttackType     string         `json:"attack_type,omitempty"`
	UsesMinions    bool           `json:"uses_minions"`
	Specificity    float64        `json:"specificity"`
	Confidence     string         `json:"confidence"`
	MatchedBuilds  []string       `json:"matched_builds,omitempty"`
	AffixCount     int            `json:"affix_count"`
	TopAffixes     []affixSummary `json:"top_affixes,omitempty"`
	CategoryCounts map[string]int `json:"category_counts,omitempty"`
	Uniques        int            `json:"uniques"`
	Bases          int            `json:"bases"`
	Idols          int            `json:"idols"`
}

type strictnessLevel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}
