// File path: internal/filter/strictness.go
package filter

import "strings"

// IdolRequirement names how many valued affixes an idol must carry before a
// strictness tier shows it.
type IdolRequirement string

const (
	IdolAny       IdolRequirement = "any"
	IdolOneValued IdolRequirement = "one_valued"
	IdolTwoValued IdolRequirement = "two_valued"
	IdolPerfect   IdolRequirement = "perfect"
)

// MinIdolMatches converts the requirement into a minimum affix-match count.
func (r IdolRequirement) MinIdolMatches() int {
	switch r {
	case IdolTwoValued, IdolPerfect:
		return 2
	default:
		return 1
	}
}

// StrictnessConfig describes one filter-aggressiveness tier. The table is
// static game knowledge and the Order field establishes the harshness
// ranking (0 = most permissive).
type StrictnessConfig struct {
	ID          string
	Name        string
	Description string
	Order       int

	ShowRarities []Rarity
	HideRarities []Rarity

	MinLegendaryPotential int
	MinWeaversWill        int
	MinExaltedTier        int
	ShowRaresWithAffixes  bool
	MinAffixMatches       int

	IdolAffixRequirement IdolRequirement

	HideNormalAfterLevel int
	HideMagicAfterLevel  int
	HideRareAfterLevel   int
}

var strictnessTable = []StrictnessConfig{
	{
		ID:   "regular",
		Name: "Regular",
		Description: "Recommended filter-strictness for leveling season-starters. " +
			"Progressively hides the worst items & highlights potential upgrades.",
		Order: 0,
		ShowRarities: []Rarity{
			RarityNormal, RarityMagic, RarityRare, RarityExalted,
			RarityUnique, RaritySet, RarityLegendary,
		},
		HideRarities:          nil,
		MinLegendaryPotential: 0,
		MinWeaversWill:        0,
		MinExaltedTier:        5,
		ShowRaresWithAffixes:  true,
		MinAffixMatches:       1,
		IdolAffixRequirement:  IdolAny,
		HideNormalAfterLevel:  25,
		HideMagicAfterLevel:   50,
		HideRareAfterLevel:    100,
	},
	{
		ID:   "strict",
		Name: "Strict",
		Description: "Recommended for start of Empowered Monolith. " +
			"Hides most Uniques without significant LP/WW. Hides most Rares. Hides Set Items.",
		Order:                 1,
		ShowRarities:          []Rarity{RarityExalted, RarityUnique, RarityLegendary},
		HideRarities:          []Rarity{RarityNormal, RarityMagic, RaritySet},
		MinLegendaryPotential: 1,
		MinWeaversWill:        5,
		MinExaltedTier:        6,
		ShowRaresWithAffixes:  true,
		MinAffixMatches:       2,
		IdolAffixRequirement:  IdolOneValued,
		HideNormalAfterLevel:  1,
		HideMagicAfterLevel:   1,
		HideRareAfterLevel:    75,
	},
	{
		ID:   "very-strict",
		Name: "Very Strict",
		Description: "Recommended to focus on Tier 7 Items. High LP Uniques. " +
			"Hides most Tier 6 Exalteds. Shows best Exalted Bases. Hides Sets.",
		Order:                 2,
		ShowRarities:          []Rarity{RarityExalted, RarityUnique, RarityLegendary},
		HideRarities:          []Rarity{RarityNormal, RarityMagic, RarityRare, RaritySet},
		MinLegendaryPotential: 2,
		MinWeaversWill:        10,
		MinExaltedTier:        7,
		ShowRaresWithAffixes:  false,
		MinAffixMatches:       3,
		IdolAffixRequirement:  IdolTwoValued,
		HideNormalAfterLevel:  1,
		HideMagicAfterLevel:   1,
		HideRareAfterLevel:    1,
	},
	{
		ID:   "uber-strict",
		Name: "Uber Strict",
		Description: "Recommended for Endgame: High LP Uniques. Strict Idols. " +
			"Hides Tier 6 Exalteds. Designed for optimized gameplay.",
		Order:                 3,
		ShowRarities:          []Rarity{RarityExalted, RarityUnique, RarityLegendary},
		HideRarities:          []Rarity{RarityNormal, RarityMagic, RarityRare, RaritySet},
		MinLegendaryPotential: 3,
		MinWeaversWill:        15,
		MinExaltedTier:        7,
		ShowRaresWithAffixes:  false,
		MinAffixMatches:       4,
		IdolAffixRequirement:  IdolPerfect,
		HideNormalAfterLevel:  1,
		HideMagicAfterLevel:   1,
		HideRareAfterLevel:    1,
	},
	{
		ID:   "giga-strict",
		Name: "GIGA Strict",
		Description: "Multi Exalt Imprint Farm. High LP Uniques. Strict Planner Idols. " +
			"Double Tier 7. Triple+ Exalteds. Designed for maximum efficiency.",
		Order:                 4,
		ShowRarities:          []Rarity{RarityUnique, RarityLegendary},
		HideRarities:          []Rarity{RarityNormal, RarityMagic, RarityRare, RaritySet, RarityExalted},
		MinLegendaryPotential: 4,
		MinWeaversWill:        20,
		MinExaltedTier:        7,
		ShowRaresWithAffixes:  false,
		MinAffixMatches:       5,
		IdolAffixRequirement:  IdolPerfect,
		HideNormalAfterLevel:  1,
		HideMagicAfterLevel:   1,
		HideRareAfterLevel:    1,
	},
}

// DefaultStrictnessID is used when the caller leaves strictness unset and no
// progress-derived recommendation applies.
const DefaultStrictnessID = "regular"

// Strictness returns the tier config for the given id, falling back to the
// default tier for unknown ids.
func Strictness(id string) StrictnessConfig {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, cfg := range strictnessTable {
		if cfg.ID == id {
			return cfg
		}
	}
	return strictnessTable[0]
}

// KnownStrictness reports whether the id names a configured tier.
func KnownStrictness(id string) bool {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, cfg := range strictnessTable {
		if cfg.ID == id {
			return true
		}
	}
	return false
}

// StrictnessTiers returns every tier ordered from most permissive to
// harshest.
func StrictnessTiers() []StrictnessConfig {
	out := make([]StrictnessConfig, len(strictnessTable))
	copy(out, strictnessTable)
	return out
}

// HarshestOrder is the Order value of the most aggressive tier.
func HarshestOrder() int {
	return strictnessTable[len(strictnessTable)-1].Order
}
