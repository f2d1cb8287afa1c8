// File path: internal/kb/types.go
package kb

import (
	"strings"

	"github.com/Artzzx/lootforge/internal/filter"
)

// Confidence labels how much trust the knowledge pipeline assigned to a
// build entry.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

var confidenceRank = map[Confidence]int{
	ConfidenceLow:    0,
	ConfidenceMedium: 1,
	ConfidenceHigh:   2,
}

// Higher reports whether c outranks other.
func (c Confidence) Higher(other Confidence) bool {
	return confidenceRank[c] > confidenceRank[other]
}

func normalizeConfidence(raw string) Confidence {
	switch Confidence(strings.ToLower(strings.TrimSpace(raw))) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceMedium:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Category is the coarse value band an affix weight falls into.
type Category string

const (
	CategoryEssential Category = "essential"
	CategoryStrong    Category = "strong"
	CategoryUseful    Category = "useful"
	CategoryFiller    Category = "filler"
)

// Weight band cutoffs.
const (
	EssentialCutoff = 75
	StrongCutoff    = 50
	UsefulCutoff    = 25
)

// Categorize bands a weight.
func Categorize(weight float64) Category {
	switch {
	case weight >= EssentialCutoff:
		return CategoryEssential
	case weight >= StrongCutoff:
		return CategoryStrong
	case weight >= UsefulCutoff:
		return CategoryUseful
	default:
		return CategoryFiller
	}
}

// AffixWeight is one scored affix inside a matched profile. The prerequisite
// filter may force Weight to zero; the category and confidence metadata stay
// untouched so downstream accounting still sees the full list.
type AffixWeight struct {
	AffixID    int        `json:"affix"`
	Weight     float64    `json:"weight"`
	Category   Category   `json:"category,omitempty"`
	Confidence Confidence `json:"confidence,omitempty"`
}

// BuildEntry is one precomputed build profile in the knowledge base. Damage
// types are stored comma-joined, matching the pipeline export format.
type BuildEntry struct {
	Mastery     string                         `json:"mastery"`
	DamageTypes string                         `json:"damage_types"`
	Confidence  string                         `json:"confidence,omitempty"`
	Phases      map[filter.Phase][]AffixWeight `json:"phases"`
}

// DamageTypeList splits the comma-joined damage types, lowercased.
func (e BuildEntry) DamageTypeList() []string {
	if strings.TrimSpace(e.DamageTypes) == "" {
		return nil
	}
	parts := strings.Split(e.DamageTypes, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.ToLower(strings.TrimSpace(p)); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// PhaseAffixes returns the entry's affix list for the phase, falling back to
// endgame then starter when the active phase is absent.
func (e BuildEntry) PhaseAffixes(phase filter.Phase) []AffixWeight {
	for _, p := range []filter.Phase{phase, filter.PhaseEndgame, filter.PhaseStarter} {
		if affixes, ok := e.Phases[p]; ok && len(affixes) > 0 {
			return affixes
		}
	}
	return nil
}

// KnowledgeBase is the versioned, externally supplied collection of build
// profiles. Loaded once per process and treated as read-only.
type KnowledgeBase struct {
	Version     string                `json:"version"`
	GeneratedAt string                `json:"generated_at"`
	Builds      map[string]BuildEntry `json:"builds"`
}

// UniqueRec recommends a specific unique item for a build.
type UniqueRec struct {
	Name  string       `json:"name"`
	Slot  string       `json:"slot"`
	Phase filter.Phase `json:"phase,omitempty"`
}

// BaseRec recommends an exalted base to keep for crafting.
type BaseRec struct {
	Name  string       `json:"name"`
	Slot  string       `json:"slot"`
	Phase filter.Phase `json:"phase,omitempty"`
}

// IdolRec recommends an idol affix for a size group.
type IdolRec struct {
	Affix int          `json:"affix"`
	Size  string       `json:"size"`
	Slot  string       `json:"slot,omitempty"`
	Phase filter.Phase `json:"phase,omitempty"`
}

// RecBuild is the recommendation entry for one build.
type RecBuild struct {
	Mastery   string      `json:"mastery"`
	Archetype string      `json:"archetype,omitempty"`
	Uniques   []UniqueRec `json:"uniques,omitempty"`
	Bases     []BaseRec   `json:"bases,omitempty"`
	Idols     []IdolRec   `json:"idols,omitempty"`
}

// Recommendations is the optional companion dataset of uniques, bases, and
// idol affixes. A missing file degrades to the zero value.
type Recommendations struct {
	GeneratedAt string              `json:"generated_at"`
	Builds      map[string]RecBuild `json:"builds"`
}

// ResolvedProfile is the matcher's output: merged phase-selected affix
// weights plus phase-filtered recommendation lists, with a specificity score
// recording how closely the knowledge data matched the request.
type ResolvedProfile struct {
	Specificity   float64       `json:"specificity"`
	Confidence    Confidence    `json:"confidence"`
	Affixes       []AffixWeight `json:"affixes"`
	MatchedBuilds []string      `json:"matched_builds"`
	Uniques       []UniqueRec   `json:"uniques,omitempty"`
	Bases         []BaseRec     `json:"bases,omitempty"`
	Idols         []IdolRec     `json:"idols,omitempty"`
}
