// File path: internal/kb/matcher.go
package kb

import (
	"sort"
	"strings"

	"github.com/Artzzx/lootforge/internal/common"
	"github.com/Artzzx/lootforge/internal/filter"
)

// Query is the slice of build context the matcher needs. Strings are
// lowercase-normalized by the context resolver before they reach here.
type Query struct {
	Mastery     string
	BaseClass   filter.CharacterClass
	DamageTypes []string
	Phase       filter.Phase
	Archetype   string
}

// CacheKey flattens the query into a stable string for profile caching.
func (q Query) CacheKey() string {
	return strings.Join([]string{
		q.Mastery,
		string(q.BaseClass),
		strings.Join(q.DamageTypes, ","),
		string(q.Phase),
		q.Archetype,
	}, "|")
}

// Specificity scores per cascade level.
const (
	SpecificityExact     = 1.0
	SpecificityPartial   = 0.85
	SpecificityMastery   = 0.7
	SpecificityClass     = 0.4
	SpecificityUniversal = 0.2
	SpecificityNone      = 0.0
)

// Match runs the build-profile cascade and the recommendation cascade for a
// query. It always succeeds: an unknown or sparse build degrades to broader
// data, and the specificity score records how far the fallback went.
func Match(knowledge *KnowledgeBase, recs *Recommendations, q Query) *ResolvedProfile {
	logger := common.Logger()

	slugs, score := selectBuilds(knowledge, q)
	profile := &ResolvedProfile{
		Specificity:   score,
		Confidence:    ConfidenceLow,
		MatchedBuilds: slugs,
	}
	if len(slugs) > 0 {
		profile.Affixes, profile.Confidence = mergePhaseAffixes(knowledge, slugs, q.Phase)
	}
	logger.Debug("kb: build cascade resolved",
		"mastery", q.Mastery, "specificity", score,
		"builds", len(slugs), "affixes", len(profile.Affixes))

	if recs != nil {
		attachRecommendations(profile, recs, q)
	}
	return profile
}

// selectBuilds walks the 6-level cascade, returning all builds matched by
// the first non-empty level and that level's specificity score. Matches at a
// level are never tie-broken further; they merge downstream.
func selectBuilds(knowledge *KnowledgeBase, q Query) ([]string, float64) {
	if knowledge == nil || len(knowledge.Builds) == 0 {
		return nil, SpecificityNone
	}
	slugs := make([]string, 0, len(knowledge.Builds))
	for slug := range knowledge.Builds {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	levels := []struct {
		score float64
		match func(BuildEntry) bool
	}{
		{SpecificityExact, func(e BuildEntry) bool {
			return masteryMatches(e, q) && containsAll(e.DamageTypeList(), q.DamageTypes)
		}},
		{SpecificityPartial, func(e BuildEntry) bool {
			return masteryMatches(e, q) && containsAny(e.DamageTypeList(), q.DamageTypes)
		}},
		{SpecificityMastery, masteryMatchesQ(q)},
		{SpecificityClass, func(e BuildEntry) bool {
			class, ok := filter.MasteryClass(e.Mastery)
			return ok && class == q.BaseClass
		}},
		{SpecificityUniversal, func(BuildEntry) bool { return true }},
	}

	for _, level := range levels {
		var matched []string
		for _, slug := range slugs {
			if level.match(knowledge.Builds[slug]) {
				matched = append(matched, slug)
			}
		}
		if len(matched) > 0 {
			return matched, level.score
		}
	}
	return nil, SpecificityNone
}

func masteryMatchesQ(q Query) func(BuildEntry) bool {
	return func(e BuildEntry) bool { return masteryMatches(e, q) }
}

func masteryMatches(e BuildEntry, q Query) bool {
	return strings.EqualFold(strings.TrimSpace(e.Mastery), q.Mastery)
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		if !containsFold(have, w) {
			return false
		}
	}
	return true
}

func containsAny(have, want []string) bool {
	for _, w := range want {
		if containsFold(have, w) {
			return true
		}
	}
	return false
}

func containsFold(list []string, value string) bool {
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return true
		}
	}
	return false
}

// mergePhaseAffixes merges the phase-selected affix lists of every matched
// build, keeping the maximum weight per affix id, and computes the highest
// contributing confidence label.
func mergePhaseAffixes(knowledge *KnowledgeBase, slugs []string, phase filter.Phase) ([]AffixWeight, Confidence) {
	weights := make(map[int]float64)
	perAffixConf := make(map[int]Confidence)
	overall := ConfidenceLow

	for _, slug := range slugs {
		entry := knowledge.Builds[slug]
		conf := normalizeConfidence(entry.Confidence)
		if conf.Higher(overall) {
			overall = conf
		}
		for _, aw := range entry.PhaseAffixes(phase) {
			if cur, ok := weights[aw.AffixID]; !ok || aw.Weight > cur {
				weights[aw.AffixID] = aw.Weight
				perAffixConf[aw.AffixID] = conf
			}
		}
	}

	merged := make([]AffixWeight, 0, len(weights))
	for id, w := range weights {
		merged = append(merged, AffixWeight{
			AffixID:    id,
			Weight:     w,
			Category:   Categorize(w),
			Confidence: perAffixConf[id],
		})
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Weight != merged[j].Weight {
			return merged[i].Weight > merged[j].Weight
		}
		return merged[i].AffixID < merged[j].AffixID
	})
	return merged, overall
}
