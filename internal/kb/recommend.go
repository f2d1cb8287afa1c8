// File path: internal/kb/recommend.go
package kb

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Artzzx/lootforge/internal/filter"
)

// attachRecommendations runs the archetype-aware recommendation cascade and
// fills the profile's unique/base/idol lists. Structurally the same shape as
// the build cascade: first non-empty level wins, everything at that level is
// merged, then deduplicated and phase-filtered.
func attachRecommendations(profile *ResolvedProfile, recs *Recommendations, q Query) {
	if len(recs.Builds) == 0 {
		return
	}
	slugs := make([]string, 0, len(recs.Builds))
	for slug := range recs.Builds {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	levels := []func(RecBuild) bool{
		func(b RecBuild) bool {
			return strings.EqualFold(b.Mastery, q.Mastery) &&
				q.Archetype != "" && strings.EqualFold(b.Archetype, q.Archetype)
		},
		func(b RecBuild) bool { return strings.EqualFold(b.Mastery, q.Mastery) },
		func(b RecBuild) bool {
			class, ok := filter.MasteryClass(b.Mastery)
			return ok && class == q.BaseClass
		},
		func(RecBuild) bool { return true },
	}

	var matched []string
	for _, match := range levels {
		for _, slug := range slugs {
			if match(recs.Builds[slug]) {
				matched = append(matched, slug)
			}
		}
		if len(matched) > 0 {
			break
		}
	}

	seenUnique := make(map[string]bool)
	seenBase := make(map[string]bool)
	seenIdol := make(map[string]bool)
	for _, slug := range matched {
		build := recs.Builds[slug]
		for _, u := range build.Uniques {
			if !phaseAllows(u.Phase, q.Phase) {
				continue
			}
			key := strings.ToLower(u.Name + "|" + u.Slot)
			if !seenUnique[key] {
				seenUnique[key] = true
				profile.Uniques = append(profile.Uniques, u)
			}
		}
		for _, b := range build.Bases {
			if !phaseAllows(b.Phase, q.Phase) {
				continue
			}
			key := strings.ToLower(b.Name + "|" + b.Slot)
			if !seenBase[key] {
				seenBase[key] = true
				profile.Bases = append(profile.Bases, b)
			}
		}
		for _, idol := range build.Idols {
			if !phaseAllows(idol.Phase, q.Phase) {
				continue
			}
			key := fmt.Sprintf("%d|%s|%s", idol.Affix, strings.ToLower(idol.Slot), strings.ToLower(idol.Size))
			if !seenIdol[key] {
				seenIdol[key] = true
				profile.Idols = append(profile.Idols, idol)
			}
		}
	}
}

// phaseAllows treats an unset recommendation phase as valid everywhere.
func phaseAllows(recPhase, active filter.Phase) bool {
	return recPhase == "" || recPhase == active
}
