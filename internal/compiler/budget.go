// File path: internal/compiler/budget.go
package compiler

import (
	"github.com/Artzzx/lootforge/internal/common"
	"github.com/Artzzx/lootforge/internal/filter"
	"github.com/Artzzx/lootforge/internal/kb"
)

// SectionKind names a budget section. The allocator reserves sections in a
// hardcoded priority order; estimates are upper bounds on what each
// generator may emit.
type SectionKind string

const (
	SectionLegendary      SectionKind = "legendary"
	SectionUniqueLP       SectionKind = "unique-lp"
	SectionThresholds     SectionKind = "thresholds"
	SectionRecUniques     SectionKind = "recommended-uniques"
	SectionExaltedBases   SectionKind = "exalted-bases"
	SectionIdols          SectionKind = "idols"
	SectionRareItems      SectionKind = "rare-items"
	SectionLeveling       SectionKind = "leveling"
	SectionCrossClassShow SectionKind = "cross-class-show"
	SectionClassHide      SectionKind = "class-hide"
	SectionEssentialTier  SectionKind = "essential-affixes"
	SectionStrongTier     SectionKind = "strong-affixes"
	SectionUsefulTier     SectionKind = "useful-affixes"
)

// RuleSection is one budget reservation.
type RuleSection struct {
	Kind      SectionKind
	Priority  int
	Estimated int
}

// RuleSchedule is the allocator's output: the ordered reservations, the
// budget they consumed, and the affix tiers that made the cut.
type RuleSchedule struct {
	Sections   []RuleSection
	BudgetUsed int

	Essential []kb.AffixWeight
	Strong    []kb.AffixWeight
	Useful    []kb.AffixWeight

	DroppedAffixes int
}

// Caps on per-section entries.
const (
	maxRecommendedUniques = 6
	maxExaltedBases       = 6
	maxIdolGroups         = 6
)

// affixTierCost is the fixed budget estimate charged per included affix
// tier. Deliberately a constant rather than a computed count: the observable
// rule budget must not shift with affix list sizes.
const affixTierCost = 2

// Strictness orders at which optional sections disappear. Rare-item rules
// drop at the harshest two tiers; leveling rules drop at and above the
// second-harshest tier.
const (
	rareRuleMaxOrder     = 3
	levelingRuleMaxOrder = 3
)

// Allocate partitions the rule budget across structural sections and affix
// tiers. Greedy and priority-ordered: a section that does not fit in the
// remaining budget is skipped whole, so the hard cap holds by construction
// and there is no overflow error path.
func Allocate(ctx *BuildContext, profile *kb.ResolvedProfile, filtered []kb.AffixWeight) *RuleSchedule {
	logger := common.Logger()
	schedule := &RuleSchedule{}

	reserve := func(kind SectionKind, priority, estimated int) bool {
		if estimated <= 0 {
			return false
		}
		if schedule.BudgetUsed+estimated > filter.MaxRules {
			logger.Debug("budget: section skipped, over cap", "section", kind, "estimated", estimated, "used", schedule.BudgetUsed)
			return false
		}
		schedule.Sections = append(schedule.Sections, RuleSection{Kind: kind, Priority: priority, Estimated: estimated})
		schedule.BudgetUsed += estimated
		return true
	}

	strictness := ctx.Strictness

	reserve(SectionLegendary, filter.PriorityLegendary, 1)

	lpTiers := 5 - strictness.MinLegendaryPotential
	if lpTiers < 1 {
		lpTiers = 1
	}
	reserve(SectionUniqueLP, filter.PriorityUniqueHighLP, lpTiers)

	if !ctx.ResistancesCapped && ctx.Phase != filter.PhaseAspirational {
		reserve(SectionThresholds, filter.PriorityThreshold, 2)
	}

	if n := min(len(profile.Uniques), maxRecommendedUniques); n > 0 {
		reserve(SectionRecUniques, filter.PriorityRecommendedUnq, n)
	}
	if n := min(len(profile.Bases), maxExaltedBases); n > 0 {
		reserve(SectionExaltedBases, filter.PriorityExaltedBase, n)
	}
	if n := min(idolGroupCount(profile.Idols), maxIdolGroups); n > 0 {
		reserve(SectionIdols, filter.PriorityIdolBuild, n)
	}

	if strictness.Order < rareRuleMaxOrder {
		reserve(SectionRareItems, filter.PriorityRareBuild, 2)
	}
	if strictness.Order < levelingRuleMaxOrder {
		reserve(SectionLeveling, filter.PriorityLeveling, 2)
	}

	if ctx.ShowCrossClass {
		reserve(SectionCrossClassShow, filter.PriorityCrossClass, 1)
	} else {
		reserve(SectionClassHide, filter.PriorityHideClass, 1)
	}

	// Remaining budget goes to affix tiers in strict priority. A tier that
	// does not fit is excluded whole; no partial inclusion.
	essential, strong, useful, filler := partitionTiers(filtered)
	if len(essential) > 0 && reserve(SectionEssentialTier, filter.PriorityExaltedBuild, affixTierCost) {
		schedule.Essential = essential
	} else {
		schedule.DroppedAffixes += len(essential)
	}
	if len(strong) > 0 && reserve(SectionStrongTier, filter.PriorityRareBuild, affixTierCost) {
		schedule.Strong = strong
	} else {
		schedule.DroppedAffixes += len(strong)
	}
	if len(useful) > 0 && reserve(SectionUsefulTier, filter.PriorityRareGeneral, affixTierCost) {
		schedule.Useful = useful
	} else {
		schedule.DroppedAffixes += len(useful)
	}
	schedule.DroppedAffixes += filler

	logger.Debug("budget: schedule allocated",
		"sections", len(schedule.Sections), "used", schedule.BudgetUsed, "dropped", schedule.DroppedAffixes)
	return schedule
}

// partitionTiers splits non-zero affixes into the weight bands. Filler-band
// affixes (weight below the useful cutoff, but still positive) are always
// excluded and only counted.
func partitionTiers(affixes []kb.AffixWeight) (essential, strong, useful []kb.AffixWeight, filler int) {
	for _, aw := range affixes {
		if aw.Weight <= 0 {
			continue
		}
		switch kb.Categorize(aw.Weight) {
		case kb.CategoryEssential:
			essential = append(essential, aw)
		case kb.CategoryStrong:
			strong = append(strong, aw)
		case kb.CategoryUseful:
			useful = append(useful, aw)
		default:
			filler++
		}
	}
	return essential, strong, useful, filler
}

// idolGroupCount counts distinct size/slot groups among the recommended
// idol affixes.
func idolGroupCount(idols []kb.IdolRec) int {
	groups := make(map[string]bool)
	for _, idol := range idols {
		groups[idol.Size+"|"+idol.Slot] = true
	}
	return len(groups)
}
