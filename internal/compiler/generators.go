// File path: internal/compiler/generators.go
package compiler

import (
	"fmt"
	"strings"

	"github.com/Artzzx/lootforge/internal/filter"
	"github.com/Artzzx/lootforge/internal/graph"
	"github.com/Artzzx/lootforge/internal/kb"
)

// ruleIDs hands out rule identifiers unique within one compile. Request
// scoped so concurrent compiles cannot interleave ids; re-seedable for
// deterministic tests.
type ruleIDs struct {
	next int
}

func newRuleIDs(seed int) *ruleIDs {
	if seed <= 0 {
		seed = 1
	}
	return &ruleIDs{next: seed}
}

func (r *ruleIDs) take() int {
	id := r.next
	r.next++
	return id
}

func intPtr(v int) *int { return &v }

// genLegendary emits the always-show legendary rule.
func genLegendary(ids *ruleIDs) []filter.CompiledRule {
	return []filter.CompiledRule{{
		ID:   ids.take(),
		Kind: filter.RuleShow,
		Conditions: []filter.Condition{
			filter.RarityCondition{Rarities: []filter.Rarity{filter.RarityLegendary}},
		},
		Color:        filter.ValueColors["legendary"],
		SoundID:      filter.SoundFight,
		BeamID:       filter.BeamExalted,
		Emphasized:   true,
		NameOverride: "LEGENDARY",
		Priority:     filter.PriorityLegendary,
	}}
}

// genUniqueLP emits the descending legendary-potential tiers for unique
// items, from LP4 down to the strictness floor. An LP floor of zero emits a
// single plain unique rule.
func genUniqueLP(strictness filter.StrictnessConfig, ids *ruleIDs) []filter.CompiledRule {
	count := 5 - strictness.MinLegendaryPotential
	if count < 1 {
		count = 1
	}
	rules := make([]filter.CompiledRule, 0, count)
	for i := 0; i < count; i++ {
		lp := 4 - i
		if lp < 0 {
			lp = 0
		}
		cond := filter.RarityCondition{Rarities: []filter.Rarity{filter.RarityUnique}}
		name := "UNIQUE"
		priority := filter.PriorityUnique
		if lp > 0 {
			cond.MinLegendaryPotential = intPtr(lp)
			name = fmt.Sprintf("UNIQUE LP%d+", lp)
			priority = filter.PriorityUniqueHighLP
		}
		rules = append(rules, filter.CompiledRule{
			ID:           ids.take(),
			Kind:         filter.RuleShow,
			Conditions:   []filter.Condition{cond},
			Color:        filter.ValueColors["unique"],
			SoundID:      soundForLP(lp),
			BeamID:       beamForLP(lp),
			Emphasized:   lp >= 2,
			NameOverride: name,
			Priority:     priority - i,
		})
	}
	return rules
}

func soundForLP(lp int) int {
	if lp >= 2 {
		return filter.SoundBegin
	}
	return filter.SoundShing
}

func beamForLP(lp int) int {
	if lp >= 2 {
		return filter.BeamLegendary
	}
	return filter.BeamDefault
}

// genThresholds emits the resistance and attribute safety-net rules used
// while a character is still capping defences.
func genThresholds(ctx *BuildContext, ids *ruleIDs) []filter.CompiledRule {
	resAffixes := []int{
		graph.AffixFireRes, graph.AffixColdRes, graph.AffixLightningRes,
		graph.AffixVoidRes, graph.AffixNecroticRes, graph.AffixPoisonRes,
	}
	sustainAffixes := []int{
		graph.AffixHealth, graph.AffixHealthPct,
		graph.AffixStrength, graph.AffixDexterity, graph.AffixIntelligence,
		graph.AffixVitality, graph.AffixAttunement,
	}
	rarities := []filter.Rarity{filter.RarityRare, filter.RarityExalted}
	return []filter.CompiledRule{
		{
			ID:   ids.take(),
			Kind: filter.RuleShow,
			Conditions: []filter.Condition{
				filter.RarityCondition{Rarities: rarities},
				affixAny(resAffixes, 2),
			},
			Color:        filter.ValueColors["useful"],
			NameOverride: "RESISTANCES 2+",
			Priority:     filter.PriorityThreshold,
		},
		{
			ID:   ids.take(),
			Kind: filter.RuleShow,
			Conditions: []filter.Condition{
				filter.RarityCondition{Rarities: rarities},
				affixAny(sustainAffixes, 2),
			},
			Color:        filter.ValueColors["useful"],
			NameOverride: "HEALTH & ATTRIBUTES 2+",
			Priority:     filter.PriorityThreshold - 1,
		},
	}
}

// genRecommendedUniques emits one emphasized rule per recommended unique,
// capped by the allocator's reservation.
func genRecommendedUniques(uniques []kb.UniqueRec, ids *ruleIDs) []filter.CompiledRule {
	if len(uniques) > maxRecommendedUniques {
		uniques = uniques[:maxRecommendedUniques]
	}
	rules := make([]filter.CompiledRule, 0, len(uniques))
	for i, u := range uniques {
		conditions := []filter.Condition{
			filter.RarityCondition{Rarities: []filter.Rarity{filter.RarityUnique}},
		}
		if slots := slotEquipment(u.Slot); len(slots) > 0 {
			conditions = append(conditions, filter.SubTypeCondition{EquipmentTypes: slots})
		}
		rules = append(rules, filter.CompiledRule{
			ID:           ids.take(),
			Kind:         filter.RuleShow,
			Conditions:   conditions,
			Color:        filter.ValueColors["unique"],
			SoundID:      filter.SoundDiscovery,
			BeamID:       filter.BeamLegendary,
			Emphasized:   true,
			NameOverride: strings.ToUpper(u.Name),
			Priority:     filter.PriorityRecommendedUnq - i,
		})
	}
	return rules
}

// genExaltedBases emits a rule per recommended exalted base slot.
func genExaltedBases(bases []kb.BaseRec, strictness filter.StrictnessConfig, ids *ruleIDs) []filter.CompiledRule {
	if len(bases) > maxExaltedBases {
		bases = bases[:maxExaltedBases]
	}
	rules := make([]filter.CompiledRule, 0, len(bases))
	for i, b := range bases {
		conditions := []filter.Condition{
			filter.RarityCondition{Rarities: []filter.Rarity{filter.RarityExalted}},
		}
		if slots := slotEquipment(b.Slot); len(slots) > 0 {
			conditions = append(conditions, filter.SubTypeCondition{EquipmentTypes: slots})
		}
		rules = append(rules, filter.CompiledRule{
			ID:           ids.take(),
			Kind:         filter.RuleShow,
			Conditions:   conditions,
			Color:        filter.ValueColors["exalted"],
			SoundID:      filter.SoundShing,
			BeamID:       filter.BeamExalted,
			Emphasized:   strictness.MinExaltedTier >= 7,
			NameOverride: fmt.Sprintf("EXALTED %s", strings.ToUpper(b.Name)),
			Priority:     filter.PriorityExaltedBase - i,
		})
	}
	return rules
}

// genIdols groups recommended idol affixes by size/slot and emits one rule
// per group, gated by the strictness idol requirement.
func genIdols(idols []kb.IdolRec, strictness filter.StrictnessConfig, ids *ruleIDs) []filter.CompiledRule {
	type group struct {
		size    filter.IdolSize
		affixes []int
	}
	order := make([]string, 0, 8)
	groups := make(map[string]*group)
	for _, idol := range idols {
		key := idol.Size + "|" + idol.Slot
		g, ok := groups[key]
		if !ok {
			if len(groups) >= maxIdolGroups {
				continue
			}
			g = &group{size: filter.IdolSize(strings.ToLower(idol.Size))}
			groups[key] = g
			order = append(order, key)
		}
		g.affixes = append(g.affixes, idol.Affix)
	}

	minMatches := strictness.IdolAffixRequirement.MinIdolMatches()
	rules := make([]filter.CompiledRule, 0, len(order))
	for i, key := range order {
		g := groups[key]
		slots := filter.IdolSlots(g.size)
		if len(slots) == 0 {
			continue
		}
		rules = append(rules, filter.CompiledRule{
			ID:   ids.take(),
			Kind: filter.RuleShow,
			Conditions: []filter.Condition{
				filter.SubTypeCondition{EquipmentTypes: slots},
				affixAny(g.affixes, minMatches),
			},
			Color:        filter.ValueColors["useful"],
			Emphasized:   minMatches >= 2,
			NameOverride: fmt.Sprintf("%s IDOL", strings.ToUpper(string(g.size))),
			Priority:     filter.PriorityIdolBuild - i,
		})
	}
	return rules
}

// genRareItems emits the general rare and exalted highlights over the affix
// tiers that survived the budget cut. Filler-band and budget-dropped affixes
// never reach these rules.
func genRareItems(ctx *BuildContext, schedule *RuleSchedule, ids *ruleIDs) []filter.CompiledRule {
	tiered := make([]kb.AffixWeight, 0, len(schedule.Essential)+len(schedule.Strong)+len(schedule.Useful))
	tiered = append(tiered, schedule.Essential...)
	tiered = append(tiered, schedule.Strong...)
	tiered = append(tiered, schedule.Useful...)
	affixes := affixIDList(tiered)
	if len(affixes) == 0 {
		return nil
	}
	return []filter.CompiledRule{
		{
			ID:   ids.take(),
			Kind: filter.RuleShow,
			Conditions: []filter.Condition{
				filter.RarityCondition{Rarities: []filter.Rarity{filter.RarityRare}},
				affixAny(affixes, ctx.Strictness.MinAffixMatches),
			},
			Color:        filter.ValueColors["rare"],
			NameOverride: "RARE (build affixes)",
			Priority:     filter.PriorityRareGeneral,
		},
		{
			ID:   ids.take(),
			Kind: filter.RuleShow,
			Conditions: []filter.Condition{
				filter.RarityCondition{Rarities: []filter.Rarity{filter.RarityExalted}},
				affixAny(affixes, 1),
			},
			Color:        filter.ValueColors["exalted"],
			Emphasized:   true,
			NameOverride: "EXALTED (build affixes)",
			Priority:     filter.PriorityRareGeneral + 1,
		},
	}
}

// genAffixTier emits the highlight rule for one weight band. Colors follow
// the damage-themed scheme.
func genAffixTier(kind SectionKind, ctx *BuildContext, schedule *RuleSchedule, ids *ruleIDs) []filter.CompiledRule {
	scheme := filter.ColorScheme(ctx.PrimaryDamage())
	rarities := []filter.Rarity{filter.RarityRare, filter.RarityExalted}

	var (
		affixes    []int
		band       string
		priority   int
		emphasized bool
	)
	switch kind {
	case SectionEssentialTier:
		affixes, band = affixIDList(schedule.Essential), "essential"
		priority, emphasized = filter.PriorityExaltedBuild, true
	case SectionStrongTier:
		affixes, band = affixIDList(schedule.Strong), "strong"
		priority = filter.PriorityRareBuild
	case SectionUsefulTier:
		affixes, band = affixIDList(schedule.Useful), "useful"
		priority = filter.PriorityRareGeneral - 1
	default:
		return nil
	}
	if len(affixes) == 0 {
		return nil
	}
	return []filter.CompiledRule{{
		ID:   ids.take(),
		Kind: filter.RuleShow,
		Conditions: []filter.Condition{
			filter.RarityCondition{Rarities: rarities},
			affixAny(affixes, ctx.Strictness.MinAffixMatches),
		},
		Color:        scheme[band],
		Emphasized:   emphasized,
		NameOverride: strings.ToUpper(band) + " AFFIXES",
		Priority:     priority,
	}}
}

// genLeveling hides low-rarity clutter past the strictness level
// thresholds. Starter filters keep these forgiving; harsher tiers never
// reach this generator.
func genLeveling(strictness filter.StrictnessConfig, ids *ruleIDs) []filter.CompiledRule {
	return []filter.CompiledRule{
		{
			ID:   ids.take(),
			Kind: filter.RuleHide,
			Conditions: []filter.Condition{
				filter.RarityCondition{Rarities: []filter.Rarity{filter.RarityNormal}},
				filter.LevelCondition{MinimumLvl: strictness.HideNormalAfterLevel + 1, MaximumLvl: 100},
			},
			Color:        filter.ValueColors["hide"],
			NameOverride: fmt.Sprintf("HIDE NORMAL (after lvl %d)", strictness.HideNormalAfterLevel),
			Priority:     filter.PriorityLeveling,
		},
		{
			ID:   ids.take(),
			Kind: filter.RuleHide,
			Conditions: []filter.Condition{
				filter.RarityCondition{Rarities: []filter.Rarity{filter.RarityMagic}},
				filter.LevelCondition{MinimumLvl: strictness.HideMagicAfterLevel + 1, MaximumLvl: 100},
			},
			Color:        filter.ValueColors["hide"],
			NameOverride: fmt.Sprintf("HIDE MAGIC (after lvl %d)", strictness.HideMagicAfterLevel),
			Priority:     filter.PriorityLeveling - 1,
		},
	}
}

// genCrossClassShow shows other-class items carrying affixes at or above the
// user's cross-class weight threshold.
func genCrossClassShow(ctx *BuildContext, filtered []kb.AffixWeight, ids *ruleIDs) []filter.CompiledRule {
	var above []int
	for _, aw := range filtered {
		if aw.Weight >= float64(ctx.CrossClassThreshold) {
			above = append(above, aw.AffixID)
		}
	}
	if len(above) == 0 {
		return nil
	}
	return []filter.CompiledRule{{
		ID:   ids.take(),
		Kind: filter.RuleShow,
		Conditions: []filter.Condition{
			filter.ClassCondition{Classes: ctx.OtherClasses()},
			affixAny(above, 1),
		},
		Color:        filter.ValueColors["useful"],
		NameOverride: "CROSS-CLASS VALUE",
		Priority:     filter.PriorityCrossClass,
	}}
}

// genClassHide hides items exclusive to the other base classes. With no
// resolved base class there is nothing safe to hide, so it emits nothing.
func genClassHide(ctx *BuildContext, ids *ruleIDs) []filter.CompiledRule {
	others := ctx.OtherClasses()
	if ctx.BaseClass == "" || len(others) == 0 {
		return nil
	}
	names := make([]string, 0, len(others))
	for _, c := range others {
		names = append(names, string(c))
	}
	return []filter.CompiledRule{{
		ID:   ids.take(),
		Kind: filter.RuleHide,
		Conditions: []filter.Condition{
			filter.ClassCondition{Classes: others},
		},
		Color:        filter.ValueColors["hide"],
		NameOverride: "HIDE " + strings.Join(names, ", "),
		Priority:     filter.PriorityHideClass,
	}}
}

func affixAny(affixes []int, minMatches int) filter.AffixCondition {
	if minMatches < 1 {
		minMatches = 1
	}
	return filter.AffixCondition{
		Affixes:         affixes,
		Comparison:      filter.CompareAny,
		ComparisonValue: minMatches,
		MinOnSameItem:   minMatches,
		CombinedCompare: filter.CompareAny,
	}
}

func affixIDList(affixes []kb.AffixWeight) []int {
	out := make([]int, 0, len(affixes))
	for _, aw := range affixes {
		if aw.Weight > 0 {
			out = append(out, aw.AffixID)
		}
	}
	return out
}

// slotEquipment maps a recommendation slot name to equipment subtypes.
// Unknown slots return nil and the caller omits the subtype condition.
func slotEquipment(slot string) []filter.EquipmentType {
	switch strings.ToLower(strings.TrimSpace(slot)) {
	case "helmet", "helm":
		return []filter.EquipmentType{filter.EquipHelmet}
	case "body", "body_armor", "chest":
		return []filter.EquipmentType{filter.EquipBodyArmor}
	case "gloves":
		return []filter.EquipmentType{filter.EquipGloves}
	case "belt":
		return []filter.EquipmentType{filter.EquipBelt}
	case "boots":
		return []filter.EquipmentType{filter.EquipBoots}
	case "amulet":
		return []filter.EquipmentType{filter.EquipAmulet}
	case "ring":
		return []filter.EquipmentType{filter.EquipRing}
	case "relic":
		return []filter.EquipmentType{filter.EquipRelic}
	case "shield":
		return []filter.EquipmentType{filter.EquipShield}
	case "quiver":
		return []filter.EquipmentType{filter.EquipQuiver}
	case "catalyst":
		return []filter.EquipmentType{filter.EquipCatalyst}
	case "wand":
		return []filter.EquipmentType{filter.EquipWand}
	case "sceptre":
		return []filter.EquipmentType{filter.EquipSceptre}
	case "staff":
		return []filter.EquipmentType{filter.EquipTwoHandedStaff}
	case "bow":
		return []filter.EquipmentType{filter.EquipBow}
	case "dagger":
		return []filter.EquipmentType{filter.EquipDagger}
	case "one_handed_sword", "sword":
		return []filter.EquipmentType{filter.EquipOneHandedSword}
	case "two_handed_sword":
		return []filter.EquipmentType{filter.EquipTwoHandedSword}
	case "axe", "one_handed_axe":
		return []filter.EquipmentType{filter.EquipOneHandedAxe}
	case "two_handed_axe":
		return []filter.EquipmentType{filter.EquipTwoHandedAxe}
	case "mace", "one_handed_mace":
		return []filter.EquipmentType{filter.EquipOneHandedMace}
	case "two_handed_mace":
		return []filter.EquipmentType{filter.EquipTwoHandedMace}
	case "spear", "two_handed_spear":
		return []filter.EquipmentType{filter.EquipTwoHandedSpear}
	default:
		return nil
	}
}
