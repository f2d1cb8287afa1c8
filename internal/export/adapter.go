// File path: internal/export/adapter.go
package export

import (
	"sort"

	"github.com/Artzzx/lootforge/internal/filter"
)

const (
	defaultFilterIcon      = 1
	defaultFilterIconColor = 11
)

// Build adapts compiled rules into the persisted document. Rules are ordered
// by priority, highest first, and Order is assigned from that position. The
// sort is stable so rules sharing a priority keep their generation order.
func Build(name, description string, rules []filter.CompiledRule) *ItemFilter {
	ordered := make([]filter.CompiledRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	out := make([]Rule, len(ordered))
	for i, r := range ordered {
		out[i] = Rule{
			Type:         string(r.Kind),
			Conditions:   adaptConditions(r.Conditions),
			Color:        r.Color,
			IsEnabled:    true,
			Emphasized:   r.Emphasized,
			NameOverride: r.NameOverride,
			SoundID:      r.SoundID,
			BeamID:       r.BeamID,
			Order:        i,
		}
	}

	return &ItemFilter{
		XSI:                   xsiNamespace,
		Name:                  name,
		FilterIcon:            defaultFilterIcon,
		FilterIconColor:       defaultFilterIconColor,
		Description:           description,
		LastModifiedInVersion: gameVersion,
		LootFilterVersion:     lootFilterVersion,
		Rules:                 out,
	}
}

func adaptConditions(conditions []filter.Condition) []Condition {
	out := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		out = append(out, adaptCondition(c))
	}
	return out
}

func adaptCondition(c filter.Condition) Condition {
	switch v := c.(type) {
	case filter.RarityCondition:
		return Condition{
			Type:                  v.ConditionType(),
			Rarities:              rarityStrings(v.Rarities),
			MinLegendaryPotential: v.MinLegendaryPotential,
			MaxLegendaryPotential: v.MaxLegendaryPotential,
			MinWeaversWill:        v.MinWeaversWill,
			MaxWeaversWill:        v.MaxWeaversWill,
		}
	case filter.AffixCondition:
		return Condition{
			Type:               v.ConditionType(),
			Affixes:            v.Affixes,
			Comparison:         string(v.Comparison),
			ComparisonValue:    v.ComparisonValue,
			MinOnSameItem:      v.MinOnSameItem,
			CombinedComparison: string(v.CombinedCompare),
			CombinedValue:      v.CombinedValue,
			Advanced:           v.AdvancedComparison,
		}
	case filter.SubTypeCondition:
		return Condition{
			Type:           v.ConditionType(),
			EquipmentTypes: equipmentStrings(v.EquipmentTypes),
			SubTypes:       v.SubTypes,
		}
	case filter.ClassCondition:
		return Condition{
			Type:    v.ConditionType(),
			Classes: classStrings(v.Classes),
		}
	case filter.LevelCondition:
		return Condition{
			Type:       v.ConditionType(),
			MinimumLvl: v.MinimumLvl,
			MaximumLvl: v.MaximumLvl,
		}
	default:
		return Condition{Type: c.ConditionType()}
	}
}

func rarityStrings(in []filter.Rarity) []string {
	out := make([]string, len(in))
	for i, r := range in {
		out[i] = string(r)
	}
	return out
}

func equipmentStrings(in []filter.EquipmentType) []string {
	out := make([]string, len(in))
	for i, t := range in {
		out[i] = string(t)
	}
	return out
}

func classStrings(in []filter.CharacterClass) []string {
	out := make([]string, len(in))
	for i, c := range in {
		out[i] = string(c)
	}
	return out
}
