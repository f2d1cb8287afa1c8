// File path: internal/compiler/compile.go
package compiler

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Artzzx/lootforge/internal/common"
	"github.com/Artzzx/lootforge/internal/filter"
	"github.com/Artzzx/lootforge/internal/graph"
	"github.com/Artzzx/lootforge/internal/kb"
)

// Compiler turns a user's build description into a compiled rule set. Safe
// for concurrent use; all per-request state lives on the stack.
type Compiler struct {
	store *kb.Store
	graph *graph.Graph
}

// New builds a compiler over the given knowledge store. A nil graph selects
// the built-in relationship graph.
func New(store *kb.Store, g *graph.Graph) *Compiler {
	if g == nil {
		g = graph.Default()
	}
	return &Compiler{store: store, graph: g}
}

// Result is one compile outcome: the rules plus everything a caller needs to
// explain how they were derived.
type Result struct {
	FilterName     string                `json:"filter_name"`
	Description    string                `json:"description"`
	Rules          []filter.CompiledRule `json:"rules"`
	RulesGenerated int                   `json:"rules_generated"`
	AffixesDropped int                   `json:"affixes_dropped"`
	Specificity    float64               `json:"specificity"`
	Confidence     kb.Confidence         `json:"confidence"`
	MatchedBuilds  []string              `json:"matched_builds,omitempty"`
	Strictness     string                `json:"strictness"`
	Warnings       []string              `json:"warnings,omitempty"`
}

// Compile runs the full pipeline: resolve context, match the knowledge base,
// propagate synergies, zero failed prerequisites, allocate the rule budget,
// then generate each reserved section. Rule ids start at 1 within every
// compile.
func (c *Compiler) Compile(input UserInput) (*Result, error) {
	return c.CompileSeeded(input, 1)
}

// CompileSeeded is Compile with an explicit first rule id. Tests use it to
// pin id sequences.
func (c *Compiler) CompileSeeded(input UserInput, idSeed int) (*Result, error) {
	ctx, err := Resolve(input)
	if err != nil {
		return nil, err
	}

	profile, err := c.store.Resolve(kb.Query{
		Mastery:     ctx.Mastery,
		BaseClass:   ctx.BaseClass,
		DamageTypes: ctx.DamageTypes,
		Phase:       ctx.Phase,
		Archetype:   string(ctx.Archetype),
	})
	if err != nil {
		return nil, fmt.Errorf("resolve build profile: %w", err)
	}

	var warnings []string
	if len(profile.Affixes) == 0 {
		warnings = append(warnings, "no affix weights matched this build; emitting structural rules only")
	}
	if len(profile.Uniques) == 0 && len(profile.Bases) == 0 && len(profile.Idols) == 0 {
		warnings = append(warnings, "no item recommendations available for this build")
	}

	boosted := c.propagate(profile.Affixes)
	filtered := ApplyPrerequisites(boosted, ctx, c.graph)
	schedule := Allocate(ctx, profile, filtered)

	ids := newRuleIDs(idSeed)
	var rules []filter.CompiledRule
	for _, section := range schedule.Sections {
		var generated []filter.CompiledRule
		switch section.Kind {
		case SectionLegendary:
			generated = genLegendary(ids)
		case SectionUniqueLP:
			generated = genUniqueLP(ctx.Strictness, ids)
		case SectionThresholds:
			generated = genThresholds(ctx, ids)
		case SectionRecUniques:
			generated = genRecommendedUniques(profile.Uniques, ids)
		case SectionExaltedBases:
			generated = genExaltedBases(profile.Bases, ctx.Strictness, ids)
		case SectionIdols:
			generated = genIdols(profile.Idols, ctx.Strictness, ids)
		case SectionRareItems:
			generated = genRareItems(ctx, schedule, ids)
		case SectionLeveling:
			generated = genLeveling(ctx.Strictness, ids)
		case SectionCrossClassShow:
			generated = genCrossClassShow(ctx, filtered, ids)
		case SectionClassHide:
			generated = genClassHide(ctx, ids)
		case SectionEssentialTier, SectionStrongTier, SectionUsefulTier:
			generated = genAffixTier(section.Kind, ctx, schedule, ids)
		default:
			common.Logger().Warn("compiler: unknown rule section", "kind", section.Kind)
		}
		rules = append(rules, generated...)
	}

	if len(rules) > filter.MaxRules {
		// Reservation estimates are upper bounds, so this is a bug, not an
		// input condition.
		return nil, fmt.Errorf("generated %d rules, exceeding the %d rule cap", len(rules), filter.MaxRules)
	}

	name := filterName(ctx)
	common.Logger().Info("compiled filter",
		"name", name,
		"mastery", ctx.Mastery,
		"strictness", ctx.Strictness.ID,
		"rules", len(rules),
		"specificity", profile.Specificity,
		"dropped", schedule.DroppedAffixes)

	return &Result{
		FilterName:     name,
		Description:    filterDescription(ctx, profile),
		Rules:          rules,
		RulesGenerated: len(rules),
		AffixesDropped: schedule.DroppedAffixes,
		Specificity:    profile.Specificity,
		Confidence:     profile.Confidence,
		MatchedBuilds:  profile.MatchedBuilds,
		Strictness:     ctx.Strictness.ID,
		Warnings:       warnings,
	}, nil
}

// propagate applies synergy boosts to the matched weights and rebuilds the
// affix list with refreshed categories. Order is preserved.
func (c *Compiler) propagate(affixes []kb.AffixWeight) []kb.AffixWeight {
	if len(affixes) == 0 {
		return nil
	}
	weights := make(map[int]float64, len(affixes))
	for _, aw := range affixes {
		weights[aw.AffixID] = aw.Weight
	}
	boosted := c.graph.PropagateSynergies(weights)

	out := make([]kb.AffixWeight, len(affixes))
	for i, aw := range affixes {
		aw.Weight = boosted[aw.AffixID]
		aw.Category = kb.Categorize(aw.Weight)
		out[i] = aw
	}
	return out
}

var titleCaser = cases.Title(language.English, cases.NoLower)

func filterName(ctx *BuildContext) string {
	mastery := titleCaser.String(strings.ReplaceAll(ctx.Mastery, "_", " "))
	if mastery == "" {
		mastery = string(ctx.BaseClass)
	}
	return fmt.Sprintf("%s - %s", mastery, ctx.Strictness.Name)
}

func filterDescription(ctx *BuildContext, profile *kb.ResolvedProfile) string {
	parts := []string{
		fmt.Sprintf("Generated loot filter for %s", titleCaser.String(strings.ReplaceAll(ctx.Mastery, "_", " "))),
	}
	if len(ctx.DamageTypes) > 0 {
		parts = append(parts, fmt.Sprintf("damage: %s", strings.Join(ctx.DamageTypes, ", ")))
	}
	parts = append(parts,
		fmt.Sprintf("progress: %s", ctx.Progress),
		fmt.Sprintf("strictness: %s", ctx.Strictness.Name),
		fmt.Sprintf("match specificity: %.2f", profile.Specificity),
	)
	return strings.Join(parts, " | ")
}
