// File path: internal/compiler/compile_test.go
package compiler

import (
	"testing"

	"github.com/Artzzx/lootforge/internal/filter"
	"github.com/Artzzx/lootforge/internal/kb"
)

func testCompiler() *Compiler {
	knowledge := &kb.KnowledgeBase{
		Version:     "1.0",
		GeneratedAt: "2026-08-01T00:00:00Z",
		Builds: map[string]kb.BuildEntry{
			"necromancer_minion": {
				Mastery:     "necromancer",
				DamageTypes: "necrotic,physical",
				Confidence:  "high",
				Phases: map[filter.Phase][]kb.AffixWeight{
					filter.PhaseEndgame: {
						{AffixID: 70, Weight: 90},
						{AffixID: 71, Weight: 82},
						{AffixID: 33, Weight: 78},
						{AffixID: 31, Weight: 62},
						{AffixID: 41, Weight: 40},
						{AffixID: 27, Weight: 55},
						{AffixID: 54, Weight: 10},
					},
				},
			},
		},
	}
	recs := &kb.Recommendations{
		GeneratedAt: "2026-08-01T00:00:00Z",
		Builds: map[string]kb.RecBuild{
			"necro_minion": {
				Mastery:   "necromancer",
				Archetype: "minion",
				Uniques:   []kb.UniqueRec{{Name: "Aaron's Will", Slot: "body"}},
				Bases:     []kb.BaseRec{{Name: "Noble Raiment", Slot: "body"}},
				Idols:     []kb.IdolRec{{Affix: 70, Size: "large", Slot: "idol"}},
			},
		},
	}
	return New(kb.NewStoreFromData(knowledge, recs), nil)
}

func necromancerInput() UserInput {
	return UserInput{
		Mastery:     "necromancer",
		DamageTypes: []string{"necrotic", "physical"},
		Progress:    "empowered_monolith",
		Archetype:   "minion",
	}
}

func TestCompileNecromancer(t *testing.T) {
	comp := testCompiler()
	result, err := comp.Compile(necromancerInput())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if result.RulesGenerated == 0 || result.RulesGenerated != len(result.Rules) {
		t.Fatalf("rule accounting broken: %d vs %d", result.RulesGenerated, len(result.Rules))
	}
	if len(result.Rules) > filter.MaxRules {
		t.Fatalf("rule cap violated: %d", len(result.Rules))
	}
	if result.Specificity != kb.SpecificityExact {
		t.Fatalf("specificity: got %v, want exact", result.Specificity)
	}
	if result.Strictness != "very-strict" {
		t.Fatalf("strictness: got %s", result.Strictness)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}

	// Ids are sequential from 1.
	for i, rule := range result.Rules {
		if rule.ID != i+1 {
			t.Fatalf("rule %d: id %d", i, rule.ID)
		}
	}

	// The legendary rule is always present at the top priority.
	found := false
	for _, rule := range result.Rules {
		if rule.Priority == filter.PriorityLegendary && rule.Kind == filter.RuleShow {
			found = true
		}
	}
	if !found {
		t.Fatal("missing legendary rule")
	}
}

func TestCompileUniqueLPTiers(t *testing.T) {
	comp := testCompiler()
	result, err := comp.Compile(necromancerInput())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// very-strict has an LP floor of 2, so three descending tiers.
	lpRules := 0
	for _, rule := range result.Rules {
		for _, cond := range rule.Conditions {
			rc, ok := cond.(filter.RarityCondition)
			if ok && len(rc.Rarities) == 1 && rc.Rarities[0] == filter.RarityUnique && rc.MinLegendaryPotential != nil {
				lpRules++
			}
		}
	}
	if lpRules != 3 {
		t.Fatalf("LP-bounded unique rules: got %d, want 3", lpRules)
	}
}

func TestCompileSeeded(t *testing.T) {
	comp := testCompiler()
	result, err := comp.CompileSeeded(necromancerInput(), 100)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if result.Rules[0].ID != 100 {
		t.Fatalf("seeded first id: got %d, want 100", result.Rules[0].ID)
	}
	// Re-seeding restarts the sequence; compiles do not share a counter.
	again, err := comp.CompileSeeded(necromancerInput(), 100)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if again.Rules[0].ID != 100 {
		t.Fatalf("counter leaked across compiles: got %d", again.Rules[0].ID)
	}
}

func TestCompileEmptyKnowledge(t *testing.T) {
	comp := New(kb.NewStoreFromData(&kb.KnowledgeBase{Version: "1.0", Builds: map[string]kb.BuildEntry{}}, nil), nil)
	result, err := comp.Compile(UserInput{Mastery: "sorcerer", Progress: "campaign"})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if result.Specificity != kb.SpecificityNone {
		t.Fatalf("specificity: got %v, want 0", result.Specificity)
	}
	if len(result.Warnings) == 0 {
		t.Fatal("expected degradation warnings")
	}
	// Structural rules still come out.
	if result.RulesGenerated == 0 {
		t.Fatal("expected structural rules despite empty knowledge")
	}
}

func TestCompileExcludesFillerAffixes(t *testing.T) {
	comp := testCompiler()
	result, err := comp.Compile(necromancerInput())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// Affix 54 (dodge) carries weight 10, below the useful cutoff. It must
	// be counted as dropped and never referenced by any rule condition.
	if result.AffixesDropped == 0 {
		t.Fatal("filler affix was not counted as dropped")
	}
	for _, rule := range result.Rules {
		for _, cond := range rule.Conditions {
			ac, ok := cond.(filter.AffixCondition)
			if !ok {
				continue
			}
			for _, id := range ac.Affixes {
				if id == 54 {
					t.Fatalf("filler affix leaked into rule %q", rule.NameOverride)
				}
			}
		}
	}
}

func TestPropagateOnlyEnrichesMatchedAffixes(t *testing.T) {
	comp := testCompiler()
	in := []kb.AffixWeight{{AffixID: 6, Weight: 90}}
	out := comp.propagate(in)
	// Crit chance synergizes with crit multi, but the boost must not invent
	// an affix the knowledge data never matched.
	if len(out) != 1 || out[0].AffixID != 6 {
		t.Fatalf("propagate changed the matched set: %+v", out)
	}
}

func TestCompileSorcererLeveling(t *testing.T) {
	comp := testCompiler()
	result, err := comp.Compile(UserInput{
		Mastery:     "sorcerer",
		DamageTypes: []string{"fire"},
		Progress:    "campaign",
	})
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if result.Strictness != "regular" {
		t.Fatalf("strictness: got %s", result.Strictness)
	}
	// Campaign filters hide low-rarity clutter past the leveling window.
	hides := 0
	for _, rule := range result.Rules {
		if rule.Kind != filter.RuleHide || rule.Priority != filter.PriorityLeveling && rule.Priority != filter.PriorityLeveling-1 {
			continue
		}
		for _, cond := range rule.Conditions {
			if lc, ok := cond.(filter.LevelCondition); ok {
				if lc.MinimumLvl <= 1 || lc.MaximumLvl != 100 {
					t.Fatalf("leveling window malformed: %+v", lc)
				}
				hides++
			}
		}
	}
	if hides != 2 {
		t.Fatalf("leveling hide rules: got %d, want 2", hides)
	}
}

func TestCompileUnknownMastery(t *testing.T) {
	comp := testCompiler()
	if _, err := comp.Compile(UserInput{Mastery: "deathknight"}); err == nil {
		t.Fatal("expected error for unknown mastery")
	}
}

func TestCompileZeroesMeleeForMinionBuild(t *testing.T) {
	comp := testCompiler()
	result, err := comp.Compile(necromancerInput())
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	// Affix 27 (melee damage) fails its prerequisite for a spell-attacking
	// minion build and must never appear in an affix condition.
	for _, rule := range result.Rules {
		for _, cond := range rule.Conditions {
			ac, ok := cond.(filter.AffixCondition)
			if !ok {
				continue
			}
			// Threshold rules legitimately reference defensive sets; only
			// build-affix rules matter here.
			if rule.Priority == filter.PriorityThreshold || rule.Priority == filter.PriorityThreshold-1 {
				continue
			}
			for _, id := range ac.Affixes {
				if id == 27 {
					t.Fatalf("zeroed melee affix leaked into rule %q", rule.NameOverride)
				}
			}
		}
	}
}
