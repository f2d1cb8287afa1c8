// File path: internal/compiler/prereq_test.go
package compiler

import (
	"reflect"
	"testing"

	"github.com/Artzzx/lootforge/internal/graph"
	"github.com/Artzzx/lootforge/internal/kb"
)

func spellContext(t *testing.T) *BuildContext {
	t.Helper()
	ctx, err := Resolve(UserInput{
		Mastery:     "sorcerer",
		DamageTypes: []string{"fire"},
		Progress:    "monolith",
		Archetype:   "spell",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return ctx
}

func TestApplyPrerequisitesZeroesFailedGates(t *testing.T) {
	ctx := spellContext(t)
	affixes := []kb.AffixWeight{
		{AffixID: graph.AffixSpellDamage, Weight: 90, Category: kb.CategoryEssential},
		{AffixID: graph.AffixMeleeDamage, Weight: 80, Category: kb.CategoryEssential},
		{AffixID: graph.AffixHealth, Weight: 60, Category: kb.CategoryStrong},
	}
	filtered := ApplyPrerequisites(affixes, ctx, graph.Default())

	if len(filtered) != len(affixes) {
		t.Fatalf("length changed: got %d, want %d", len(filtered), len(affixes))
	}
	if filtered[0].Weight != 90 {
		t.Fatalf("spell damage must survive for spell build: %v", filtered[0].Weight)
	}
	if filtered[1].Weight != 0 {
		t.Fatalf("melee damage must zero for spell build: %v", filtered[1].Weight)
	}
	if filtered[1].Category != kb.CategoryEssential {
		t.Fatal("category metadata must stay untouched on zeroed affixes")
	}
	if filtered[2].Weight != 60 {
		t.Fatalf("ungated affix must survive: %v", filtered[2].Weight)
	}
	if affixes[1].Weight != 80 {
		t.Fatal("input slice must not be mutated")
	}
}

func TestApplyPrerequisitesIdempotent(t *testing.T) {
	ctx := spellContext(t)
	affixes := []kb.AffixWeight{
		{AffixID: graph.AffixMeleeDamage, Weight: 80},
		{AffixID: graph.AffixSpellDamage, Weight: 70},
		{AffixID: graph.AffixMinionDamage, Weight: 65},
	}
	once := ApplyPrerequisites(affixes, ctx, graph.Default())
	twice := ApplyPrerequisites(once, ctx, graph.Default())
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("not idempotent: %v vs %v", once, twice)
	}
}

func TestApplyPrerequisitesChannellingSafeDefault(t *testing.T) {
	ctx := spellContext(t)
	// Channelling is not modeled in the build context, so its gate must
	// pass.
	affixes := []kb.AffixWeight{
		{AffixID: graph.AffixChannelDamage, Weight: 70},
		{AffixID: graph.AffixChannelCost, Weight: 55},
	}
	filtered := ApplyPrerequisites(affixes, ctx, graph.Default())
	if filtered[0].Weight != 70 || filtered[1].Weight != 55 {
		t.Fatalf("unmodeled predicate zeroed weights: %v", filtered)
	}
}

func TestApplyPrerequisitesClassGating(t *testing.T) {
	ctx := spellContext(t)
	// Minion affixes are gated to Acolyte and Primalist; a Mage loses them
	// even though usesMinions is the only condition on the graph edge.
	affixes := []kb.AffixWeight{
		{AffixID: graph.AffixMinionDamage, Weight: 85},
	}
	filtered := ApplyPrerequisites(affixes, ctx, graph.Default())
	if filtered[0].Weight != 0 {
		t.Fatalf("class-gated affix must zero for Mage: %v", filtered[0].Weight)
	}

	necro, err := Resolve(UserInput{Mastery: "necromancer", Archetype: "minion", Progress: "monolith"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	filtered = ApplyPrerequisites(affixes, necro, graph.Default())
	if filtered[0].Weight != 85 {
		t.Fatalf("minion affix must survive for minion Acolyte: %v", filtered[0].Weight)
	}
}

func TestApplyPrerequisitesMeleeBuildKeepsMelee(t *testing.T) {
	ctx, err := Resolve(UserInput{Mastery: "void knight", Archetype: "melee", Progress: "monolith"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	affixes := []kb.AffixWeight{
		{AffixID: graph.AffixMeleeDamage, Weight: 88},
		{AffixID: graph.AffixSpellDamage, Weight: 44},
	}
	filtered := ApplyPrerequisites(affixes, ctx, graph.Default())
	if filtered[0].Weight != 88 {
		t.Fatalf("melee must survive melee build: %v", filtered[0].Weight)
	}
	if filtered[1].Weight != 0 {
		t.Fatalf("spell damage must zero for melee build: %v", filtered[1].Weight)
	}
}
