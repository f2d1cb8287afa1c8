// File path: internal/kb/matcher_test.go
package kb

import (
	"testing"

	"github.com/Artzzx/lootforge/internal/filter"
)

func testKnowledge() *KnowledgeBase {
	return &KnowledgeBase{
		Version:     "1.0",
		GeneratedAt: "2026-08-01T00:00:00Z",
		Builds: map[string]BuildEntry{
			"necromancer_minion": {
				Mastery:     "necromancer",
				DamageTypes: "necrotic,physical",
				Confidence:  "high",
				Phases: map[filter.Phase][]AffixWeight{
					filter.PhaseEndgame: {
						{AffixID: 70, Weight: 90},
						{AffixID: 71, Weight: 80},
						{AffixID: 31, Weight: 60},
					},
				},
			},
			"lich_dot": {
				Mastery:     "lich",
				DamageTypes: "necrotic",
				Confidence:  "medium",
				Phases: map[filter.Phase][]AffixWeight{
					filter.PhaseEndgame: {
						{AffixID: 36, Weight: 85},
						{AffixID: 31, Weight: 70},
					},
				},
			},
			"sorcerer_fire": {
				Mastery:     "sorcerer",
				DamageTypes: "fire",
				Confidence:  "low",
				Phases: map[filter.Phase][]AffixWeight{
					filter.PhaseStarter: {
						{AffixID: 10, Weight: 80},
					},
					filter.PhaseEndgame: {
						{AffixID: 10, Weight: 88},
						{AffixID: 13, Weight: 76},
					},
				},
			},
		},
	}
}

func TestMatchSpecificityCascade(t *testing.T) {
	knowledge := testKnowledge()
	cases := []struct {
		name  string
		query Query
		want  float64
	}{
		{"exact", Query{Mastery: "necromancer", BaseClass: filter.ClassAcolyte, DamageTypes: []string{"necrotic"}, Phase: filter.PhaseEndgame}, SpecificityExact},
		{"partial", Query{Mastery: "necromancer", BaseClass: filter.ClassAcolyte, DamageTypes: []string{"necrotic", "cold"}, Phase: filter.PhaseEndgame}, SpecificityPartial},
		{"mastery only", Query{Mastery: "necromancer", BaseClass: filter.ClassAcolyte, DamageTypes: []string{"lightning"}, Phase: filter.PhaseEndgame}, SpecificityMastery},
		{"class fallback", Query{Mastery: "warlock", BaseClass: filter.ClassAcolyte, DamageTypes: []string{"fire"}, Phase: filter.PhaseEndgame}, SpecificityClass},
		{"universal fallback", Query{Mastery: "paladin", BaseClass: filter.ClassSentinel, DamageTypes: []string{"void"}, Phase: filter.PhaseEndgame}, SpecificityUniversal},
	}
	for _, tc := range cases {
		profile := Match(knowledge, nil, tc.query)
		if profile.Specificity != tc.want {
			t.Fatalf("%s: specificity %v, want %v", tc.name, profile.Specificity, tc.want)
		}
		if len(profile.Affixes) == 0 {
			t.Fatalf("%s: expected merged affixes", tc.name)
		}
	}
}

func TestMatchCascadeMonotonicity(t *testing.T) {
	knowledge := testKnowledge()
	// Adding detail to the query must never lower the score below a vaguer
	// query's score for the same mastery.
	vague := Match(knowledge, nil, Query{Mastery: "necromancer", BaseClass: filter.ClassAcolyte, Phase: filter.PhaseEndgame})
	precise := Match(knowledge, nil, Query{Mastery: "necromancer", BaseClass: filter.ClassAcolyte, DamageTypes: []string{"necrotic", "physical"}, Phase: filter.PhaseEndgame})
	if precise.Specificity < vague.Specificity {
		t.Fatalf("precision lowered specificity: %v < %v", precise.Specificity, vague.Specificity)
	}
}

func TestMatchEmptyKnowledge(t *testing.T) {
	for _, knowledge := range []*KnowledgeBase{nil, {Version: "1.0", Builds: map[string]BuildEntry{}}} {
		profile := Match(knowledge, nil, Query{Mastery: "necromancer", BaseClass: filter.ClassAcolyte, Phase: filter.PhaseEndgame})
		if profile.Specificity != SpecificityNone {
			t.Fatalf("empty kb specificity: got %v, want 0", profile.Specificity)
		}
		if profile.Confidence != ConfidenceLow {
			t.Fatalf("empty kb confidence: got %q, want low", profile.Confidence)
		}
		if len(profile.Affixes) != 0 {
			t.Fatal("empty kb must yield no affixes")
		}
	}
}

func TestMergeKeepsMaxWeight(t *testing.T) {
	knowledge := testKnowledge()
	// Class fallback merges necromancer_minion and lich_dot, which share
	// affix 31 at weights 60 and 70.
	profile := Match(knowledge, nil, Query{Mastery: "warlock", BaseClass: filter.ClassAcolyte, Phase: filter.PhaseEndgame})
	var health *AffixWeight
	for i := range profile.Affixes {
		if profile.Affixes[i].AffixID == 31 {
			health = &profile.Affixes[i]
		}
	}
	if health == nil {
		t.Fatal("expected shared affix 31 in merge")
	}
	if health.Weight != 70 {
		t.Fatalf("merged weight: got %v, want 70", health.Weight)
	}
	if profile.Confidence != ConfidenceHigh {
		t.Fatalf("overall confidence: got %q, want high", profile.Confidence)
	}
}

func TestMergeSortedByWeight(t *testing.T) {
	profile := Match(testKnowledge(), nil, Query{Mastery: "necromancer", BaseClass: filter.ClassAcolyte, DamageTypes: []string{"necrotic"}, Phase: filter.PhaseEndgame})
	for i := 1; i < len(profile.Affixes); i++ {
		if profile.Affixes[i].Weight > profile.Affixes[i-1].Weight {
			t.Fatalf("affixes not sorted by weight at %d", i)
		}
	}
}

func TestPhaseFallback(t *testing.T) {
	entry := testKnowledge().Builds["necromancer_minion"]
	// Entry only carries endgame data; aspirational and starter queries fall
	// back to it.
	for _, phase := range []filter.Phase{filter.PhaseAspirational, filter.PhaseStarter, filter.PhaseEndgame} {
		if len(entry.PhaseAffixes(phase)) == 0 {
			t.Fatalf("phase %q: expected fallback affixes", phase)
		}
	}
}

func testRecommendations() *Recommendations {
	return &Recommendations{
		GeneratedAt: "2026-08-01T00:00:00Z",
		Builds: map[string]RecBuild{
			"necro_minion": {
				Mastery:   "necromancer",
				Archetype: "minion",
				Uniques:   []UniqueRec{{Name: "Aaron's Will", Slot: "body"}},
				Idols:     []IdolRec{{Affix: 70, Size: "large", Slot: "idol"}},
			},
			"necro_generic": {
				Mastery: "necromancer",
				Uniques: []UniqueRec{{Name: "Death Rattle", Slot: "amulet"}},
			},
			"lich_generic": {
				Mastery: "lich",
				Bases:   []BaseRec{{Name: "Noble Raiment", Slot: "body"}},
			},
			"universal": {
				Mastery: "paladin",
				Uniques: []UniqueRec{{Name: "Bastion of Honour", Slot: "shield", Phase: filter.PhaseEndgame}},
			},
		},
	}
}

func TestRecommendationCascadeArchetypeFirst(t *testing.T) {
	profile := Match(testKnowledge(), testRecommendations(), Query{
		Mastery: "necromancer", BaseClass: filter.ClassAcolyte,
		Phase: filter.PhaseEndgame, Archetype: "minion",
	})
	if len(profile.Uniques) != 1 || profile.Uniques[0].Name != "Aaron's Will" {
		t.Fatalf("expected archetype-level unique, got %+v", profile.Uniques)
	}
	if len(profile.Idols) != 1 {
		t.Fatalf("expected archetype-level idol, got %d", len(profile.Idols))
	}
}

func TestRecommendationCascadeMasteryLevel(t *testing.T) {
	// No archetype given: both necromancer entries merge at the mastery
	// level.
	profile := Match(testKnowledge(), testRecommendations(), Query{
		Mastery: "necromancer", BaseClass: filter.ClassAcolyte, Phase: filter.PhaseEndgame,
	})
	if len(profile.Uniques) != 2 {
		t.Fatalf("expected both mastery-level uniques, got %d", len(profile.Uniques))
	}
}

func TestRecommendationCascadeClassLevel(t *testing.T) {
	profile := Match(testKnowledge(), testRecommendations(), Query{
		Mastery: "warlock", BaseClass: filter.ClassAcolyte, Phase: filter.PhaseEndgame,
	})
	// Warlock has no entry: all Acolyte entries merge.
	if len(profile.Uniques) != 2 || len(profile.Bases) != 1 {
		t.Fatalf("class-level merge: got %d uniques, %d bases", len(profile.Uniques), len(profile.Bases))
	}
}

func TestRecommendationPhaseFilter(t *testing.T) {
	profile := Match(testKnowledge(), testRecommendations(), Query{
		Mastery: "paladin", BaseClass: filter.ClassSentinel, Phase: filter.PhaseStarter,
	})
	// Bastion of Honour is endgame-only and the query is starter.
	for _, u := range profile.Uniques {
		if u.Name == "Bastion of Honour" {
			t.Fatal("endgame-only unique leaked into starter profile")
		}
	}
}

func TestStoreCacheAndReset(t *testing.T) {
	store := NewStoreFromData(testKnowledge(), testRecommendations())
	q := Query{Mastery: "necromancer", BaseClass: filter.ClassAcolyte, Phase: filter.PhaseEndgame}
	first, err := store.Resolve(q)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := store.Resolve(q)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first != second {
		t.Fatal("expected cached profile instance")
	}
	store.Reset()
	if _, err := store.Resolve(q); err == nil {
		t.Fatal("reset store without paths must fail to reload")
	}
}
