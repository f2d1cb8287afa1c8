// File path: internal/compiler/context_test.go
package compiler

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Artzzx/lootforge/internal/filter"
)

func TestResolveNecromancerEndgame(t *testing.T) {
	ctx, err := Resolve(UserInput{
		Mastery:     "Necromancer",
		DamageTypes: []string{"Necrotic", " Physical "},
		Progress:    "empowered_monolith",
		Archetype:   "minion",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ctx.BaseClass != filter.ClassAcolyte {
		t.Fatalf("base class: got %s, want Acolyte", ctx.BaseClass)
	}
	if ctx.Phase != filter.PhaseEndgame {
		t.Fatalf("phase: got %s, want endgame", ctx.Phase)
	}
	if ctx.Strictness.ID != "very-strict" {
		t.Fatalf("strictness: got %s, want very-strict", ctx.Strictness.ID)
	}
	if !ctx.UsesMinions {
		t.Fatal("minion archetype must set UsesMinions")
	}
	if ctx.AttackType != AttackSpell {
		t.Fatalf("attack type: got %s, want spell", ctx.AttackType)
	}
	if !reflect.DeepEqual(ctx.DamageTypes, []string{"necrotic", "physical"}) {
		t.Fatalf("damage types not normalized: %v", ctx.DamageTypes)
	}
}

func TestResolveSorcererCampaign(t *testing.T) {
	ctx, err := Resolve(UserInput{Mastery: "sorcerer", Progress: "campaign"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ctx.BaseClass != filter.ClassMage || ctx.Phase != filter.PhaseStarter {
		t.Fatalf("unexpected context: class=%s phase=%s", ctx.BaseClass, ctx.Phase)
	}
	if ctx.Strictness.ID != "regular" {
		t.Fatalf("strictness: got %s, want regular", ctx.Strictness.ID)
	}
	if ctx.UsesMinions || ctx.AttackType != "" {
		t.Fatal("no archetype must leave attack fields empty")
	}
	if ctx.CrossClassThreshold != DefaultCrossClassThreshold {
		t.Fatalf("threshold default: got %d", ctx.CrossClassThreshold)
	}
}

func TestResolveUnknownMastery(t *testing.T) {
	_, err := Resolve(UserInput{Mastery: "deathknight"})
	if err == nil {
		t.Fatal("expected error")
	}
	var unknown *UnknownMasteryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownMasteryError, got %T", err)
	}
	if !strings.Contains(err.Error(), "necromancer") {
		t.Fatalf("error must enumerate valid masteries: %q", err)
	}
}

func TestResolveUnknownProgressFallsBack(t *testing.T) {
	ctx, err := Resolve(UserInput{Mastery: "paladin", Progress: "ascended"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ctx.Progress != ProgressCampaign || ctx.Phase != filter.PhaseStarter {
		t.Fatalf("unknown progress must fall back: progress=%s phase=%s", ctx.Progress, ctx.Phase)
	}
	if ctx.Strictness.ID != "regular" {
		t.Fatalf("strictness: got %s, want regular", ctx.Strictness.ID)
	}
}

func TestResolveStrictnessOverride(t *testing.T) {
	ctx, err := Resolve(UserInput{Mastery: "paladin", Progress: "pinnacle", Strictness: "regular"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ctx.Strictness.ID != "regular" {
		t.Fatalf("explicit strictness must win: got %s", ctx.Strictness.ID)
	}

	ctx, err = Resolve(UserInput{Mastery: "paladin", Progress: "pinnacle", Strictness: "bogus"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if ctx.Strictness.ID != "giga-strict" {
		t.Fatalf("unknown strictness must derive from progress: got %s", ctx.Strictness.ID)
	}
}

func TestResolvePure(t *testing.T) {
	input := UserInput{
		Mastery:     "marksman",
		DamageTypes: []string{"physical"},
		Progress:    "monolith",
		Archetype:   "ranged",
	}
	first, err := Resolve(input)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := Resolve(input)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("resolving the same input twice must yield identical contexts")
	}
}

func TestFactsOmitUnresolvedFields(t *testing.T) {
	ctx, err := Resolve(UserInput{Mastery: "druid"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	facts := ctx.Facts()
	if _, ok := facts["build.attackType"]; ok {
		t.Fatal("attackType must be absent without an archetype")
	}
	if _, ok := facts["build.damageTypes"]; ok {
		t.Fatal("damageTypes must be absent when none requested")
	}
	if got := facts["build.usesMinions"]; len(got) != 1 || got[0] != "false" {
		t.Fatalf("usesMinions fact: %v", got)
	}
}

func TestOtherClasses(t *testing.T) {
	ctx, err := Resolve(UserInput{Mastery: "shaman"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	others := ctx.OtherClasses()
	if len(others) != 4 {
		t.Fatalf("expected 4 other classes, got %d", len(others))
	}
	for _, c := range others {
		if c == filter.ClassPrimalist {
			t.Fatal("own class leaked into OtherClasses")
		}
	}
}
