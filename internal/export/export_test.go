// File path: internal/export/export_test.go
package export

import (
	"strings"
	"testing"

	"github.com/Artzzx/lootforge/internal/filter"
)

func intPtr(v int) *int { return &v }

func TestBuildOrdersByPriority(t *testing.T) {
	rules := []filter.CompiledRule{
		{ID: 1, Kind: filter.RuleHide, Priority: 20, NameOverride: "low"},
		{ID: 2, Kind: filter.RuleShow, Priority: 100, NameOverride: "top"},
		{ID: 3, Kind: filter.RuleShow, Priority: 70, NameOverride: "mid"},
		{ID: 4, Kind: filter.RuleShow, Priority: 70, NameOverride: "mid2"},
	}
	doc := Build("Test", "desc", rules)

	wantNames := []string{"top", "mid", "mid2", "low"}
	for i, rule := range doc.Rules {
		if rule.NameOverride != wantNames[i] {
			t.Fatalf("position %d: got %q, want %q", i, rule.NameOverride, wantNames[i])
		}
		if rule.Order != i {
			t.Fatalf("position %d: order %d", i, rule.Order)
		}
		if !rule.IsEnabled {
			t.Fatalf("position %d: rules must be enabled", i)
		}
	}
	// Equal priorities keep generation order (stable sort).
	if doc.Rules[1].NameOverride != "mid" || doc.Rules[2].NameOverride != "mid2" {
		t.Fatal("stable ordering violated for equal priorities")
	}
}

func TestBuildDocumentMetadata(t *testing.T) {
	doc := Build("Necromancer - Very Strict", "generated", nil)
	if doc.LootFilterVersion != 5 {
		t.Fatalf("loot filter version: got %d, want 5", doc.LootFilterVersion)
	}
	if doc.LastModifiedInVersion == "" || doc.Name != "Necromancer - Very Strict" {
		t.Fatalf("metadata incomplete: %+v", doc)
	}
}

func TestMarshalRarityCondition(t *testing.T) {
	doc := Build("Test", "", []filter.CompiledRule{{
		Kind: filter.RuleShow,
		Conditions: []filter.Condition{
			filter.RarityCondition{
				Rarities:              []filter.Rarity{filter.RarityUnique, filter.RarityLegendary},
				MinLegendaryPotential: intPtr(2),
			},
		},
		Priority: 90,
	}})
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	xml := string(out)

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<ItemFilter xmlns:i="http://www.w3.org/2001/XMLSchema-instance">`,
		`<lootFilterVersion>5</lootFilterVersion>`,
		`i:type="RarityCondition"`,
		`<rarity>UNIQUE LEGENDARY</rarity>`,
		`<minLegendaryPotential>2</minLegendaryPotential>`,
		`<maxLegendaryPotential i:nil="true">`,
		`<minWeaversWill i:nil="true">`,
		`<type>SHOW</type>`,
	} {
		if !strings.Contains(xml, want) {
			t.Fatalf("output missing %q:\n%s", want, xml)
		}
	}
}

func TestMarshalAffixAndLevelConditions(t *testing.T) {
	doc := Build("Test", "", []filter.CompiledRule{
		{
			Kind: filter.RuleShow,
			Conditions: []filter.Condition{
				filter.AffixCondition{
					Affixes:         []int{31, 41, 42},
					Comparison:      filter.CompareAny,
					ComparisonValue: 2,
					MinOnSameItem:   2,
					CombinedCompare: filter.CompareAny,
				},
			},
			Priority: 70,
		},
		{
			Kind: filter.RuleHide,
			Conditions: []filter.Condition{
				filter.LevelCondition{MinimumLvl: 26, MaximumLvl: 100},
			},
			Priority: 55,
		},
	})
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	xml := string(out)

	for _, want := range []string{
		`i:type="AffixCondition"`,
		`<affixes>31 41 42</affixes>`,
		`<minOnTheSameItem>2</minOnTheSameItem>`,
		`<comparison>ANY</comparison>`,
		`i:type="CharacterLevelCondition"`,
		`<minimumLvl>26</minimumLvl>`,
		`<maximumLvl>100</maximumLvl>`,
		`<type>HIDE</type>`,
	} {
		if !strings.Contains(xml, want) {
			t.Fatalf("output missing %q:\n%s", want, xml)
		}
	}
}

func TestMarshalSubTypeAndClassConditions(t *testing.T) {
	doc := Build("Test", "", []filter.CompiledRule{{
		Kind: filter.RuleShow,
		Conditions: []filter.Condition{
			filter.SubTypeCondition{EquipmentTypes: []filter.EquipmentType{filter.EquipIdol2x2}},
			filter.ClassCondition{Classes: []filter.CharacterClass{filter.ClassMage, filter.ClassRogue}},
		},
		Priority: 45,
	}})
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	xml := string(out)

	for _, want := range []string{
		`i:type="SubTypeCondition"`,
		`<equipmentTypes>IDOL_2x2</equipmentTypes>`,
		`i:type="ClassCondition"`,
		`<classes>Mage Rogue</classes>`,
	} {
		if !strings.Contains(xml, want) {
			t.Fatalf("output missing %q:\n%s", want, xml)
		}
	}
}
