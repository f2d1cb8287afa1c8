// File path: internal/filter/phase.go
package filter

import (
	"sort"
	"strings"
)

// Phase is the coarse game-progress bucket knowledge data is keyed by.
type Phase string

const (
	PhaseStarter      Phase = "starter"
	PhaseEndgame      Phase = "endgame"
	PhaseAspirational Phase = "aspirational"
)

// Phases lists the progress buckets in advancement order.
func Phases() []Phase {
	return []Phase{PhaseStarter, PhaseEndgame, PhaseAspirational}
}

// masteryClasses maps every mastery specialisation to its base class. Lookup
// keys are lowercase with single spaces.
var masteryClasses = map[string]CharacterClass{
	"beastmaster": ClassPrimalist,
	"shaman":      ClassPrimalist,
	"druid":       ClassPrimalist,
	"sorcerer":    ClassMage,
	"spellblade":  ClassMage,
	"runemaster":  ClassMage,
	"void knight": ClassSentinel,
	"forge guard": ClassSentinel,
	"paladin":     ClassSentinel,
	"bladedancer": ClassRogue,
	"marksman":    ClassRogue,
	"falconer":    ClassRogue,
	"necromancer": ClassAcolyte,
	"lich":        ClassAcolyte,
	"warlock":     ClassAcolyte,
}

// MasteryClass resolves a mastery name to its base class. Matching is
// case-insensitive and tolerates underscores for spaces.
func MasteryClass(mastery string) (CharacterClass, bool) {
	key := strings.ToLower(strings.TrimSpace(mastery))
	key = strings.ReplaceAll(key, "_", " ")
	key = strings.Join(strings.Fields(key), " ")
	class, ok := masteryClasses[key]
	return class, ok
}

// Masteries returns the known mastery names sorted by base class then name.
func Masteries() []string {
	out := make([]string, 0, len(masteryClasses))
	for _, class := range BaseClasses() {
		var group []string
		for name, c := range masteryClasses {
			if c == class {
				group = append(group, name)
			}
		}
		sort.Strings(group)
		out = append(out, group...)
	}
	return out
}
