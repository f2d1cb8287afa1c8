// File path: internal/compiler/context.go
package compiler

import (
	"fmt"
	"strings"

	"github.com/Artzzx/lootforge/internal/filter"
	"github.com/Artzzx/lootforge/internal/graph"
)

// Progress enumerates the fine-grained game-progress stages accepted on
// input. Phases are derived from these.
type Progress string

const (
	ProgressCampaign       Progress = "campaign"
	ProgressMonolith       Progress = "monolith"
	ProgressEmpowered      Progress = "empowered_monolith"
	ProgressHighCorruption Progress = "high_corruption"
	ProgressPinnacle       Progress = "pinnacle"
)

// Archetype enumerates the optional playstyle hint.
type Archetype string

const (
	ArchetypeMelee  Archetype = "melee"
	ArchetypeSpell  Archetype = "spell"
	ArchetypeDot    Archetype = "dot"
	ArchetypeMinion Archetype = "minion"
	ArchetypeRanged Archetype = "ranged"
)

// AttackType is the resolved delivery mechanism; empty when the archetype
// was not supplied.
type AttackType string

const (
	AttackMelee AttackType = "melee"
	AttackSpell AttackType = "spell"
	AttackBow   AttackType = "bow"
)

// DefaultCrossClassThreshold is the minimum affix weight a cross-class item
// must carry before the cross-class rule shows it.
const DefaultCrossClassThreshold = 75

// UserInput is the raw compile request. Created once per request and never
// mutated; Resolve derives everything else.
type UserInput struct {
	Mastery             string   `json:"mastery"`
	DamageTypes         []string `json:"damage_types"`
	Progress            string   `json:"progress"`
	Archetype           string   `json:"archetype,omitempty"`
	Strictness          string   `json:"strictness,omitempty"`
	ResistancesCapped   bool     `json:"resistances_capped,omitempty"`
	ShowCrossClass      bool     `json:"show_cross_class,omitempty"`
	CrossClassThreshold int      `json:"cross_class_threshold,omitempty"`
}

// BuildContext is the validated, enriched context threaded through every
// pipeline stage. Immutable after Resolve.
type BuildContext struct {
	Mastery     string
	BaseClass   filter.CharacterClass
	DamageTypes []string
	Progress    Progress
	Phase       filter.Phase
	Archetype   Archetype
	AttackType  AttackType
	UsesMinions bool
	Strictness  filter.StrictnessConfig

	ResistancesCapped   bool
	ShowCrossClass      bool
	CrossClassThreshold int
}

// UnknownMasteryError reports a mastery string that resolves to no base
// class. The message enumerates the valid set so front ends can surface it
// directly.
type UnknownMasteryError struct {
	Mastery string
}

func (e *UnknownMasteryError) Error() string {
	return fmt.Sprintf("unknown mastery %q; valid masteries: %s",
		e.Mastery, strings.Join(filter.Masteries(), ", "))
}

var progressPhases = map[Progress]filter.Phase{
	ProgressCampaign:       filter.PhaseStarter,
	ProgressMonolith:       filter.PhaseEndgame,
	ProgressEmpowered:      filter.PhaseEndgame,
	ProgressHighCorruption: filter.PhaseAspirational,
	ProgressPinnacle:       filter.PhaseAspirational,
}

var progressStrictness = map[Progress]string{
	ProgressCampaign:       "regular",
	ProgressMonolith:       "strict",
	ProgressEmpowered:      "very-strict",
	ProgressHighCorruption: "uber-strict",
	ProgressPinnacle:       "giga-strict",
}

var archetypeAttack = map[Archetype]AttackType{
	ArchetypeMelee:  AttackMelee,
	ArchetypeSpell:  AttackSpell,
	ArchetypeDot:    AttackSpell,
	ArchetypeMinion: AttackSpell,
	ArchetypeRanged: AttackBow,
}

// Resolve normalizes and validates raw input into a BuildContext. Pure: no
// I/O, and resolving the same input twice yields the same context. Fails
// only when the mastery is unknown.
func Resolve(input UserInput) (*BuildContext, error) {
	mastery := norm(input.Mastery)
	baseClass, ok := filter.MasteryClass(mastery)
	if !ok {
		return nil, &UnknownMasteryError{Mastery: mastery}
	}

	damageTypes := make([]string, 0, len(input.DamageTypes))
	for _, dt := range input.DamageTypes {
		if trimmed := norm(dt); trimmed != "" {
			damageTypes = append(damageTypes, trimmed)
		}
	}

	progress := Progress(norm(input.Progress))
	phase, ok := progressPhases[progress]
	if !ok {
		// Unrecognised stages compile with the most permissive assumptions
		// rather than failing.
		progress = ProgressCampaign
		phase = filter.PhaseStarter
	}

	archetype := Archetype(norm(input.Archetype))
	attackType := archetypeAttack[archetype]

	strictnessID := norm(input.Strictness)
	if strictnessID == "" || !filter.KnownStrictness(strictnessID) {
		strictnessID = progressStrictness[progress]
	}

	threshold := input.CrossClassThreshold
	if threshold <= 0 {
		threshold = DefaultCrossClassThreshold
	}

	return &BuildContext{
		Mastery:             mastery,
		BaseClass:           baseClass,
		DamageTypes:         damageTypes,
		Progress:            progress,
		Phase:               phase,
		Archetype:           archetype,
		AttackType:          attackType,
		UsesMinions:         archetype == ArchetypeMinion,
		Strictness:          filter.Strictness(strictnessID),
		ResistancesCapped:   input.ResistancesCapped,
		ShowCrossClass:      input.ShowCrossClass,
		CrossClassThreshold: threshold,
	}, nil
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Facts projects the context into the predicate namespace the prerequisite
// condition language evaluates against. Fields without a resolved value are
// omitted entirely, which makes predicates over them unmodeled (and
// therefore satisfied by default).
func (c *BuildContext) Facts() graph.Facts {
	facts := graph.Facts{
		"build.mastery":     {c.Mastery},
		"build.baseClass":   {strings.ToLower(string(c.BaseClass))},
		"build.phase":       {string(c.Phase)},
		"build.progress":    {string(c.Progress)},
		"build.usesMinions": {fmt.Sprintf("%t", c.UsesMinions)},
	}
	if c.AttackType != "" {
		facts["build.attackType"] = []string{string(c.AttackType)}
	}
	if c.Archetype != "" {
		facts["build.archetype"] = []string{string(c.Archetype)}
	}
	if len(c.DamageTypes) > 0 {
		facts["build.damageTypes"] = c.DamageTypes
		facts["build.damageType"] = c.DamageTypes
	}
	return facts
}

// OtherClasses lists every base class except the context's own.
func (c *BuildContext) OtherClasses() []filter.CharacterClass {
	out := make([]filter.CharacterClass, 0, 4)
	for _, class := range filter.BaseClasses() {
		if class != c.BaseClass {
			out = append(out, class)
		}
	}
	return out
}

// PrimaryDamage returns the first requested damage type, used for color
// theming.
func (c *BuildContext) PrimaryDamage() filter.DamageType {
	if len(c.DamageTypes) == 0 {
		return ""
	}
	return filter.DamageType(c.DamageTypes[0])
}
