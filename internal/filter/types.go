// File path: internal/filter/types.go
package filter

// RuleKind enumerates what a compiled rule does with matching items.
type RuleKind string

const (
	RuleShow      RuleKind = "SHOW"
	RuleHide      RuleKind = "HIDE"
	RuleHighlight RuleKind = "HIGHLIGHT"
)

// Rarity enumerates item rarities recognised by the in-game filter format.
type Rarity string

const (
	RarityNormal    Rarity = "NORMAL"
	RarityMagic     Rarity = "MAGIC"
	RarityRare      Rarity = "RARE"
	RarityExalted   Rarity = "EXALTED"
	RarityUnique    Rarity = "UNIQUE"
	RaritySet       Rarity = "SET"
	RarityLegendary Rarity = "LEGENDARY"
)

// ComparisonType mirrors the comparison operators supported by affix
// conditions in the wire format.
type ComparisonType string

const (
	CompareAny         ComparisonType = "ANY"
	CompareEqual       ComparisonType = "EQUAL"
	CompareLess        ComparisonType = "LESS"
	CompareLessOrEq    ComparisonType = "LESS_OR_EQUAL"
	CompareMore        ComparisonType = "MORE"
	CompareMoreOrEqual ComparisonType = "MORE_OR_EQUAL"
)

// CharacterClass enumerates the five base classes.
type CharacterClass string

const (
	ClassPrimalist CharacterClass = "Primalist"
	ClassMage      CharacterClass = "Mage"
	ClassSentinel  CharacterClass = "Sentinel"
	ClassRogue     CharacterClass = "Rogue"
	ClassAcolyte   CharacterClass = "Acolyte"
)

// BaseClasses lists every valid base class in display order.
func BaseClasses() []CharacterClass {
	return []CharacterClass{ClassPrimalist, ClassMage, ClassSentinel, ClassRogue, ClassAcolyte}
}

// DamageType enumerates build damage types.
type DamageType string

const (
	DamagePhysical  DamageType = "physical"
	DamageFire      DamageType = "fire"
	DamageCold      DamageType = "cold"
	DamageLightning DamageType = "lightning"
	DamageVoid      DamageType = "void"
	DamageNecrotic  DamageType = "necrotic"
	DamagePoison    DamageType = "poison"
)

// DamageTypes lists every recognised damage type.
func DamageTypes() []DamageType {
	return []DamageType{
		DamagePhysical, DamageFire, DamageCold, DamageLightning,
		DamageVoid, DamageNecrotic, DamagePoison,
	}
}

// EquipmentType mirrors the subtype identifiers in the wire format.
type EquipmentType string

const (
	EquipHelmet         EquipmentType = "HELMET"
	EquipBodyArmor      EquipmentType = "BODY_ARMOR"
	EquipGloves         EquipmentType = "GLOVES"
	EquipBelt           EquipmentType = "BELT"
	EquipBoots          EquipmentType = "BOOTS"
	EquipOneHandedAxe   EquipmentType = "ONE_HANDED_AXE"
	EquipOneHandedMace  EquipmentType = "ONE_HANDED_MACES"
	EquipOneHandedSword EquipmentType = "ONE_HANDED_SWORD"
	EquipDagger         EquipmentType = "ONE_HANDED_DAGGER"
	EquipSceptre        EquipmentType = "ONE_HANDED_SCEPTRE"
	EquipTwoHandedAxe   EquipmentType = "TWO_HANDED_AXE"
	EquipTwoHandedMace  EquipmentType = "TWO_HANDED_MACE"
	EquipTwoHandedSpear EquipmentType = "TWO_HANDED_SPEAR"
	EquipTwoHandedStaff EquipmentType = "TWO_HANDED_STAFF"
	EquipTwoHandedSword EquipmentType = "TWO_HANDED_SWORD"
	EquipWand           EquipmentType = "WAND"
	EquipBow            EquipmentType = "BOW"
	EquipShield         EquipmentType = "SHIELD"
	EquipQuiver         EquipmentType = "QUIVER"
	EquipCatalyst       EquipmentType = "CATALYST"
	EquipAmulet         EquipmentType = "AMULET"
	EquipRing           EquipmentType = "RING"
	EquipRelic          EquipmentType = "RELIC"
	EquipIdol1x1Eterra  EquipmentType = "IDOL_1x1_ETERRA"
	EquipIdol1x1Lagon   EquipmentType = "IDOL_1x1_LAGON"
	EquipIdol1x2        EquipmentType = "IDOL_1x2"
	EquipIdol2x1        EquipmentType = "IDOL_2x1"
	EquipIdol1x3        EquipmentType = "IDOL_1x3"
	EquipIdol3x1        EquipmentType = "IDOL_3x1"
	EquipIdol1x4        EquipmentType = "IDOL_1x4"
	EquipIdol4x1        EquipmentType = "IDOL_4x1"
	EquipIdol2x2        EquipmentType = "IDOL_2x2"
)

// IdolSize groups idol equipment slots by board footprint.
type IdolSize string

const (
	IdolSmall  IdolSize = "small"
	IdolHumble IdolSize = "humble"
	IdolStout  IdolSize = "stout"
	IdolGrand  IdolSize = "grand"
	IdolLarge  IdolSize = "large"
)

// IdolSlots maps an idol size group to the equipment subtypes it covers.
func IdolSlots(size IdolSize) []EquipmentType {
	switch size {
	case IdolSmall:
		return []EquipmentType{EquipIdol1x1Eterra, EquipIdol1x1Lagon}
	case IdolHumble:
		return []EquipmentType{EquipIdol1x2, EquipIdol2x1}
	case IdolStout:
		return []EquipmentType{EquipIdol1x3, EquipIdol3x1}
	case IdolGrand:
		return []EquipmentType{EquipIdol1x4, EquipIdol4x1}
	case IdolLarge:
		return []EquipmentType{EquipIdol2x2}
	}
	return nil
}

// IdolSizes lists size groups from smallest to largest.
func IdolSizes() []IdolSize {
	return []IdolSize{IdolSmall, IdolHumble, IdolStout, IdolGrand, IdolLarge}
}

// MaxRules is the hard ceiling on rules in a single filter. The game client
// refuses to import filters above this count.
const MaxRules = 75

// Condition is implemented by the structured rule conditions understood by
// the exporter.
type Condition interface {
	// ConditionType returns the xsi:type discriminator used in the wire
	// format.
	ConditionType() string
}

// RarityCondition matches items by rarity, optionally constrained by
// legendary potential or weaver's will ranges. Nil bounds serialise as nil
// elements in the wire format.
type RarityCondition struct {
	Rarities              []Rarity
	MinLegendaryPotential *int
	MaxLegendaryPotential *int
	MinWeaversWill        *int
	MaxWeaversWill        *int
}

func (RarityCondition) ConditionType() string { return "RarityCondition" }

// AffixCondition matches items carrying affixes from a candidate set.
type AffixCondition struct {
	Affixes            []int
	Comparison         ComparisonType
	ComparisonValue    int
	MinOnSameItem      int
	CombinedCompare    ComparisonType
	CombinedValue      int
	AdvancedComparison bool
}

func (AffixCondition) ConditionType() string { return "AffixCondition" }

// SubTypeCondition matches items by equipment type and optional subtype ids.
type SubTypeCondition struct {
	EquipmentTypes []EquipmentType
	SubTypes       []int
}

func (SubTypeCondition) ConditionType() string { return "SubTypeCondition" }

// ClassCondition matches items usable by the listed classes.
type ClassCondition struct {
	Classes []CharacterClass
}

func (ClassCondition) ConditionType() string { return "ClassCondition" }

// LevelCondition matches by character level range.
type LevelCondition struct {
	MinimumLvl int
	MaximumLvl int
}

func (LevelCondition) ConditionType() string { return "CharacterLevelCondition" }

// CompiledRule is the compiler's output unit. Immutable once produced; the
// exporter adapts it into the persisted rule shape without further logic.
type CompiledRule struct {
	ID           int
	Kind         RuleKind
	Conditions   []Condition
	Color        int
	SoundID      int
	BeamID       int
	Emphasized   bool
	NameOverride string
	Priority     int
}
