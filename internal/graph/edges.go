// File path: internal/graph/edges.go
package graph

// Affix identifiers used across the static tables. The numbering follows the
// community datamine ordering; only affixes referenced by knowledge data or
// the relationship tables are named here.
const (
	AffixSpellDamage       = 4
	AffixAdaptiveSpell     = 5
	AffixCritChance        = 6
	AffixSpellCritChance   = 7
	AffixCritMulti         = 8
	AffixSpellCritMulti    = 9
	AffixFireDamage        = 10
	AffixFirePenetration   = 11
	AffixIgniteChance      = 12
	AffixFireSpellDamage   = 13
	AffixColdDamage        = 14
	AffixColdPenetration   = 15
	AffixFreezeRate        = 16
	AffixColdSpellDamage   = 17
	AffixLightningDamage   = 18
	AffixLightningPen      = 19
	AffixShockChance       = 20
	AffixLightningSpell    = 21
	AffixVoidDamage        = 22
	AffixVoidPenetration   = 23
	AffixDoomChance        = 24
	AffixVoidSpellDamage   = 25
	AffixMeleeDamage       = 27
	AffixMeleePhysDamage   = 28
	AffixPhysDamage        = 29
	AffixPhysPenetration   = 30
	AffixHealth            = 31
	AffixHealthPct         = 32
	AffixNecroticDamage    = 33
	AffixNecroticPen       = 34
	AffixNecroticSpell     = 35
	AffixNecroticDot       = 36
	AffixPoisonDamage      = 37
	AffixPoisonChance      = 38
	AffixPoisonPen         = 39
	AffixPoisonDot         = 40
	AffixFireRes           = 41
	AffixColdRes           = 42
	AffixLightningRes      = 43
	AffixVoidRes           = 44
	AffixNecroticRes       = 45
	AffixPoisonRes         = 46
	AffixArmor             = 50
	AffixArmorPct          = 51
	AffixBlockChance       = 52
	AffixBlockEffect       = 53
	AffixDodge             = 54
	AffixGlancingBlow      = 55
	AffixStrength          = 60
	AffixDexterity         = 61
	AffixIntelligence      = 62
	AffixVitality          = 63
	AffixAttunement        = 64
	AffixMinionDamage      = 70
	AffixMinionHealth      = 71
	AffixMinionSpellDamage = 72
	AffixMinionCritChance  = 73
	AffixMinionAttackSpeed = 74
	AffixBowDamage         = 76
	AffixBowAttackSpeed    = 77
	AffixChannelCost       = 78
	AffixChannelDamage     = 79
	AffixWardRetention     = 80
	AffixWardPerSecond     = 81
	AffixAttackSpeed       = 87
	AffixMeleeAttackSpeed  = 88
	AffixCastSpeed         = 89
	AffixSpellCastSpeed    = 90
)

// defaultEdges is the static relationship table. SYNERGY strengths are hand
// tuned against community build guides; PREREQUISITE conditions gate affixes
// on build-context predicates.
var defaultEdges = []EdgeSpec{
	// Crit chains.
	{From: AffixCritChance, To: AffixCritMulti, Kind: EdgeSynergy, Strength: 0.8,
		Justification: "crit multi is dead weight without chance to crit"},
	{From: AffixSpellCritChance, To: AffixSpellCritMulti, Kind: EdgeSynergy, Strength: 0.8,
		Justification: "spell crit multi scales off spell crit chance"},
	{From: AffixCritMulti, To: AffixCritChance, Kind: EdgeSynergy, Strength: 0.5,
		Justification: "stacking multi makes chance rolls more valuable"},

	// Spell scaling.
	{From: AffixSpellDamage, To: AffixCastSpeed, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "cast speed multiplies spell damage throughput"},
	{From: AffixSpellDamage, To: AffixSpellCritChance, Kind: EdgeSynergy, Strength: 0.6,
		Justification: "spell builds convert flat damage into crit value"},
	{From: AffixAdaptiveSpell, To: AffixSpellDamage, Kind: EdgeSynergy, Strength: 0.9,
		Justification: "adaptive spell damage feeds every spell tag"},

	// Melee scaling.
	{From: AffixMeleeDamage, To: AffixMeleeAttackSpeed, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "attack speed multiplies melee hit rate"},
	{From: AffixMeleePhysDamage, To: AffixPhysPenetration, Kind: EdgeSynergy, Strength: 0.6,
		Justification: "penetration scales with stacked phys damage"},

	// Elemental clusters.
	{From: AffixFireDamage, To: AffixFirePenetration, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "fire pen only matters with fire investment"},
	{From: AffixFireDamage, To: AffixIgniteChance, Kind: EdgeSynergy, Strength: 0.5,
		Justification: "ignite stacks scale off fire damage"},
	{From: AffixColdDamage, To: AffixFreezeRate, Kind: EdgeSynergy, Strength: 0.5,
		Justification: "freeze rate rides on cold damage investment"},
	{From: AffixColdDamage, To: AffixColdPenetration, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "cold pen pairs with cold damage"},
	{From: AffixLightningDamage, To: AffixShockChance, Kind: EdgeSynergy, Strength: 0.5,
		Justification: "shock uptime scales with lightning damage"},
	{From: AffixLightningDamage, To: AffixLightningPen, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "lightning pen pairs with lightning damage"},
	{From: AffixVoidDamage, To: AffixVoidPenetration, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "void pen pairs with void damage"},
	{From: AffixVoidDamage, To: AffixDoomChance, Kind: EdgeSynergy, Strength: 0.5,
		Justification: "doom application scales with void damage"},
	{From: AffixNecroticDamage, To: AffixNecroticPen, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "necrotic pen pairs with necrotic damage"},
	{From: AffixPoisonDamage, To: AffixPoisonChance, Kind: EdgeSynergy, Strength: 0.8,
		Justification: "poison chance converts hits into dot stacks"},
	{From: AffixPoisonChance, To: AffixPoisonDot, Kind: EdgeSynergy, Strength: 0.6,
		Justification: "dot damage scales applied poison stacks"},

	// Defence.
	{From: AffixHealth, To: AffixHealthPct, Kind: EdgeSynergy, Strength: 0.8,
		Justification: "percent health multiplies flat health rolls"},
	{From: AffixArmor, To: AffixArmorPct, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "percent armor multiplies flat armor"},
	{From: AffixBlockChance, To: AffixBlockEffect, Kind: EdgeSynergy, Strength: 0.8,
		Justification: "block effectiveness needs block chance first"},
	{From: AffixWardRetention, To: AffixWardPerSecond, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "ward generation compounds with retention"},

	// Minion cluster.
	{From: AffixMinionDamage, To: AffixMinionHealth, Kind: EdgeSynergy, Strength: 0.6,
		Justification: "minions must survive to deal damage"},
	{From: AffixMinionDamage, To: AffixMinionCritChance, Kind: EdgeSynergy, Strength: 0.5,
		Justification: "minion crit scales minion damage investment"},
	{From: AffixMinionDamage, To: AffixMinionAttackSpeed, Kind: EdgeSynergy, Strength: 0.6,
		Justification: "minion attack speed multiplies minion dps"},

	// Bow cluster.
	{From: AffixBowDamage, To: AffixBowAttackSpeed, Kind: EdgeSynergy, Strength: 0.7,
		Justification: "bow attack speed multiplies bow damage"},

	// Prerequisite gates.
	{From: AffixMeleeDamage, To: AffixAttackSpeed, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "melee"`,
		Justification: "melee damage is wasted on non-melee builds"},
	{From: AffixMeleePhysDamage, To: AffixAttackSpeed, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "melee"`,
		Justification: "melee phys rolls require melee attacks"},
	{From: AffixMeleeAttackSpeed, To: AffixMeleeDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "melee"`,
		Justification: "melee attack speed requires melee attacks"},
	{From: AffixSpellDamage, To: AffixCastSpeed, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "spell"`,
		Justification: "spell damage needs a spell-centric build"},
	{From: AffixSpellCastSpeed, To: AffixSpellDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "spell"`,
		Justification: "spell cast speed needs a spell-centric build"},
	{From: AffixCastSpeed, To: AffixSpellDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "spell"`,
		Justification: "cast speed only matters for casters"},
	{From: AffixAttackSpeed, To: AffixMeleeDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "melee" || build.attackType === "bow"`,
		Justification: "attack speed serves attack builds, melee or bow"},
	{From: AffixBowDamage, To: AffixBowAttackSpeed, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "bow"`,
		Justification: "bow damage requires a bow build"},
	{From: AffixBowAttackSpeed, To: AffixBowDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "bow"`,
		Justification: "bow attack speed requires a bow build"},
	{From: AffixMinionDamage, To: AffixMinionHealth, Kind: EdgePrerequisite,
		Condition:     `build.usesMinions === true`,
		Justification: "minion damage is dead weight without minions"},
	{From: AffixMinionHealth, To: AffixMinionDamage, Kind: EdgePrerequisite,
		Condition:     `build.usesMinions === true`,
		Justification: "minion health is dead weight without minions"},
	{From: AffixMinionSpellDamage, To: AffixMinionDamage, Kind: EdgePrerequisite,
		Condition:     `build.usesMinions === true`,
		Justification: "minion spell damage needs minions"},
	{From: AffixMinionCritChance, To: AffixMinionDamage, Kind: EdgePrerequisite,
		Condition:     `build.usesMinions === true`,
		Justification: "minion crit needs minions"},
	{From: AffixMinionAttackSpeed, To: AffixMinionDamage, Kind: EdgePrerequisite,
		Condition:     `build.usesMinions === true`,
		Justification: "minion attack speed needs minions"},
	{From: AffixChannelCost, To: AffixChannelDamage, Kind: EdgePrerequisite,
		Condition:     `build.channelling === true`,
		Justification: "channel cost reduction needs a channelled skill"},
	{From: AffixChannelDamage, To: AffixChannelCost, Kind: EdgePrerequisite,
		Condition:     `build.channelling === true`,
		Justification: "channelled damage needs a channelled skill"},
	{From: AffixFireSpellDamage, To: AffixFireDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "spell"`,
		Justification: "fire spell damage requires spells"},
	{From: AffixColdSpellDamage, To: AffixColdDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "spell"`,
		Justification: "cold spell damage requires spells"},
	{From: AffixLightningSpell, To: AffixLightningDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "spell"`,
		Justification: "lightning spell damage requires spells"},
	{From: AffixVoidSpellDamage, To: AffixVoidDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "spell"`,
		Justification: "void spell damage requires spells"},
	{From: AffixNecroticSpell, To: AffixNecroticDamage, Kind: EdgePrerequisite,
		Condition:     `build.attackType === "spell"`,
		Justification: "necrotic spell damage requires spells"},
}
