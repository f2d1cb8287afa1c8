// File path: internal/graph/taxonomy.go
package graph

import "github.com/Artzzx/lootforge/internal/filter"

// AffixInfo carries display metadata for a known affix.
type AffixInfo struct {
	ID       int
	Name     string
	Category string
}

var affixCatalog = map[int]AffixInfo{
	AffixSpellDamage:       {AffixSpellDamage, "Increased Spell Damage", "offensive"},
	AffixAdaptiveSpell:     {AffixAdaptiveSpell, "Adaptive Spell Damage", "offensive"},
	AffixCritChance:        {AffixCritChance, "Critical Strike Chance", "crit"},
	AffixSpellCritChance:   {AffixSpellCritChance, "Spell Critical Strike Chance", "crit"},
	AffixCritMulti:         {AffixCritMulti, "Critical Strike Multiplier", "crit"},
	AffixSpellCritMulti:    {AffixSpellCritMulti, "Spell Critical Strike Multiplier", "crit"},
	AffixFireDamage:        {AffixFireDamage, "Increased Fire Damage", "elemental"},
	AffixFirePenetration:   {AffixFirePenetration, "Fire Penetration", "elemental"},
	AffixIgniteChance:      {AffixIgniteChance, "Ignite Chance", "dot"},
	AffixFireSpellDamage:   {AffixFireSpellDamage, "Fire Spell Damage", "elemental"},
	AffixColdDamage:        {AffixColdDamage, "Increased Cold Damage", "elemental"},
	AffixColdPenetration:   {AffixColdPenetration, "Cold Penetration", "elemental"},
	AffixFreezeRate:        {AffixFreezeRate, "Freeze Rate Multiplier", "elemental"},
	AffixColdSpellDamage:   {AffixColdSpellDamage, "Cold Spell Damage", "elemental"},
	AffixLightningDamage:   {AffixLightningDamage, "Increased Lightning Damage", "elemental"},
	AffixLightningPen:      {AffixLightningPen, "Lightning Penetration", "elemental"},
	AffixShockChance:       {AffixShockChance, "Shock Chance", "elemental"},
	AffixLightningSpell:    {AffixLightningSpell, "Lightning Spell Damage", "elemental"},
	AffixVoidDamage:        {AffixVoidDamage, "Increased Void Damage", "offensive"},
	AffixVoidPenetration:   {AffixVoidPenetration, "Void Penetration", "offensive"},
	AffixDoomChance:        {AffixDoomChance, "Doom Chance", "dot"},
	AffixVoidSpellDamage:   {AffixVoidSpellDamage, "Void Spell Damage", "offensive"},
	AffixMeleeDamage:       {AffixMeleeDamage, "Increased Melee Damage", "offensive"},
	AffixMeleePhysDamage:   {AffixMeleePhysDamage, "Melee Physical Damage", "physical"},
	AffixPhysDamage:        {AffixPhysDamage, "Increased Physical Damage", "physical"},
	AffixPhysPenetration:   {AffixPhysPenetration, "Physical Penetration", "physical"},
	AffixHealth:            {AffixHealth, "Added Health", "health"},
	AffixHealthPct:         {AffixHealthPct, "Increased Health", "health"},
	AffixNecroticDamage:    {AffixNecroticDamage, "Increased Necrotic Damage", "offensive"},
	AffixNecroticPen:       {AffixNecroticPen, "Necrotic Penetration", "offensive"},
	AffixNecroticSpell:     {AffixNecroticSpell, "Necrotic Spell Damage", "offensive"},
	AffixNecroticDot:       {AffixNecroticDot, "Necrotic Damage Over Time", "dot"},
	AffixPoisonDamage:      {AffixPoisonDamage, "Increased Poison Damage", "dot"},
	AffixPoisonChance:      {AffixPoisonChance, "Poison Chance", "dot"},
	AffixPoisonPen:         {AffixPoisonPen, "Poison Penetration", "dot"},
	AffixPoisonDot:         {AffixPoisonDot, "Poison Damage Over Time", "dot"},
	AffixFireRes:           {AffixFireRes, "Fire Resistance", "resistance"},
	AffixColdRes:           {AffixColdRes, "Cold Resistance", "resistance"},
	AffixLightningRes:      {AffixLightningRes, "Lightning Resistance", "resistance"},
	AffixVoidRes:           {AffixVoidRes, "Void Resistance", "resistance"},
	AffixNecroticRes:       {AffixNecroticRes, "Necrotic Resistance", "resistance"},
	AffixPoisonRes:         {AffixPoisonRes, "Poison Resistance", "resistance"},
	AffixArmor:             {AffixArmor, "Added Armor", "defensive"},
	AffixArmorPct:          {AffixArmorPct, "Increased Armor", "defensive"},
	AffixBlockChance:       {AffixBlockChance, "Block Chance", "defensive"},
	AffixBlockEffect:       {AffixBlockEffect, "Block Effectiveness", "defensive"},
	AffixDodge:             {AffixDodge, "Dodge Rating", "defensive"},
	AffixGlancingBlow:      {AffixGlancingBlow, "Chance for Glancing Blow", "defensive"},
	AffixStrength:          {AffixStrength, "Strength", "attribute"},
	AffixDexterity:         {AffixDexterity, "Dexterity", "attribute"},
	AffixIntelligence:      {AffixIntelligence, "Intelligence", "attribute"},
	AffixVitality:          {AffixVitality, "Vitality", "attribute"},
	AffixAttunement:        {AffixAttunement, "Attunement", "attribute"},
	AffixMinionDamage:      {AffixMinionDamage, "Increased Minion Damage", "minion"},
	AffixMinionHealth:      {AffixMinionHealth, "Increased Minion Health", "minion"},
	AffixMinionSpellDamage: {AffixMinionSpellDamage, "Minion Spell Damage", "minion"},
	AffixMinionCritChance:  {AffixMinionCritChance, "Minion Critical Strike Chance", "minion"},
	AffixMinionAttackSpeed: {AffixMinionAttackSpeed, "Minion Attack and Cast Speed", "minion"},
	AffixBowDamage:         {AffixBowDamage, "Increased Bow Damage", "offensive"},
	AffixBowAttackSpeed:    {AffixBowAttackSpeed, "Bow Attack Speed", "offensive"},
	AffixChannelCost:       {AffixChannelCost, "Channelled Skill Cost Reduction", "mana"},
	AffixChannelDamage:     {AffixChannelDamage, "Channelled Damage", "offensive"},
	AffixWardRetention:     {AffixWardRetention, "Ward Retention", "defensive"},
	AffixWardPerSecond:     {AffixWardPerSecond, "Ward Per Second", "defensive"},
	AffixAttackSpeed:       {AffixAttackSpeed, "Attack Speed", "offensive"},
	AffixMeleeAttackSpeed:  {AffixMeleeAttackSpeed, "Melee Attack Speed", "offensive"},
	AffixCastSpeed:         {AffixCastSpeed, "Cast Speed", "offensive"},
	AffixSpellCastSpeed:    {AffixSpellCastSpeed, "Spell Cast Speed", "offensive"},
}

// Lookup returns catalog metadata for an affix id.
func Lookup(affixID int) (AffixInfo, bool) {
	info, ok := affixCatalog[affixID]
	return info, ok
}

// classGated restricts certain affix pools to the classes whose skills can
// use them. Affixes absent from this table roll for every class.
var classGated = map[int][]filter.CharacterClass{
	AffixMinionDamage:      {filter.ClassAcolyte, filter.ClassPrimalist},
	AffixMinionHealth:      {filter.ClassAcolyte, filter.ClassPrimalist},
	AffixMinionSpellDamage: {filter.ClassAcolyte},
	AffixMinionCritChance:  {filter.ClassAcolyte, filter.ClassPrimalist},
	AffixMinionAttackSpeed: {filter.ClassAcolyte, filter.ClassPrimalist},
	AffixWardRetention:     {filter.ClassMage, filter.ClassAcolyte},
	AffixWardPerSecond:     {filter.ClassMage, filter.ClassAcolyte},
	AffixBowDamage:         {filter.ClassRogue},
	AffixBowAttackSpeed:    {filter.ClassRogue},
}

// ClassAllowed reports whether the affix may roll for the given base class.
// Ungated affixes are allowed everywhere.
func ClassAllowed(affixID int, class filter.CharacterClass) bool {
	allowed, gated := classGated[affixID]
	if !gated {
		return true
	}
	for _, c := range allowed {
		if c == class {
			return true
		}
	}
	return false
}
