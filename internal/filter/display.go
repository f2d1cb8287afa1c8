// File path: internal/filter/display.go
package filter

// Filter color ids as the game client numbers them.
const (
	ColorWhite        = 0
	ColorGray         = 1
	ColorBrightYellow = 2
	ColorYellow       = 3
	ColorLightOrange  = 4
	ColorOrange       = 5
	ColorLightRed     = 6
	ColorRed          = 7
	ColorDarkPurple   = 10
	ColorLightPurple  = 11
	ColorBlue         = 12
	ColorLightBlue    = 13
	ColorTurquoise    = 15
	ColorGreen        = 16
	ColorDarkGreen    = 17
)

// Sound ids worth naming; the rest are referenced numerically.
const (
	SoundDefault   = 0
	SoundShing     = 2
	SoundBegin     = 6
	SoundFight     = 7
	SoundDiscovery = 8
)

// Beam ids.
const (
	BeamDefault   = 0
	BeamSet       = 4
	BeamLegendary = 5
	BeamExalted   = 7
)

// ValueColors maps a value band to its default display color.
var ValueColors = map[string]int{
	"legendary": ColorRed,
	"essential": ColorOrange,
	"strong":    ColorLightOrange,
	"useful":    ColorBrightYellow,
	"unique":    ColorDarkPurple,
	"exalted":   ColorLightPurple,
	"set":       ColorLightBlue,
	"rare":      ColorYellow,
	"hide":      ColorGray,
}

// damageColorOverrides themes the essential/strong bands after the build's
// primary damage type.
var damageColorOverrides = map[DamageType][2]int{
	DamagePhysical:  {ColorOrange, ColorLightOrange},
	DamageFire:      {ColorRed, ColorOrange},
	DamageCold:      {ColorLightBlue, ColorBlue},
	DamageLightning: {ColorBrightYellow, ColorYellow},
	DamageVoid:      {ColorDarkPurple, ColorLightPurple},
	DamageNecrotic:  {ColorDarkGreen, ColorGray},
	DamagePoison:    {ColorGreen, ColorTurquoise},
}

// ColorScheme returns the value-band color map, themed by the primary damage
// type when one is known.
func ColorScheme(primary DamageType) map[string]int {
	scheme := make(map[string]int, len(ValueColors))
	for k, v := range ValueColors {
		scheme[k] = v
	}
	if override, ok := damageColorOverrides[primary]; ok {
		scheme["essential"] = override[0]
		scheme["strong"] = override[1]
	}
	return scheme
}

// Rule priority constants. Higher values sort earlier in the emitted filter,
// which the game evaluates top-down.
const (
	PriorityLegendary      = 100
	PriorityUniqueHighLP   = 95
	PriorityUnique         = 90
	PriorityExaltedBase    = 85
	PriorityExaltedBuild   = 80
	PriorityRecommendedUnq = 78
	PriorityThreshold      = 72
	PriorityRareBuild      = 70
	PriorityRareGeneral    = 65
	PriorityLeveling       = 55
	PriorityIdolBuild      = 45
	PriorityCrossClass     = 25
	PriorityHideClass      = 20
	PriorityHideRarity     = 15
)
