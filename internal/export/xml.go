// File path: internal/export/xml.go
package export

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

const (
	// lootFilterVersion is the wire format version the game client imports.
	lootFilterVersion = 5
	// gameVersion is stamped into lastModifiedInVersion.
	gameVersion = "1.3.0"

	xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"
)

// ItemFilter is the root document of the in-game filter format.
type ItemFilter struct {
	XMLName               xml.Name `xml:"ItemFilter"`
	XSI                   string   `xml:"xmlns:i,attr"`
	Name                  string   `xml:"name"`
	FilterIcon            int      `xml:"filterIcon"`
	FilterIconColor       int      `xml:"filterIconColor"`
	Description           string   `xml:"description"`
	LastModifiedInVersion string   `xml:"lastModifiedInVersion"`
	LootFilterVersion     int      `xml:"lootFilterVersion"`
	Rules                 []Rule   `xml:"rules>Rule"`
}

// Rule is one persisted filter rule. Order is the evaluation position, 0
// first.
type Rule struct {
	Type         string      `xml:"type"`
	Conditions   []Condition `xml:"conditions>Condition"`
	Color        int         `xml:"color"`
	IsEnabled    bool        `xml:"isEnabled"`
	Emphasized   bool        `xml:"emphasized"`
	NameOverride string      `xml:"nameOverride"`
	SoundID      int         `xml:"SoundId"`
	BeamID       int         `xml:"BeamId"`
	Order        int         `xml:"Order"`
}

// Condition is the polymorphic condition element. The wire format
// discriminates on the i:type attribute, and the element set depends on the
// discriminator, so marshalling is done by hand.
type Condition struct {
	Type string

	// RarityCondition. Nil LP/WW bounds serialise as i:nil elements.
	Rarities              []string
	MinLegendaryPotential *int
	MaxLegendaryPotential *int
	MinWeaversWill        *int
	MaxWeaversWill        *int

	// AffixCondition.
	Affixes            []int
	Comparison         string
	ComparisonValue    int
	MinOnSameItem      int
	CombinedComparison string
	CombinedValue      int
	Advanced           bool

	// SubTypeCondition.
	EquipmentTypes []string
	SubTypes       []int

	// ClassCondition.
	Classes []string

	// CharacterLevelCondition.
	MinimumLvl int
	MaximumLvl int
}

// MarshalXML writes the condition with its xsi:type discriminator and the
// element set that type requires.
func (c Condition) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "Condition"}
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "i:type"}, Value: c.Type}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	switch c.Type {
	case "RarityCondition":
		writeText(e, "rarity", strings.Join(c.Rarities, " "))
		writeNillableInt(e, "minLegendaryPotential", c.MinLegendaryPotential)
		writeNillableInt(e, "maxLegendaryPotential", c.MaxLegendaryPotential)
		writeNillableInt(e, "minWeaversWill", c.MinWeaversWill)
		writeNillableInt(e, "maxWeaversWill", c.MaxWeaversWill)
	case "AffixCondition":
		if len(c.Affixes) > 0 {
			writeText(e, "affixes", joinInts(c.Affixes))
		}
		writeText(e, "comparison", defaultStr(c.Comparison, "ANY"))
		writeText(e, "comparisonValue", strconv.Itoa(c.ComparisonValue))
		writeText(e, "minOnTheSameItem", strconv.Itoa(c.MinOnSameItem))
		writeText(e, "combinedComparison", defaultStr(c.CombinedComparison, "ANY"))
		writeText(e, "combinedComparisonValue", strconv.Itoa(c.CombinedValue))
		writeText(e, "advanced", strconv.FormatBool(c.Advanced))
	case "SubTypeCondition":
		if len(c.EquipmentTypes) > 0 {
			writeText(e, "equipmentTypes", strings.Join(c.EquipmentTypes, " "))
		}
		if len(c.SubTypes) > 0 {
			writeText(e, "subTypes", joinInts(c.SubTypes))
		}
	case "ClassCondition":
		if len(c.Classes) > 0 {
			writeText(e, "classes", strings.Join(c.Classes, " "))
		}
	case "CharacterLevelCondition":
		writeText(e, "minimumLvl", strconv.Itoa(c.MinimumLvl))
		writeText(e, "maximumLvl", strconv.Itoa(c.MaximumLvl))
	default:
		return fmt.Errorf("export: unknown condition type %q", c.Type)
	}

	return e.EncodeToken(start.End())
}

func writeText(e *xml.Encoder, name, text string) {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	_ = e.EncodeToken(start)
	_ = e.EncodeToken(xml.CharData(text))
	_ = e.EncodeToken(start.End())
}

func writeNillableInt(e *xml.Encoder, name string, value *int) {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if value == nil {
		start.Attr = []xml.Attr{{Name: xml.Name{Local: "i:nil"}, Value: "true"}}
		_ = e.EncodeToken(start)
		_ = e.EncodeToken(start.End())
		return
	}
	_ = e.EncodeToken(start)
	_ = e.EncodeToken(xml.CharData(strconv.Itoa(*value)))
	_ = e.EncodeToken(start.End())
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func defaultStr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Marshal renders the filter document with an XML declaration, indented the
// way the game client exports its own filters.
func Marshal(f *ItemFilter) ([]byte, error) {
	if f.XSI == "" {
		f.XSI = xsiNamespace
	}
	body, err := xml.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal item filter: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
