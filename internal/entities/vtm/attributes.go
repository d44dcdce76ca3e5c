package vtm

import (
	"encoding/json"
	"fmt"
)

// Attribute dot values used by the creation distribution
const (
	AttributeBaseline = 2
	AttributeHighest  = 4
	AttributeMid      = 3
	AttributeLowest   = 1
	AttributeMax      = 5
)

// AttributeSet holds the nine attribute ratings of a character
type AttributeSet struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Stamina      int `json:"stamina"`
	Charisma     int `json:"charisma"`
	Manipulation int `json:"manipulation"`
	Composure    int `json:"composure"`
	Intelligence int `json:"intelligence"`
	Wits         int `json:"wits"`
	Resolve      int `json:"resolve"`
}

// field maps every attribute to its rating. Passing a value outside the
// enumeration is a programming error.
func (s *AttributeSet) field(a Attribute) *int {
	switch a {
	case AttributeStrength:
		return &s.Strength
	case AttributeDexterity:
		return &s.Dexterity
	case AttributeStamina:
		return &s.Stamina
	case AttributeCharisma:
		return &s.Charisma
	case AttributeManipulation:
		return &s.Manipulation
	case AttributeComposure:
		return &s.Composure
	case AttributeIntelligence:
		return &s.Intelligence
	case AttributeWits:
		return &s.Wits
	case AttributeResolve:
		return &s.Resolve
	default:
		panic(fmt.Sprintf("vtm: unknown attribute %d", int(a)))
	}
}

// Get returns the rating of a
func (s *AttributeSet) Get(a Attribute) int {
	return *s.field(a)
}

// Set assigns the rating of a
func (s *AttributeSet) Set(a Attribute, value int) {
	*s.field(a) = value
}

// SetAllToBaseline resets every attribute to two dots
func (s *AttributeSet) SetAllToBaseline() {
	for _, a := range AllAttributes {
		s.Set(a, AttributeBaseline)
	}
}

// ApplyCreationDistribution applies the character creation spread: everything
// at two, then highest at four, lowest at one and each mid at three, in that
// order. The attributes are not checked for distinctness, so an attribute
// named twice keeps the later value.
func (s *AttributeSet) ApplyCreationDistribution(highest, lowest Attribute, mids [3]Attribute) {
	s.SetAllToBaseline()
	s.Set(highest, AttributeHighest)
	s.Set(lowest, AttributeLowest)
	for _, m := range mids {
		s.Set(m, AttributeMid)
	}
}

// UnmarshalJSON requires all nine attributes to be present
func (s *AttributeSet) UnmarshalJSON(data []byte) error {
	keys := make([]string, len(AllAttributes))
	for i, a := range AllAttributes {
		keys[i] = a.String()
	}

	fields, err := requireFields(data, "attributes", keys...)
	if err != nil {
		return err
	}

	var decoded AttributeSet
	for _, a := range AllAttributes {
		v, err := decodeInt(fields[a.String()], "attributes", a.String())
		if err != nil {
			return err
		}
		decoded.Set(a, v)
	}

	*s = decoded
	return nil
}

// Ensure AttributeSet implements json.Unmarshaler
var _ json.Unmarshaler = (*AttributeSet)(nil)
