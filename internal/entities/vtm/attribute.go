package vtm

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

// Attribute names one of the nine core attributes
type Attribute int

// Attribute constants
const (
	AttributeStrength Attribute = iota
	AttributeDexterity
	AttributeStamina
	AttributeCharisma
	AttributeManipulation
	AttributeComposure
	AttributeIntelligence
	AttributeWits
	AttributeResolve
)

// Category groups attributes and skills into physical, social and mental
type Category string

// Category constants
const (
	CategoryPhysical Category = "physical"
	CategorySocial   Category = "social"
	CategoryMental   Category = "mental"
)

// Categories lists the categories in sheet order
var Categories = []Category{CategoryPhysical, CategorySocial, CategoryMental}

// AllAttributes lists every attribute in sheet order
var AllAttributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeStamina,
	AttributeCharisma,
	AttributeManipulation,
	AttributeComposure,
	AttributeIntelligence,
	AttributeWits,
	AttributeResolve,
}

var attributeInfo = [...]struct {
	key      string
	code     string
	category Category
}{
	AttributeStrength:     {"strength", "s", CategoryPhysical},
	AttributeDexterity:    {"dexterity", "d", CategoryPhysical},
	AttributeStamina:      {"stamina", "t", CategoryPhysical},
	AttributeCharisma:     {"charisma", "c", CategorySocial},
	AttributeManipulation: {"manipulation", "m", CategorySocial},
	AttributeComposure:    {"composure", "o", CategorySocial},
	AttributeIntelligence: {"intelligence", "i", CategoryMental},
	AttributeWits:         {"wits", "w", CategoryMental},
	AttributeResolve:      {"resolve", "r", CategoryMental},
}

// Valid reports whether a is one of the nine attributes
func (a Attribute) Valid() bool {
	return a >= AttributeStrength && a <= AttributeResolve
}

// String returns the JSON key of the attribute
func (a Attribute) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
	return attributeInfo[a].key
}

// Code returns the one-letter shorthand accepted by ParseAttribute
func (a Attribute) Code() string {
	if !a.Valid() {
		return ""
	}
	return attributeInfo[a].code
}

// Category returns the attribute's column on the sheet
func (a Attribute) Category() Category {
	if !a.Valid() {
		return ""
	}
	return attributeInfo[a].category
}

// DisplayName returns the attribute name as printed on a sheet
func (a Attribute) DisplayName() string {
	return cases.Title(language.English).String(a.String())
}

// AttributesIn returns the attributes of one category in sheet order
func AttributesIn(category Category) []Attribute {
	var out []Attribute
	for _, a := range AllAttributes {
		if a.Category() == category {
			out = append(out, a)
		}
	}
	return out
}

// ParseAttribute matches s case-insensitively against attribute names and
// one-letter codes. It returns a Parse error when nothing matches.
func ParseAttribute(s string) (Attribute, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, a := range AllAttributes {
		if in == attributeInfo[a].key || in == attributeInfo[a].code {
			return a, nil
		}
	}
	return 0, errors.Parsef("string did not match any attribute: %q", s).
		WithMeta("input", s)
}
