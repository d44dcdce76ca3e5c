package vtm

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

// Character is one character sheet. It is stored as a single JSON document.
type Character struct {
	PlayerName    string `json:"player_name"`
	CharacterName string `json:"character_name"`
	Chronicle     string `json:"chronicle"`

	Attributes AttributeSet `json:"attributes"`
	Skills     SkillSet     `json:"skills"`

	Damage          Damage   `json:"damage"`
	WillpowerDamage Damage   `json:"willpower_damage"`
	Humanity        Humanity `json:"humanity"`

	BloodPotency BloodPotency `json:"blood_potency"`
	Generation   Generation   `json:"generation"`
	Hunger       Hunger       `json:"hunger"`
}

// characterFields are the top-level keys every document must carry
var characterFields = []string{
	"player_name",
	"character_name",
	"chronicle",
	"attributes",
	"skills",
	"damage",
	"willpower_damage",
	"humanity",
	"blood_potency",
	"generation",
	"hunger",
}

// CharacterConfig holds the values for NewCharacter. Nil trait sets start at
// zero dots.
type CharacterConfig struct {
	PlayerName    string
	CharacterName string
	Chronicle     string
	Attributes    *AttributeSet
	Skills        *SkillSet
}

// NewCharacter creates a character with fresh damage, humanity 7, blood
// potency 1, generation 13 and hunger 0
func NewCharacter(cfg *CharacterConfig) *Character {
	if cfg == nil {
		cfg = &CharacterConfig{}
	}

	c := &Character{
		PlayerName:    cfg.PlayerName,
		CharacterName: cfg.CharacterName,
		Chronicle:     cfg.Chronicle,
		Humanity:      NewHumanity(),
		BloodPotency:  DefaultBloodPotency,
		Generation:    NewGeneration(DefaultGeneration),
		Hunger:        NewHunger(0),
	}
	if cfg.Attributes != nil {
		c.Attributes = *cfg.Attributes
	}
	if cfg.Skills != nil {
		c.Skills = *cfg.Skills
	}

	return c
}

// Validate checks the ranges a finished sheet is expected to respect:
// attributes and skills 0-5, damage and stains not negative, humanity 0-10
// and blood potency not negative
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()

	for _, a := range AllAttributes {
		errors.ValidateRange("attributes."+a.String(), c.Attributes.Get(a), 0, AttributeMax, vb)
	}
	for _, s := range AllSkills {
		errors.ValidateRange("skills."+s.String(), c.Skills.Get(s).Rating, 0, SkillMax, vb)
	}

	errors.ValidateMin("damage.superficial", c.Damage.Superficial, 0, vb)
	errors.ValidateMin("damage.aggravated", c.Damage.Aggravated, 0, vb)
	errors.ValidateMin("willpower_damage.superficial", c.WillpowerDamage.Superficial, 0, vb)
	errors.ValidateMin("willpower_damage.aggravated", c.WillpowerDamage.Aggravated, 0, vb)
	errors.ValidateRange("humanity.value", c.Humanity.Value, 0, MaxHumanity, vb)
	errors.ValidateMin("humanity.stains", c.Humanity.Stains, 0, vb)
	errors.ValidateMin("blood_potency", int(c.BloodPotency), 0, vb)

	return vb.Build()
}

// String returns "player / character", the form used by list output
func (c *Character) String() string {
	return fmt.Sprintf("%s / %s", c.PlayerName, c.CharacterName)
}

// UnmarshalJSON rejects documents that lack any top-level field
func (c *Character) UnmarshalJSON(data []byte) error {
	if _, err := requireFields(data, "character", characterFields...); err != nil {
		return err
	}

	// plain drops the method set so the decode below does not recurse
	type plain Character
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return errors.WrapWithCode(err, errors.CodeDecode, "failed to decode character")
	}

	*c = Character(decoded)
	return nil
}
