// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *vtm.Character
}

// NewCharacterBuilder creates a new builder with the defaults of vtm.NewCharacter
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: vtm.NewCharacter(&vtm.CharacterConfig{
			PlayerName:    "Test Player",
			CharacterName: "Test Character",
			Chronicle:     "Test Chronicle by Night",
		}),
	}
}

// WithPlayerName sets the player name
func (b *CharacterBuilder) WithPlayerName(name string) *CharacterBuilder {
	b.character.PlayerName = name
	return b
}

// WithCharacterName sets the character name
func (b *CharacterBuilder) WithCharacterName(name string) *CharacterBuilder {
	b.character.CharacterName = name
	return b
}

// WithChronicle sets the chronicle
func (b *CharacterBuilder) WithChronicle(chronicle string) *CharacterBuilder {
	b.character.Chronicle = chronicle
	return b
}

// WithAttribute sets one attribute rating
func (b *CharacterBuilder) WithAttribute(attr vtm.Attribute, value int) *CharacterBuilder {
	b.character.Attributes.Set(attr, value)
	return b
}

// WithSkill sets one skill rating without a specialty
func (b *CharacterBuilder) WithSkill(skill vtm.Skill, rating int) *CharacterBuilder {
	b.character.Skills.Set(skill, rating, nil)
	return b
}

// WithSpecialty sets one skill rating with a specialty
func (b *CharacterBuilder) WithSpecialty(skill vtm.Skill, rating int, specialty string) *CharacterBuilder {
	b.character.Skills.Set(skill, rating, &specialty)
	return b
}

// WithDamage sets the health damage track
func (b *CharacterBuilder) WithDamage(superficial, aggravated int) *CharacterBuilder {
	b.character.Damage = vtm.Damage{Superficial: superficial, Aggravated: aggravated}
	return b
}

// WithWillpowerDamage sets the willpower damage track
func (b *CharacterBuilder) WithWillpowerDamage(superficial, aggravated int) *CharacterBuilder {
	b.character.WillpowerDamage = vtm.Damage{Superficial: superficial, Aggravated: aggravated}
	return b
}

// WithHumanity sets humanity and stains
func (b *CharacterBuilder) WithHumanity(value, stains int) *CharacterBuilder {
	b.character.Humanity = vtm.Humanity{Value: value, Stains: stains}
	return b
}

// WithGeneration sets the generation through the normalizing constructor
func (b *CharacterBuilder) WithGeneration(generation int) *CharacterBuilder {
	b.character.Generation = vtm.NewGeneration(generation)
	return b
}

// WithBloodPotency sets blood potency
func (b *CharacterBuilder) WithBloodPotency(potency int) *CharacterBuilder {
	b.character.BloodPotency = vtm.BloodPotency(potency)
	return b
}

// WithHunger sets hunger through the normalizing constructor
func (b *CharacterBuilder) WithHunger(hunger int) *CharacterBuilder {
	b.character.Hunger = vtm.NewHunger(hunger)
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *vtm.Character {
	return b.character
}
