package testutils

import (
	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-sheets/internal/testutils/builders"
)

const (
	// TestPlayerName is the default player name for test fixtures
	TestPlayerName = "Juke"
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Mx Anderson"
	// TestChronicle is the default chronicle for test fixtures
	TestChronicle = "Cthulhu by Night"
)

// CreateTestCharacter creates a fully populated character: every trait block
// is set, and some skills carry a specialty while others do not
func CreateTestCharacter() *vtm.Character {
	return CreateTestCharacterNamed(TestPlayerName, TestCharacterName)
}

// CreateTestCharacterNamed creates the fully populated fixture with the given names
func CreateTestCharacterNamed(playerName, characterName string) *vtm.Character {
	return builders.NewCharacterBuilder().
		WithPlayerName(playerName).
		WithCharacterName(characterName).
		WithChronicle(TestChronicle).
		WithAttribute(vtm.AttributeStrength, 2).
		WithAttribute(vtm.AttributeDexterity, 4).
		WithAttribute(vtm.AttributeStamina, 3).
		WithAttribute(vtm.AttributeCharisma, 3).
		WithAttribute(vtm.AttributeManipulation, 3).
		WithAttribute(vtm.AttributeComposure, 2).
		WithAttribute(vtm.AttributeIntelligence, 3).
		WithAttribute(vtm.AttributeWits, 2).
		WithAttribute(vtm.AttributeResolve, 1).
		WithSpecialty(vtm.SkillAthletics, 2, "Parkour").
		WithSkill(vtm.SkillBrawl, 1).
		WithSpecialty(vtm.SkillAnimalKen, 1, "Cats").
		WithSkill(vtm.SkillStreetwise, 3).
		WithSpecialty(vtm.SkillOccult, 3, "Cthulhu Mythos").
		WithSkill(vtm.SkillTechnology, 2).
		WithDamage(1, 0).
		WithWillpowerDamage(2, 1).
		WithHumanity(7, 2).
		WithGeneration(12).
		WithBloodPotency(1).
		WithHunger(2).
		Build()
}
