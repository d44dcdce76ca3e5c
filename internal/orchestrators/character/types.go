package character

import (
	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
)

// ListCharactersInput defines the request for listing stored characters
type ListCharactersInput struct{}

// CharacterSummary identifies one stored character
type CharacterSummary struct {
	Key           string
	PlayerName    string
	CharacterName string
}

// String returns "player / character"
func (s CharacterSummary) String() string {
	return s.PlayerName + " / " + s.CharacterName
}

// SkippedRecord is a stored record that could not be loaded
type SkippedRecord struct {
	Key string
	Err error
}

// ListCharactersOutput defines the response for listing stored characters.
// Characters keeps the store's enumeration order.
type ListCharactersOutput struct {
	Characters []CharacterSummary
	Skipped    []SkippedRecord
}

// GetSheetInput defines the request for loading a character sheet
type GetSheetInput struct {
	Key string
}

// Sheet is a stored character with its derived stats
type Sheet struct {
	Character *vtm.Character
	Health    vtm.Health
	Willpower vtm.Willpower
	Humanity  vtm.Humanity
}

// GetSheetOutput defines the response for loading a character sheet
type GetSheetOutput struct {
	Sheet *Sheet
}

// CreateCharacterInput defines the request for creating a character through
// the guided attribute distribution
type CreateCharacterInput struct {
	Key           string
	PlayerName    string
	CharacterName string
	Chronicle     string

	Highest vtm.Attribute
	Lowest  vtm.Attribute
	Mids    [3]vtm.Attribute

	// Generation is optional; nil keeps the default of 13
	Generation *int
	// Ancilla starts humanity at 6 instead of 7
	Ancilla   bool
	Overwrite bool
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Key       string
	Character *vtm.Character
}

// CheckCharactersInput defines the request for checking every stored record
type CheckCharactersInput struct{}

// CheckResult is one record that failed to load or failed validation
type CheckResult struct {
	Key string
	Err error
}

// CheckCharactersOutput defines the response for checking stored records
type CheckCharactersOutput struct {
	Checked  int
	Problems []CheckResult
}
