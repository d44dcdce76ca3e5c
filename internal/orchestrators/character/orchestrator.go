// Package character implements the character orchestrator: listing stored
// sheets, loading one with its derived stats and guided creation
package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-sheets/internal/errors"
	characterrepo "github.com/KirkDiggler/vtm-sheets/internal/repositories/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}

	return vb.Build()
}

// Orchestrator coordinates character flows over a repository
type Orchestrator struct {
	charRepo characterrepo.Repository
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		charRepo: cfg.CharacterRepo,
	}, nil
}

// ListCharacters loads every stored record and summarizes it. A record that
// fails to load is logged, reported in Skipped and left out; only a failure
// to enumerate the store is returned as an error.
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	_ *ListCharactersInput,
) (*ListCharactersOutput, error) {
	listOutput, err := o.charRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	output := &ListCharactersOutput{
		Characters: make([]CharacterSummary, 0, len(listOutput.Keys)),
	}

	for _, key := range listOutput.Keys {
		getOutput, err := o.charRepo.Get(ctx, characterrepo.GetInput{Key: key})
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable character",
				"key", key,
				"error", err.Error())
			output.Skipped = append(output.Skipped, SkippedRecord{Key: key, Err: err})
			continue
		}

		output.Characters = append(output.Characters, CharacterSummary{
			Key:           key,
			PlayerName:    getOutput.Character.PlayerName,
			CharacterName: getOutput.Character.CharacterName,
		})
	}

	slog.DebugContext(ctx, "listed characters",
		"loaded", len(output.Characters),
		"skipped", len(output.Skipped))

	return output, nil
}

// GetSheet loads one character and derives health, willpower and humanity
func (o *Orchestrator) GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument("key is required")
	}

	getOutput, err := o.charRepo.Get(ctx, characterrepo.GetInput{Key: input.Key})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load character %s", input.Key)
	}

	c := getOutput.Character
	return &GetSheetOutput{
		Sheet: &Sheet{
			Character: c,
			Health:    vtm.HealthFromCharacter(c, &c.Damage.Superficial, &c.Damage.Aggravated),
			Willpower: vtm.WillpowerFromCharacter(c),
			Humanity:  vtm.HumanityFromCharacter(c),
		},
	}, nil
}

// CreateCharacter builds a character from the guided distribution and saves
// it. The five chosen attributes must be distinct.
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("key", input.Key, vb)
	errors.ValidateRequired("player_name", input.PlayerName, vb)
	errors.ValidateRequired("character_name", input.CharacterName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := ValidateDistribution(input.Highest, input.Lowest, input.Mids); err != nil {
		return nil, err
	}

	var attrs vtm.AttributeSet
	attrs.ApplyCreationDistribution(input.Highest, input.Lowest, input.Mids)

	char := vtm.NewCharacter(&vtm.CharacterConfig{
		PlayerName:    input.PlayerName,
		CharacterName: input.CharacterName,
		Chronicle:     input.Chronicle,
		Attributes:    &attrs,
	})

	if input.Generation != nil {
		char.Generation = vtm.NewGeneration(*input.Generation)
		char.BloodPotency = vtm.BloodPotencyFromGeneration(char.Generation)
	}
	if input.Ancilla {
		char.Humanity = vtm.NewAncillaHumanity()
	}

	if err := char.Validate(); err != nil {
		return nil, errors.Wrap(err, "created character is invalid")
	}

	saveOutput, err := o.charRepo.Save(ctx, characterrepo.SaveInput{
		Key:       input.Key,
		Character: char,
		Overwrite: input.Overwrite,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character %s", input.Key)
	}

	slog.DebugContext(ctx, "created character",
		"key", saveOutput.Key,
		"character", char.String(),
		"generation", char.Generation.Value())

	return &CreateCharacterOutput{
		Key:       saveOutput.Key,
		Character: char,
	}, nil
}

// ValidateDistribution checks that the highest, lowest and mid attributes
// name five different attributes
func ValidateDistribution(highest, lowest vtm.Attribute, mids [3]vtm.Attribute) error {
	chosen := append([]vtm.Attribute{highest, lowest}, mids[:]...)
	for i, a := range chosen {
		if err := CheckAttributeChoice(chosen[:i], a); err != nil {
			return err
		}
	}
	return nil
}

// CheckAttributeChoice rejects an invalid attribute or one that was already
// picked
func CheckAttributeChoice(picked []vtm.Attribute, next vtm.Attribute) error {
	if !next.Valid() {
		return errors.InvalidArgumentf("unknown attribute %d", int(next))
	}
	for _, p := range picked {
		if p == next {
			return errors.InvalidArgumentf("%s has already been assigned", next.DisplayName()).
				WithMeta("attribute", next.String())
		}
	}
	return nil
}
