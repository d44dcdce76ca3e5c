package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-sheets/internal/errors"
	"github.com/KirkDiggler/vtm-sheets/internal/orchestrators/character"
	characterrepo "github.com/KirkDiggler/vtm-sheets/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/vtm-sheets/internal/repositories/character/mock"
	"github.com/KirkDiggler/vtm-sheets/internal/testutils"
	"github.com/KirkDiggler/vtm-sheets/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCharRepo *characterrepomock.MockRepository
	orchestrator *character.Orchestrator
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orchestrator, err := character.New(&character.Config{
		CharacterRepo: s.mockCharRepo,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) validInput() *character.CreateCharacterInput {
	return &character.CreateCharacterInput{
		Key:           "anderson.json",
		PlayerName:    testutils.TestPlayerName,
		CharacterName: testutils.TestCharacterName,
		Chronicle:     testutils.TestChronicle,
		Highest:       vtm.AttributeDexterity,
		Lowest:        vtm.AttributeResolve,
		Mids: [3]vtm.Attribute{
			vtm.AttributeCharisma,
			vtm.AttributeIntelligence,
			vtm.AttributeManipulation,
		},
	}
}

func (s *OrchestratorTestSuite) TestNew() {
	s.Run("nil config", func() {
		_, err := character.New(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing repository", func() {
		_, err := character.New(&character.Config{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "CharacterRepo")
	})
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	s.Run("summaries in store order", func() {
		s.mockCharRepo.EXPECT().
			List(s.ctx, characterrepo.ListInput{}).
			Return(&characterrepo.ListOutput{Keys: []string{"b.json", "a.json"}}, nil)
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "b.json"}).
			Return(&characterrepo.GetOutput{Character: testutils.CreateTestCharacterNamed("Scarlet", "Lady Ashgrove")}, nil)
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "a.json"}).
			Return(&characterrepo.GetOutput{Character: testutils.CreateTestCharacter()}, nil)

		output, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{})
		s.Require().NoError(err)
		s.Require().Len(output.Characters, 2)
		s.Equal("Scarlet / Lady Ashgrove", output.Characters[0].String())
		s.Equal("b.json", output.Characters[0].Key)
		s.Equal("Juke / Mx Anderson", output.Characters[1].String())
		s.Empty(output.Skipped)
	})

	s.Run("skips records that fail to load", func() {
		decodeErr := errors.Decodef("character: missing field `player_name`")

		s.mockCharRepo.EXPECT().
			List(s.ctx, characterrepo.ListInput{}).
			Return(&characterrepo.ListOutput{Keys: []string{"bad.json", "good.json"}}, nil)
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "bad.json"}).
			Return(nil, decodeErr)
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "good.json"}).
			Return(&characterrepo.GetOutput{Character: testutils.CreateTestCharacter()}, nil)

		output, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{})
		s.Require().NoError(err)
		s.Require().Len(output.Characters, 1)
		s.Equal("good.json", output.Characters[0].Key)
		s.Require().Len(output.Skipped, 1)
		s.Equal("bad.json", output.Skipped[0].Key)
		s.True(errors.IsDecode(output.Skipped[0].Err))
	})

	s.Run("empty store", func() {
		s.mockCharRepo.EXPECT().
			List(s.ctx, characterrepo.ListInput{}).
			Return(&characterrepo.ListOutput{}, nil)

		output, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{})
		s.Require().NoError(err)
		s.Empty(output.Characters)
		s.Empty(output.Skipped)
	})

	s.Run("enumeration failure", func() {
		s.mockCharRepo.EXPECT().
			List(s.ctx, characterrepo.ListInput{}).
			Return(nil, errors.NotFound("no such directory"))

		_, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestGetSheet() {
	s.Run("derives stats", func() {
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "anderson.json"}).
			Return(&characterrepo.GetOutput{Character: testutils.CreateTestCharacter()}, nil)

		output, err := s.orchestrator.GetSheet(s.ctx, &character.GetSheetInput{Key: "anderson.json"})
		s.Require().NoError(err)

		sheet := output.Sheet
		s.Equal(6, sheet.Health.Value)
		s.Equal(vtm.Damage{Superficial: 1}, sheet.Health.Damage)
		s.Equal(3, sheet.Willpower.Value)
		s.Equal(vtm.Damage{Superficial: 2, Aggravated: 1}, sheet.Willpower.Damage)
		s.Equal(vtm.Humanity{Value: 7, Stains: 2}, sheet.Humanity)
		s.Equal(testutils.TestCharacterName, sheet.Character.CharacterName)
	})

	s.Run("default attributes", func() {
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "blank.json"}).
			Return(&characterrepo.GetOutput{Character: builders.NewCharacterBuilder().Build()}, nil)

		output, err := s.orchestrator.GetSheet(s.ctx, &character.GetSheetInput{Key: "blank.json"})
		s.Require().NoError(err)
		s.Equal(3, output.Sheet.Health.Value)
		s.Equal(0, output.Sheet.Willpower.Value)
	})

	s.Run("empty key", func() {
		_, err := s.orchestrator.GetSheet(s.ctx, &character.GetSheetInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("decode failure propagates", func() {
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "bad.json"}).
			Return(nil, errors.Decode("character: missing field `player_name`"))

		_, err := s.orchestrator.GetSheet(s.ctx, &character.GetSheetInput{Key: "bad.json"})
		s.Require().Error(err)
		s.True(errors.IsDecode(err))
	})
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	s.Run("applies distribution and defaults", func() {
		var saved *vtm.Character
		s.mockCharRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
				s.Equal("anderson.json", input.Key)
				s.False(input.Overwrite)
				saved = input.Character
				return &characterrepo.SaveOutput{Key: input.Key}, nil
			})

		output, err := s.orchestrator.CreateCharacter(s.ctx, s.validInput())
		s.Require().NoError(err)
		s.Equal("anderson.json", output.Key)
		s.Same(saved, output.Character)

		attrs := output.Character.Attributes
		s.Equal(4, attrs.Get(vtm.AttributeDexterity))
		s.Equal(1, attrs.Get(vtm.AttributeResolve))
		s.Equal(3, attrs.Get(vtm.AttributeCharisma))
		s.Equal(3, attrs.Get(vtm.AttributeIntelligence))
		s.Equal(3, attrs.Get(vtm.AttributeManipulation))
		s.Equal(2, attrs.Get(vtm.AttributeStrength))
		s.Equal(2, attrs.Get(vtm.AttributeWits))

		s.Equal(13, output.Character.Generation.Value())
		s.Equal(vtm.BloodPotency(1), output.Character.BloodPotency)
		s.Equal(vtm.Humanity{Value: 7}, output.Character.Humanity)
	})

	s.Run("generation derives blood potency", func() {
		input := s.validInput()
		gen := 10
		input.Generation = &gen
		input.Ancilla = true
		input.Overwrite = true

		s.mockCharRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input characterrepo.SaveInput) (*characterrepo.SaveOutput, error) {
				s.True(input.Overwrite)
				return &characterrepo.SaveOutput{Key: input.Key}, nil
			})

		output, err := s.orchestrator.CreateCharacter(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(10, output.Character.Generation.Value())
		s.Equal(vtm.BloodPotency(2), output.Character.BloodPotency)
		s.Equal(vtm.Humanity{Value: 6}, output.Character.Humanity)
	})

	s.Run("repeated attribute", func() {
		input := s.validInput()
		input.Mids[2] = vtm.AttributeDexterity

		_, err := s.orchestrator.CreateCharacter(s.ctx, input)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal("dexterity", errors.GetMeta(err)["attribute"])
	})

	s.Run("missing names", func() {
		input := s.validInput()
		input.PlayerName = ""
		input.CharacterName = " "

		_, err := s.orchestrator.CreateCharacter(s.ctx, input)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "player_name")
		s.Contains(err.Error(), "character_name")
	})

	s.Run("save conflict", func() {
		s.mockCharRepo.EXPECT().
			Save(s.ctx, gomock.Any()).
			Return(nil, errors.AlreadyExists("character file anderson.json already exists"))

		_, err := s.orchestrator.CreateCharacter(s.ctx, s.validInput())
		s.Require().Error(err)
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *OrchestratorTestSuite) TestCheckAttributeChoice() {
	picked := []vtm.Attribute{vtm.AttributeDexterity, vtm.AttributeResolve}

	s.NoError(character.CheckAttributeChoice(picked, vtm.AttributeWits))
	s.True(errors.IsInvalidArgument(character.CheckAttributeChoice(picked, vtm.AttributeResolve)))
	s.True(errors.IsInvalidArgument(character.CheckAttributeChoice(nil, vtm.Attribute(42))))
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
