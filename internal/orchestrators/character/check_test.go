package character_test

import (
	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-sheets/internal/errors"
	"github.com/KirkDiggler/vtm-sheets/internal/orchestrators/character"
	characterrepo "github.com/KirkDiggler/vtm-sheets/internal/repositories/character"
	"github.com/KirkDiggler/vtm-sheets/internal/testutils"
	"github.com/KirkDiggler/vtm-sheets/internal/testutils/builders"
)

func (s *OrchestratorTestSuite) TestCheckCharacters() {
	s.Run("reports decode and validation problems", func() {
		overdrawn := builders.NewCharacterBuilder().
			WithAttribute(vtm.AttributeStrength, 6).
			WithHumanity(11, 0).
			Build()

		s.mockCharRepo.EXPECT().
			List(s.ctx, characterrepo.ListInput{}).
			Return(&characterrepo.ListOutput{Keys: []string{"good.json", "bad.json", "overdrawn.json"}}, nil)
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "good.json"}).
			Return(&characterrepo.GetOutput{Character: testutils.CreateTestCharacter()}, nil)
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "bad.json"}).
			Return(nil, errors.Decode("character: missing field `hunger`"))
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{Key: "overdrawn.json"}).
			Return(&characterrepo.GetOutput{Character: overdrawn}, nil)

		output, err := s.orchestrator.CheckCharacters(s.ctx, &character.CheckCharactersInput{})
		s.Require().NoError(err)
		s.Equal(3, output.Checked)
		s.Require().Len(output.Problems, 2)

		s.Equal("bad.json", output.Problems[0].Key)
		s.True(errors.IsDecode(output.Problems[0].Err))

		s.Equal("overdrawn.json", output.Problems[1].Key)
		s.True(errors.IsInvalidArgument(output.Problems[1].Err))
		s.Contains(output.Problems[1].Err.Error(), "attributes.strength")
		s.Contains(output.Problems[1].Err.Error(), "humanity.value")
	})

	s.Run("enumeration failure", func() {
		s.mockCharRepo.EXPECT().
			List(s.ctx, characterrepo.ListInput{}).
			Return(nil, errors.Unavailable("redis down"))

		_, err := s.orchestrator.CheckCharacters(s.ctx, &character.CheckCharactersInput{})
		s.Require().Error(err)
		s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	})
}
