package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("player_name", "is required")
	ve.AddFieldError("highest", "is invalid")
	ve.AddFieldErrorf("strength", "must be at most %d", 5)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "player_name: is required")
	s.Assert().Contains(ve.Error(), "highest: is invalid")
	s.Assert().Contains(ve.Error(), "strength: must be at most 5")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("player_name", "is required").
		Fieldf("hunger", "must be between %d and %d", 0, 5).
		RequiredField("character_name").
		InvalidField("mids", "attribute used twice")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("strength", 6, 0, 5, vb)
	errors.ValidateRange("wits", 3, 0, 5, vb)
	errors.ValidateRange("humanity", -1, 0, 10, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["strength"][0], "must be between 0 and 5")
	s.Assert().Contains(validationErrors["humanity"][0], "must be between 0 and 10")
	s.Assert().NotContains(validationErrors, "wits")
}

func (s *ValidationTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("damage.superficial", -2, 0, vb)
	errors.ValidateMin("damage.aggravated", 0, 0, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["damage.superficial"][0], "must be at least 0")
	s.Assert().NotContains(validationErrors, "damage.aggravated")
}
