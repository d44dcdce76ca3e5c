package vtm_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

type BloodTestSuite struct {
	suite.Suite
}

func TestBloodSuite(t *testing.T) {
	suite.Run(t, new(BloodTestSuite))
}

func (s *BloodTestSuite) TestNewHunger() {
	testCases := []struct {
		name     string
		input    int
		expected int
	}{
		{"zero", 0, 0},
		{"in range", 3, 3},
		{"max", 5, 5},
		{"above max is clamped", 6, 5},
		{"far above max is clamped", 200, 5},
		{"negative is clamped", -1, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			h := vtm.NewHunger(tc.input)
			s.Equal(tc.expected, h.Value())
			s.True(h.InRange())
		})
	}
}

func (s *BloodTestSuite) TestHungerZeroValue() {
	var h vtm.Hunger
	s.Equal(0, h.Value())
	s.True(h.InRange())
	s.Equal(vtm.NewHunger(0), h)
}

func (s *BloodTestSuite) TestHungerJSON() {
	data, err := json.Marshal(vtm.NewHunger(3))
	s.Require().NoError(err)
	s.Equal("3", string(data))

	var h vtm.Hunger
	s.Require().NoError(json.Unmarshal([]byte("9"), &h))
	s.Equal(5, h.Value())
	s.Equal(vtm.NewHunger(5), h)

	err = json.Unmarshal([]byte(`"hungry"`), &h)
	s.Require().Error(err)
	s.True(errors.IsDecode(err))
}

func (s *BloodTestSuite) TestNewGeneration() {
	testCases := []struct {
		name     string
		input    int
		expected int
	}{
		{"zero becomes one", 0, 1},
		{"negative becomes one", -3, 1},
		{"first", 1, 1},
		{"default", 13, 13},
		{"no upper bound", 16, 16},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, vtm.NewGeneration(tc.input).Value())
		})
	}
}

func (s *BloodTestSuite) TestGenerationZeroValueIsDefault() {
	var g vtm.Generation
	s.Equal(vtm.DefaultGeneration, g.Value())
	s.Equal(vtm.NewGeneration(13), g)
	s.Equal("13", g.String())
}

func (s *BloodTestSuite) TestNormalizedGenerationsCompareEqual() {
	s.Equal(vtm.NewGeneration(1), vtm.NewGeneration(0))
}

func (s *BloodTestSuite) TestGenerationJSON() {
	data, err := json.Marshal(vtm.NewGeneration(10))
	s.Require().NoError(err)
	s.Equal("10", string(data))

	var g vtm.Generation
	s.Require().NoError(json.Unmarshal([]byte("0"), &g))
	s.Equal(1, g.Value())

	s.Require().NoError(json.Unmarshal([]byte("11"), &g))
	s.Equal(11, g.Value())

	err = json.Unmarshal([]byte(`1.5`), &g)
	s.Require().Error(err)
	s.True(errors.IsDecode(err))
}

func (s *BloodTestSuite) TestBloodPotencyFromGeneration() {
	testCases := []struct {
		generation int
		expected   vtm.BloodPotency
	}{
		{4, 3},
		{9, 3},
		{10, 2},
		{11, 2},
		{12, 1},
		{13, 1},
		{14, 0},
		{16, 0},
	}

	for _, tc := range testCases {
		s.Run(vtm.NewGeneration(tc.generation).String(), func() {
			s.Equal(tc.expected, vtm.BloodPotencyFromGeneration(vtm.NewGeneration(tc.generation)))
		})
	}
}
