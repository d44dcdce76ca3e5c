package main

import (
	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

func (s *CLITestSuite) TestCheck() {
	s.save("a.json", "Juke", "Mx Anderson")

	s.Run("all good", func() {
		s.Require().NoError(s.execute("", "check", s.dir))
		s.Equal("Checked 1 sheets, 0 with problems\n", s.stdout.String())
	})

	s.Run("broken sheet", func() {
		s.writeBroken("b.json")

		err := s.execute("", "check", s.dir)
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Contains(s.stdout.String(), "✗ b.json")
		s.Contains(s.stdout.String(), "Checked 2 sheets, 1 with problems")
	})
}
