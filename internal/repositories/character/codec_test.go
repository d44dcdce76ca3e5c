package character_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	vtmerrors "github.com/KirkDiggler/vtm-sheets/internal/errors"
	"github.com/KirkDiggler/vtm-sheets/internal/repositories/character"
	"github.com/KirkDiggler/vtm-sheets/internal/testutils"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

type CodecTestSuite struct {
	suite.Suite
	sample []byte
}

func (s *CodecTestSuite) SetupSuite() {
	data, err := os.ReadFile(filepath.Join(sampleDir, "sample_char.json"))
	s.Require().NoError(err)
	s.sample = data
}

// withoutKey returns the sample document with one key removed at the given path
func (s *CodecTestSuite) withoutKey(path ...string) []byte {
	var doc map[string]interface{}
	s.Require().NoError(json.Unmarshal(s.sample, &doc))

	obj := doc
	for _, p := range path[:len(path)-1] {
		obj = obj[p].(map[string]interface{})
	}
	delete(obj, path[len(path)-1])

	data, err := json.Marshal(doc)
	s.Require().NoError(err)
	return data
}

func (s *CodecTestSuite) TestRoundTrip() {
	char, err := character.Decode(bytes.NewReader(s.sample))
	s.Require().NoError(err)

	var buf bytes.Buffer
	s.Require().NoError(character.Encode(&buf, char))
	s.Equal(string(s.sample), buf.String())

	again, err := character.Decode(&buf)
	s.Require().NoError(err)
	s.Equal(char, again)
}

func (s *CodecTestSuite) TestEncodeFixture() {
	data, err := character.Marshal(testutils.CreateTestCharacter())
	s.Require().NoError(err)
	s.Equal(string(s.sample), string(data))
}

func (s *CodecTestSuite) TestNullSpecialty() {
	char := vtm.NewCharacter(&vtm.CharacterConfig{PlayerName: "p", CharacterName: "c"})

	data, err := character.Marshal(char)
	s.Require().NoError(err)
	s.Contains(string(data), "\"craft\": [\n      0,\n      null\n    ]")

	decoded, err := character.Unmarshal(data)
	s.Require().NoError(err)
	s.False(decoded.Skills.Get(vtm.SkillCraft).HasSpecialty())
	s.Equal(char, decoded)
}

func (s *CodecTestSuite) TestUnknownKeysIgnored() {
	data := strings.Replace(string(s.sample), "{", `{"clan": "Toreador",`, 1)

	char, err := character.Unmarshal([]byte(data))
	s.Require().NoError(err)
	s.Equal(testutils.CreateTestCharacter(), char)
}

func (s *CodecTestSuite) TestDecodeErrors() {
	testCases := []struct {
		name  string
		input []byte
		field string
	}{
		{name: "empty", input: []byte("")},
		{name: "null", input: []byte("null")},
		{name: "not json", input: []byte("player_name = Juke")},
		{name: "wrong shape", input: []byte("[1, 2, 3]")},
		{name: "missing player_name", input: s.withoutKey("player_name"), field: "player_name"},
		{name: "missing hunger", input: s.withoutKey("hunger"), field: "hunger"},
		{name: "missing one attribute", input: s.withoutKey("attributes", "wits"), field: "wits"},
		{name: "missing one skill", input: s.withoutKey("skills", "occult"), field: "occult"},
		{name: "missing aggravated damage", input: s.withoutKey("damage", "aggravated"), field: "aggravated"},
		{name: "missing humanity stains", input: s.withoutKey("humanity", "stains"), field: "stains"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			char, err := character.Decode(bytes.NewReader(tc.input))
			s.Require().Error(err)
			s.Nil(char)
			s.True(vtmerrors.IsDecode(err), "got %v", err)
			if tc.field != "" {
				s.Equal(tc.field, vtmerrors.GetMeta(err)["field"])
			}
		})
	}
}

func (s *CodecTestSuite) TestIOErrors() {
	s.Run("read failure", func() {
		_, err := character.Decode(failingReader{})
		s.True(vtmerrors.IsIO(err))
	})

	s.Run("write failure", func() {
		err := character.Encode(failingWriter{}, testutils.CreateTestCharacter())
		s.True(vtmerrors.IsIO(err))
	})

	s.Run("nil character", func() {
		err := character.Encode(&bytes.Buffer{}, nil)
		s.True(vtmerrors.IsInvalidArgument(err))
	})
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}
