package character

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

// Decode reads one character document. Malformed JSON and missing fields are
// reported as errors.Decode; nothing is recovered from a partial document.
func Decode(r io.Reader) (*vtm.Character, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeIO, "failed to read character")
	}

	return Unmarshal(data)
}

// Unmarshal decodes one character document held in memory
func Unmarshal(data []byte) (*vtm.Character, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.Decode("character document is empty")
	}

	var c vtm.Character
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDecode, "failed to decode character")
	}

	return &c, nil
}

// Encode writes one character document
func Encode(w io.Writer, c *vtm.Character) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return errors.WrapWithCode(err, errors.CodeIO, "failed to write character")
	}

	return nil
}

// Marshal encodes one character document as indented JSON with a trailing
// newline. The output is stable, so decoding and re-encoding it yields the
// same bytes.
func Marshal(c *vtm.Character) ([]byte, error) {
	if c == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode character")
	}

	return append(data, '\n'), nil
}
