package vtm

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/vtm-sheets/internal/errors"
)

var jsonNull = []byte("null")

// requireFields decodes a JSON object and checks that every key is present
// and not null. kind names the object in the returned Decode error.
func requireFields(data []byte, kind string, keys ...string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDecode, kind+" must be a JSON object")
	}

	for _, key := range keys {
		raw, ok := fields[key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			return nil, errors.Decodef("%s: missing field `%s`", kind, key).
				WithMeta("object", kind).
				WithMeta("field", key)
		}
	}

	return fields, nil
}

// decodeInt decodes one required integer member of an object
func decodeInt(raw json.RawMessage, kind, key string) (int, error) {
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errors.WrapWithCode(err, errors.CodeDecode, kind+"."+key+" must be an integer").
			WithMeta("object", kind).
			WithMeta("field", key)
	}
	return v, nil
}
