package json

import (
	"encoding/json"
)

type RawMessage = json.RawMessage
type Object map[string]RawMessage
type Array []RawMessage

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

var (
	beginArray  = byte('[')
	beginObject = byte('{')
	beginString = byte('"')
)

func IsArray(in RawMessage) bool {
	if len(in) == 0 {
		return false
	}
	return in[0] == beginArray
}

func IsMap(in RawMessage) bool {
	if len(in) == 0 {
		return false
	}
	return in[0] == beginObject
}

func IsString(in RawMessage) bool {
	if len(in) == 0 {
		return false
	}
	return in[0] == beginString
}
