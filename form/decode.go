package form

import (
	"bytes"
	"encoding/json"
)

// A pair is one element of a serializeArray list.
type pair struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// Decode reads data as either a JSON object of fields
// or a list of {"name": ..., "value": ...} pairs, the latter taking the last value for a name.
// Non-string values become their JSON text and null becomes empty.
// Unknown fields are ignored.
// Anything else decodes to the zero Payload.
func Decode(data string) Payload {
	raw := bytes.TrimSpace([]byte(data))

	fields := make(map[string]json.RawMessage)
	switch {
	case bytes.HasPrefix(raw, []byte("{")):
		if err := json.Unmarshal(raw, &fields); err != nil {
			return Payload{}
		}

	case bytes.HasPrefix(raw, []byte("[")):
		var pairs []pair
		if err := json.Unmarshal(raw, &pairs); err != nil {
			return Payload{}
		}

		for _, p := range pairs {
			fields[p.Name] = p.Value
		}

	default:
		return Payload{}
	}

	return Payload{
		Name:    text(fields["name"]),
		Phone:   text(fields["phone"]),
		Email:   text(fields["email"]),
		Comment: text(fields["comment"]),
	}
}

// text returns the string a JSON value holds, or the JSON text of any other value.
func text(v json.RawMessage) string {
	v = bytes.TrimSpace(v)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}

	return string(v)
}
