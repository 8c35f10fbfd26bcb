package quote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Field is a form value that tolerates the loose typing of browser forms:
// strings, numbers, booleans and null decode as text, and arrays of those
// (checkbox groups) are joined with ", ".
type Field string

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			var part Field
			if err := part.UnmarshalJSON(item); err != nil {
				return err
			}
			if part.Present() {
				parts = append(parts, part.String())
			}
		}
		*f = Field(strings.Join(parts, ", "))
		return nil
	}

	s, err := scalar(data)
	if err != nil {
		return err
	}
	*f = Field(s)
	return nil
}

func scalar(data []byte) (string, error) {
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case '{':
		return "", fmt.Errorf("quote: object is not a form value")
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return "", err
		}
		return n.String(), nil
	}
}

// String returns the trimmed value.
func (f Field) String() string {
	return strings.TrimSpace(string(f))
}

// Present reports whether the field holds a non-blank value.
func (f Field) Present() bool {
	return f.String() != ""
}

// Or returns the trimmed value, or placeholder when the field is blank.
func (f Field) Or(placeholder string) string {
	if !f.Present() {
		return placeholder
	}
	return f.String()
}
