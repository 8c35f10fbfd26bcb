package quote

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Honeypot records whether a hidden form field carried a truthy value.
// false, 0, "" and null leave it unset; any other value, including the
// strings "0" and "false", sets it.
type Honeypot bool

// UnmarshalJSON implements json.Unmarshaler.
func (h *Honeypot) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*h = false
		return nil
	}

	switch data[0] {
	case 'n':
		*h = false
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*h = Honeypot(b)
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*h = s != ""
	case '[', '{':
		*h = true
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		*h = n != 0
	}
	return nil
}
