package dtos

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Numeric accepts a JSON number or a numeric string, the way HTML form
// clients submit salary and position values. Empty means absent.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Numeric(strings.TrimSpace(s))
		return nil
	}
	*n = Numeric(raw)
	return nil
}

func (n Numeric) Present() bool { return n != "" }

func (n Numeric) Int() (int, error) {
	return strconv.Atoi(string(n))
}

// StringList accepts either a JSON array of strings or a bare string, which
// is wrapped into a one-element list.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = []string{one}
	return nil
}
