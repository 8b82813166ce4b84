package provider

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LooseString decodes a JSON string, number or bool as text. Objects, arrays
// and null decode to "" so one odd field never fails a whole payload.
type LooseString string

func (s *LooseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*s = ""
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = LooseString(v)
	case b[0] == '{' || b[0] == '[':
		*s = ""
	default:
		*s = LooseString(b)
	}
	return nil
}

func (s LooseString) String() string { return string(s) }

// LooseFloat decodes a JSON number or numeric string. Anything else,
// including Infinity and NaN, is 0.
type LooseFloat float64

func (f *LooseFloat) UnmarshalJSON(b []byte) error {
	var s LooseString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(string(s)), ",", ""), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		*f = 0
		return nil
	}
	*f = LooseFloat(v)
	return nil
}
