package kernel

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// LooseInt decodes from a JSON number or a numeric string. Anything that is
// not a number becomes 0.
type LooseInt int64

func (n *LooseInt) UnmarshalJSON(data []byte) error {
	v, _ := parseLooseNumber(data)
	*n = LooseInt(v)
	return nil
}

func (n LooseInt) Int64() int64 { return int64(n) }

// OptionalInt decodes like LooseInt but keeps "absent" for empty,
// non-numeric or non-positive input.
type OptionalInt struct {
	Value int
	Valid bool
}

func (n *OptionalInt) UnmarshalJSON(data []byte) error {
	v, ok := parseLooseNumber(data)
	if !ok || v <= 0 {
		*n = OptionalInt{}
		return nil
	}
	*n = OptionalInt{Value: int(v), Valid: true}
	return nil
}

func (n OptionalInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns nil when the value is absent
func (n OptionalInt) Ptr() *int {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// CoerceInt parses user-entered text, returning 0 for anything non-numeric
func CoerceInt(s string) int64 {
	v, _ := parseLooseString(s)
	return v
}

func parseLooseNumber(data []byte) (int64, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false
	}

	raw := string(data)
	if data[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return 0, false
		}
		raw = s
	}
	return parseLooseString(raw)
}

func parseLooseString(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, true
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}
