package core

import (
	"bytes"
	"strconv"
	"strings"
)

// Quantity is an integer stock quantity that tolerates malformed upstream
// values. Admin tools and older exports occasionally emit quantities as
// quoted strings or outright garbage; one bad record must not abort an
// aggregation pass. A value that cannot be parsed classifies as 0, with
// the original text preserved in Raw for display and debugging.
type Quantity struct {
	Value int
	Raw   string // original text, set only when the upstream value was not numeric
}

// Qty is a convenience constructor for well-formed quantities.
func Qty(v int) Quantity {
	return Quantity{Value: v}
}

// UnmarshalJSON accepts JSON numbers, numeric strings ("12", "12.0"),
// and null. Anything unparsable yields Value 0 with Raw holding the
// original text. It never returns an error.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "null" || s == "" {
		*q = Quantity{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	s = strings.TrimSpace(s)

	if n, err := strconv.Atoi(s); err == nil {
		*q = Quantity{Value: n}
		return nil
	}
	// Fractional quantities are truncated toward zero.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*q = Quantity{Value: int(f)}
		return nil
	}

	*q = Quantity{Value: 0, Raw: s}
	return nil
}

// MarshalJSON emits the parsed integer value. Raw is surfaced separately
// on the derived views, not on the wire representation of the record.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(q.Value)), nil
}
