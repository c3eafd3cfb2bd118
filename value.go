package dadosbr

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind tells which variant a Value holds.
type Kind int

const (
	Null   Kind = iota // no reading
	Number             // a numeric reading
	Raw                // a reading that is present but not numeric, kept verbatim
)

// Value is a single daily reading. The zero Value is Null.
type Value struct {
	kind   Kind
	number decimal.Decimal
	raw    string
}

// NumberOf returns a Number value.
func NumberOf(d decimal.Decimal) Value { return Value{kind: Number, number: d} }

// RawOf returns a Raw value.
func RawOf(s string) Value { return Value{kind: Raw, raw: s} }

// ParseValue interprets the text of an upstream field: empty text is Null, a number is a
// Number and anything else is kept as Raw.
func ParseValue(text string) Value {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Value{}
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return RawOf(text)
	}
	return NumberOf(d)
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds no reading.
func (v Value) IsNull() bool { return v.kind == Null }

// Decimal returns the numeric reading, if any.
func (v Value) Decimal() (decimal.Decimal, bool) { return v.number, v.kind == Number }

// Float64 returns the numeric reading as a float, if any.
func (v Value) Float64() (float64, bool) {
	if v.kind != Number {
		return 0, false
	}
	return v.number.InexactFloat64(), true
}

// Raw returns the verbatim text of a non-numeric reading, if any.
func (v Value) Raw() (string, bool) { return v.raw, v.kind == Raw }

// Equal reports whether v and w hold the same variant and reading.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case Number:
		return v.number.Equal(w.number)
	case Raw:
		return v.raw == w.raw
	default:
		return true
	}
}

// String returns the reading as text; Null is the empty string.
func (v Value) String() string {
	switch v.kind {
	case Number:
		return v.number.String()
	case Raw:
		return v.raw
	default:
		return ""
	}
}

// MarshalJSON encodes Null as null, a Number as a JSON number and Raw as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Number:
		return []byte(v.number.String()), nil
	case Raw:
		return json.Marshal(v.raw)
	default:
		return []byte("null"), nil
	}
}

var _ json.Marshaler = Value{}
