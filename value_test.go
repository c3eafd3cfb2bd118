package dadosbr

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseValue(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		kind Kind
		text string
	}{
		{"number", "12.5", Number, "12.5"},
		{"padded number", " 3 ", Number, "3"},
		{"exponent", "1e2", Number, "100"},
		{"empty", "", Null, ""},
		{"blank", "   ", Null, ""},
		{"not a number", "ERRO", Raw, "ERRO"},
		{"comma decimal is kept raw", "1,5", Raw, "1,5"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := ParseValue(tc.in)
			if v.Kind() != tc.kind {
				t.Fatalf("ParseValue(%q).Kind() = %v, want %v", tc.in, v.Kind(), tc.kind)
			}
			if v.String() != tc.text {
				t.Errorf("ParseValue(%q).String() = %q, want %q", tc.in, v.String(), tc.text)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	n := NumberOf(decimal.RequireFromString("7.25"))
	if f, ok := n.Float64(); !ok || f != 7.25 {
		t.Errorf("Float64() = %v, %v", f, ok)
	}
	if _, ok := n.Raw(); ok {
		t.Error("Raw() on a number should report false")
	}
	r := RawOf("x")
	if s, ok := r.Raw(); !ok || s != "x" {
		t.Errorf("Raw() = %q, %v", s, ok)
	}
	if _, ok := r.Decimal(); ok {
		t.Error("Decimal() on a raw value should report false")
	}
	var null Value
	if !null.IsNull() {
		t.Error("the zero Value should be null")
	}
	if !n.Equal(ParseValue("7.250")) {
		t.Error("7.25 and 7.250 should be equal")
	}
	if n.Equal(r) || r.Equal(null) {
		t.Error("values of different kinds should differ")
	}
}

func TestValueMarshalJSON(t *testing.T) {
	got, err := json.Marshal([]Value{ParseValue("1.5"), RawOf("n/d"), {}})
	if err != nil {
		t.Fatalf("json.Marshal() unexpected error: %v", err)
	}
	if want := `[1.5,"n/d",null]`; string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}
