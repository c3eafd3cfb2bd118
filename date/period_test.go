package date

import (
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	d := New(2024, time.February, 10)
	testCases := []struct {
		period Period
		want   Range
		id     string
	}{
		{Daily, Range{From: d, To: d}, "2024-02-10"},
		{Monthly, Range{From: New(2024, time.February, 1), To: New(2024, time.February, 29)}, "2024-02"},
		{Yearly, Range{From: New(2024, time.January, 1), To: New(2024, time.December, 31)}, "2024"},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := tc.period.Range(d); got != tc.want {
				t.Errorf("Range() = %v, want %v", got, tc.want)
			}
			if got := tc.period.Identifier(d); got != tc.id {
				t.Errorf("Identifier() = %q, want %q", got, tc.id)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"day": Daily, "Monthly": Monthly, "YEAR": Yearly} {
		got, err := ParsePeriod(in)
		if err != nil || got != want {
			t.Errorf("ParsePeriod(%q) = %v, %v want %v", in, got, err, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(fortnight) expected an error")
	}
}
