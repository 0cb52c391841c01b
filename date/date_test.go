package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{"2025-07-01", New(2025, time.July, 1), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"not-a-date", Date{}, true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("Parse(%q) error = %v, want error %v", tc.in, err, tc.err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestStartOfEndOf(t *testing.T) {
	d := New(2024, time.February, 14) // a Wednesday
	tests := []struct {
		period Period
		start  Date
		end    Date
	}{
		{Daily, d, d},
		{Weekly, New(2024, time.February, 12), New(2024, time.February, 18)},
		{Monthly, New(2024, time.February, 1), New(2024, time.February, 29)},
		{Quarterly, New(2024, time.January, 1), New(2024, time.March, 31)},
		{Yearly, New(2024, time.January, 1), New(2024, time.December, 31)},
	}
	for _, tc := range tests {
		if got := d.StartOf(tc.period); got != tc.start {
			t.Errorf("StartOf(%s) = %s, want %s", tc.period, got, tc.start)
		}
		if got := d.EndOf(tc.period); got != tc.end {
			t.Errorf("EndOf(%s) = %s, want %s", tc.period, got, tc.end)
		}
	}
}

func TestPeriod_StartsOn(t *testing.T) {
	if !Monthly.StartsOn(New(2024, time.March, 1)) {
		t.Error("March 1st should start a monthly bucket")
	}
	if Monthly.StartsOn(New(2024, time.March, 2)) {
		t.Error("March 2nd should not start a monthly bucket")
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
		err  bool
	}{
		{"monthly", Monthly, false},
		{"Month", Monthly, false},
		{"week", Weekly, false},
		{"yearly", Yearly, false},
		{"decade", Daily, true},
	}
	for _, tc := range tests {
		got, err := ParsePeriod(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("ParsePeriod(%q) error = %v, want error %v", tc.in, err, tc.err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRange_Identifier(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{NewRange(New(2024, time.February, 14), Monthly), "2024-02"},
		{NewRange(New(2024, time.February, 14), Quarterly), "2024-Q1"},
		{NewRange(New(2024, time.February, 14), Yearly), "2024"},
		{Range{New(2024, time.January, 2), New(2024, time.January, 5)}, "2024-01-02_2024-01-05"},
	}
	for _, tc := range tests {
		if got := tc.r.Identifier(); got != tc.want {
			t.Errorf("Identifier() = %q, want %q", got, tc.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := New(2024, time.June, 30)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}
	var got Date
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() failed: %v", err)
	}
	if got != d {
		t.Errorf("round trip = %s, want %s", got, d)
	}
}
