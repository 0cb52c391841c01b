package quantfolio

import (
	"testing"
	"time"

	"github.com/etnz/quantfolio/date"
)

func TestSeries_AppendKeepsChronologicalOrder(t *testing.T) {
	s := &Series{}
	s.Append(date.New(2024, time.March, 1), 3)
	s.Append(date.New(2024, time.January, 1), 1)
	s.Append(date.New(2024, time.February, 1), 2)

	want := []float64{1, 2, 3}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	for i, w := range want {
		if got := s.Value(i); got != w {
			t.Errorf("Value(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestSeries_AppendOverwritesSameDate(t *testing.T) {
	s := &Series{}
	on := date.New(2024, time.January, 1)
	s.Append(on, 1).Append(on, 2)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if v, _ := s.Get(on); v != 2 {
		t.Errorf("Get() = %v, want 2 (last write wins)", v)
	}
}

func TestSeries_ValueAsOf(t *testing.T) {
	s := &Series{}
	s.Append(date.New(2024, time.January, 10), 10)
	s.Append(date.New(2024, time.January, 20), 20)

	tests := []struct {
		day   date.Date
		want  float64
		found bool
	}{
		{date.New(2024, time.January, 10), 10, true},
		{date.New(2024, time.January, 15), 10, true},
		{date.New(2024, time.January, 25), 20, true},
		{date.New(2024, time.January, 5), 0, false},
	}
	for _, tc := range tests {
		got, ok := s.ValueAsOf(tc.day)
		if ok != tc.found || got != tc.want {
			t.Errorf("ValueAsOf(%s) = %v,%v want %v,%v", tc.day, got, ok, tc.want, tc.found)
		}
	}
}

func TestSeries_From(t *testing.T) {
	s := &Series{}
	for d := 1; d <= 5; d++ {
		s.Append(date.New(2024, time.January, d), float64(d))
	}
	got := s.From(date.New(2024, time.January, 3))
	if got.Len() != 3 {
		t.Fatalf("From() kept %d points, want 3", got.Len())
	}
	if first, v := got.First(); first != date.New(2024, time.January, 3) || v != 3 {
		t.Errorf("First() = %s,%v want 2024-01-03,3", first, v)
	}
}
