package quantfolio

import (
	"iter"
	"slices"
	"sort"

	"github.com/etnz/quantfolio/date"
)

// Series stores a chronological sequence of float64 values, each associated
// with a specific date. It ensures that dates are unique and the sequence is
// always sorted.
type Series struct {
	days   []date.Date
	values []float64
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.days) }

// chronological is a private implementation to make a series chronologically sorted.
type chronological struct{ *Series }

func (c chronological) Len() int           { return len(c.days) }
func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }
func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.values[i], c.values[j] = c.values[j], c.values[i]
}

// Append adds a point to the series. An existing value at that date is
// overwritten, because later data has higher priority.
func (s *Series) Append(on date.Date, v float64) *Series {
	if i := slices.Index(s.days, on); i >= 0 {
		s.values[i] = v
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, v)
	sort.Sort(chronological{s})
	return s
}

// Get returns the value at 'day' and true, or zero and false.
func (s *Series) Get(day date.Date) (float64, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.values[i], true
	}
	return 0, false
}

// ValueAsOf returns the value on a given day, or the most recent value
// before it. It returns the value and true if found, otherwise zero and false.
func (s *Series) ValueAsOf(day date.Date) (float64, bool) {
	i, found := slices.BinarySearchFunc(s.days, day, date.Date.Compare)
	if found {
		return s.values[i], true
	}
	// `i` is the insertion index; the last entry before the target is at i-1.
	if i == 0 {
		return 0, false
	}
	return s.values[i-1], true
}

// First returns the earliest date and value. Zero values on an empty series.
func (s *Series) First() (date.Date, float64) {
	if len(s.days) == 0 {
		return date.Date{}, 0
	}
	return s.days[0], s.values[0]
}

// Last returns the latest date and value. Zero values on an empty series.
func (s *Series) Last() (date.Date, float64) {
	last := len(s.days) - 1
	if last < 0 {
		return date.Date{}, 0
	}
	return s.days[last], s.values[last]
}

// Date returns the date at position i.
func (s *Series) Date(i int) date.Date { return s.days[i] }

// Value returns the value at position i.
func (s *Series) Value(i int) float64 { return s.values[i] }

// Values returns an iterator over all date/value pairs, in chronological order.
func (s *Series) Values() iter.Seq2[date.Date, float64] {
	return func(yield func(date.Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Floats returns a copy of the values in chronological order.
func (s *Series) Floats() []float64 { return slices.Clone(s.values) }

// Dates returns a copy of the dates in chronological order.
func (s *Series) Dates() []date.Date { return slices.Clone(s.days) }

// window returns the values of the w points ending at position i (inclusive),
// without copying. Callers must not mutate the result.
func (s *Series) window(i, w int) []float64 { return s.values[i-w+1 : i+1] }

// Truncate returns a new series keeping only the points within r.
func (s *Series) Truncate(r date.Range) *Series {
	t := &Series{}
	for i, on := range s.days {
		if r.Contains(on) {
			t.days = append(t.days, on)
			t.values = append(t.values, s.values[i])
		}
	}
	return t
}

// From returns a new series keeping only the points on or after the given day.
func (s *Series) From(day date.Date) *Series {
	t := &Series{}
	for i, on := range s.days {
		if !on.Before(day) {
			t.days = append(t.days, on)
			t.values = append(t.values, s.values[i])
		}
	}
	return t
}

// aligned reports whether all series share exactly the same date index.
func aligned(series ...*Series) bool {
	if len(series) < 2 {
		return true
	}
	first := series[0]
	for _, s := range series[1:] {
		if !slices.Equal(first.days, s.days) {
			return false
		}
	}
	return true
}
