package date

import (
	"iter"
	"slices"
)

// Series is a dense daily series: one value for every consecutive day starting at From.
//
// Missing days are represented by the zero value of T.
type Series[T any] struct {
	From   Date
	Values []T
}

// Dense builds a Series from strictly increasing days and their values. Every day
// between the first and the last one that has no value is filled with the zero T.
func Dense[T any](days []Date, values []T) Series[T] {
	if len(days) == 0 {
		return Series[T]{}
	}
	from, to := days[0], days[len(days)-1]
	s := Series[T]{From: from, Values: make([]T, to.Sub(from)+1)}
	for i, on := range days {
		s.Values[on.Sub(from)] = values[i]
	}
	return s
}

// Len returns the number of days in the series.
func (s Series[T]) Len() int { return len(s.Values) }

// Empty reports whether the series holds no day at all.
func (s Series[T]) Empty() bool { return len(s.Values) == 0 }

// To returns the last day of the series. It is meaningless for an empty series.
func (s Series[T]) To() Date { return s.From.Add(len(s.Values) - 1) }

// Range returns the range of days covered by the series.
func (s Series[T]) Range() Range { return Range{From: s.From, To: s.To()} }

// Get returns the value on day and true, or the zero value and false if day is out of
// the series.
func (s Series[T]) Get(day Date) (T, bool) {
	i := day.Sub(s.From)
	if s.Empty() || i < 0 || i >= len(s.Values) {
		var zero T
		return zero, false
	}
	return s.Values[i], true
}

// All returns an iterator over all date/value pairs, in chronological order.
func (s Series[T]) All() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, v := range s.Values {
			if !yield(s.From.Add(i), v) {
				return
			}
		}
	}
}

// Reindex returns a copy of the series over r: days outside s become zero values and
// days outside r are dropped.
func (s Series[T]) Reindex(r Range) Series[T] {
	out := Series[T]{From: r.From, Values: make([]T, 0, r.Len())}
	for day := range r.Days() {
		v, _ := s.Get(day)
		out.Values = append(out.Values, v)
	}
	return out
}

// Trim returns the sub series between the first and the last value for which keep
// returns true. It returns an empty series if keep never does.
func (s Series[T]) Trim(keep func(T) bool) Series[T] {
	first := slices.IndexFunc(s.Values, keep)
	if first < 0 {
		return Series[T]{}
	}
	last := len(s.Values) - 1
	for !keep(s.Values[last]) {
		last--
	}
	return Series[T]{From: s.From.Add(first), Values: s.Values[first : last+1]}
}
