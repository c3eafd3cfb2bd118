package date

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range between two dates, whatever their order.
func NewRange(a, b Date) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{From: a, To: b}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Len returns the number of days in the range, boundaries included.
func (r Range) Len() int {
	if r.To.Before(r.From) {
		return 0
	}
	return r.To.Sub(r.From) + 1
}

// Days iterates over every day of the range in ascending order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for i := range r.Len() {
			if !yield(r.From.Add(i)) {
				return
			}
		}
	}
}

// Union returns the smallest range covering both r and x.
func (r Range) Union(x Range) Range {
	u := r
	if x.From.Before(u.From) {
		u.From = x.From
	}
	if x.To.After(u.To) {
		u.To = x.To
	}
	return u
}

func (r Range) String() string { return fmt.Sprintf("%s_%s", r.From, r.To) }
