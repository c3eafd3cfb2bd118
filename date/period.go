package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period used to bucket days, for instance to expire caches.
type Period int

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

const (
	Daily Period = iota
	Monthly
	Yearly
)

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "daily", "day":
		return Daily, nil
	case "monthly", "month":
		return Monthly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}

// StartOf returns the first day of the period containing d.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Monthly:
		return New(d.y, d.m, 1)
	case Yearly:
		return New(d.y, 1, 1)
	default:
		return d
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	switch p {
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Yearly:
		return New(d.y, 12, 31)
	default:
		return d
	}
}

// Range returns the range of the period containing d.
func (p Period) Range(d Date) Range { return Range{From: d.StartOf(p), To: d.EndOf(p)} }

// Identifier returns a short name for the period containing d, like "2025-07".
func (p Period) Identifier(d Date) string {
	switch p {
	case Monthly:
		return d.Format("2006-01")
	case Yearly:
		return d.Format("2006")
	default:
		return d.String()
	}
}
