package ana

import (
	"fmt"
	"iter"
	"slices"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/date"
)

// Matrix holds the daily readings of many stations: one row per consecutive day and one
// column per station. Its first and last rows always hold at least one reading.
type Matrix struct {
	from     date.Date
	stations []string
	rows     [][]dadosbr.Value
}

// Len returns the number of days (rows).
func (m *Matrix) Len() int { return len(m.rows) }

// Empty reports whether no station yielded any reading.
func (m *Matrix) Empty() bool { return len(m.rows) == 0 }

// Stations returns the station codes, in column order.
func (m *Matrix) Stations() []string { return slices.Clone(m.stations) }

// From returns the first day of the matrix.
func (m *Matrix) From() date.Date { return m.from }

// To returns the last day of the matrix.
func (m *Matrix) To() date.Date { return m.from.Add(len(m.rows) - 1) }

// Range returns the days covered by the matrix.
func (m *Matrix) Range() date.Range { return date.Range{From: m.From(), To: m.To()} }

// Day returns the day of row i.
func (m *Matrix) Day(i int) date.Date { return m.from.Add(i) }

// Row returns the readings of row i, in column order.
func (m *Matrix) Row(i int) []dadosbr.Value { return slices.Clone(m.rows[i]) }

// Rows iterates over the days and their readings in chronological order.
func (m *Matrix) Rows() iter.Seq2[date.Date, []dadosbr.Value] {
	return date.Series[[]dadosbr.Value]{From: m.from, Values: m.rows}.All()
}

// Value returns the reading of a station on a day. It reports false when the station or
// the day is not in the matrix.
func (m *Matrix) Value(day date.Date, station string) (dadosbr.Value, bool) {
	j := slices.Index(m.stations, station)
	i := day.Sub(m.from)
	if j < 0 || i < 0 || i >= len(m.rows) {
		return dadosbr.Value{}, false
	}
	return m.rows[i][j], true
}

// Column returns the series of one station over the whole matrix range.
func (m *Matrix) Column(station string) (date.Series[dadosbr.Value], bool) {
	j := slices.Index(m.stations, station)
	if j < 0 {
		return date.Series[dadosbr.Value]{}, false
	}
	s := date.Series[dadosbr.Value]{From: m.from, Values: make([]dadosbr.Value, len(m.rows))}
	for i, row := range m.rows {
		s.Values[i] = row[j]
	}
	return s, true
}

// NewMatrix merges per-station series, given in column order, the way Assemble does.
func NewMatrix(stations []string, series []date.Series[dadosbr.Value]) (*Matrix, error) {
	if len(stations) != len(series) {
		return nil, fmt.Errorf("%w: %d stations for %d series", dadosbr.ErrInvalidArgument, len(stations), len(series))
	}
	return merge(stations, series), nil
}

// merge outer-joins station series by day, skipping empty ones, then trims leading and
// trailing days without any reading.
func merge(stations []string, series []date.Series[dadosbr.Value]) *Matrix {
	var codes []string
	var columns []date.Series[dadosbr.Value]
	var span date.Range
	for i, s := range series {
		if s.Empty() {
			continue
		}
		if len(columns) == 0 {
			span = s.Range()
		} else {
			span = span.Union(s.Range())
		}
		codes = append(codes, stations[i])
		columns = append(columns, s)
	}
	if len(columns) == 0 {
		return &Matrix{}
	}

	for j, col := range columns {
		columns[j] = col.Reindex(span)
	}
	table := date.Series[[]dadosbr.Value]{From: span.From, Values: make([][]dadosbr.Value, span.Len())}
	for i := range table.Values {
		row := make([]dadosbr.Value, len(columns))
		for j, col := range columns {
			row[j] = col.Values[i]
		}
		table.Values[i] = row
	}

	table = table.Trim(func(row []dadosbr.Value) bool {
		return slices.ContainsFunc(row, func(v dadosbr.Value) bool { return !v.IsNull() })
	})
	if table.Empty() {
		return &Matrix{}
	}
	return &Matrix{from: table.From, stations: codes, rows: table.Values}
}
