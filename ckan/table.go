package ckan

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dadosbr/dadosbr"
)

// Table is a tabular dataset: named columns and string rows. An empty cell is missing.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Empty reports whether t has no row.
func (t *Table) Empty() bool { return t == nil || len(t.Rows) == 0 }

// Column returns the index of a column, or -1.
func (t *Table) Column(name string) int { return slices.Index(t.Columns, name) }

// Cell returns the cell of a row in a named column. It reports false for an unknown
// column or an out of range row.
func (t *Table) Cell(row int, column string) (string, bool) {
	j := t.Column(column)
	if j < 0 || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return t.Rows[row][j], true
}

// Decimal coerces a cell to a number. Both "1234.5" and "1234,5" are accepted. It
// reports false for a missing cell and fails for anything else that is not a number.
func (t *Table) Decimal(row int, column string) (decimal.Decimal, bool, error) {
	cell, ok := t.Cell(row, column)
	cell = strings.TrimSpace(cell)
	if !ok || cell == "" {
		return decimal.Decimal{}, false, nil
	}
	if strings.Count(cell, ",") == 1 && !strings.Contains(cell, ".") {
		cell = strings.Replace(cell, ",", ".", 1)
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Decimal{}, false, fmt.Errorf("%w: cell %q of column %q is not a number", dadosbr.ErrInvalidArgument, cell, column)
	}
	return d, true, nil
}

// Append adds the rows of other at the end of t, aligning columns by name. Columns only
// known to one side are added and left empty on the other.
func (t *Table) Append(other *Table) {
	if other == nil {
		return
	}
	index := make([]int, len(other.Columns))
	for i, name := range other.Columns {
		j := t.Column(name)
		if j < 0 {
			j = len(t.Columns)
			t.Columns = append(t.Columns, name)
		}
		index[i] = j
	}
	for i, row := range t.Rows {
		if n := len(t.Columns) - len(row); n > 0 {
			t.Rows[i] = append(row, make([]string, n)...)
		}
	}
	for _, row := range other.Rows {
		aligned := make([]string, len(t.Columns))
		for i, cell := range row[:min(len(row), len(index))] {
			aligned[index[i]] = cell
		}
		t.Rows = append(t.Rows, aligned)
	}
}
