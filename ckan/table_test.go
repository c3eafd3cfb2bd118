package ckan

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/dadosbr/dadosbr"
)

func TestTable_Decimal(t *testing.T) {
	tab := &Table{
		Columns: []string{"valor"},
		Rows:    [][]string{{"1234.5"}, {"1234,5"}, {" -3 "}, {""}, {"1.234,5"}, {"n/d"}},
	}
	testCases := []struct {
		row     int
		want    string
		ok      bool
		wantErr bool
	}{
		{0, "1234.5", true, false},
		{1, "1234.5", true, false},
		{2, "-3", true, false},
		{3, "0", false, false},
		{4, "0", false, true},
		{5, "0", false, true},
		{6, "0", false, false}, // out of range
	}
	for _, tc := range testCases {
		got, ok, err := tab.Decimal(tc.row, "valor")
		if (err != nil) != tc.wantErr {
			t.Errorf("Decimal(%d) error = %v, wantErr %v", tc.row, err, tc.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, dadosbr.ErrInvalidArgument) {
			t.Errorf("Decimal(%d) error = %v, want ErrInvalidArgument", tc.row, err)
		}
		if ok != tc.ok || !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("Decimal(%d) = %v, %v want %v, %v", tc.row, got, ok, tc.want, tc.ok)
		}
	}
	if _, ok, err := tab.Decimal(0, "unknown"); ok || err != nil {
		t.Error("Decimal() of an unknown column must report false")
	}
}

func TestTable_Append(t *testing.T) {
	tab := &Table{Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}}
	tab.Append(&Table{Columns: []string{"c", "a"}, Rows: [][]string{{"x", "3"}}})
	tab.Append(nil)
	tab.Append(&Table{Columns: []string{"b"}, Rows: [][]string{{"4"}}})

	want := &Table{
		Columns: []string{"a", "b", "c"},
		Rows: [][]string{
			{"1", "2", ""},
			{"3", "", "x"},
			{"", "4", ""},
		},
	}
	if diff := cmp.Diff(want, tab); diff != "" {
		t.Errorf("Append() mismatch (-want +got):\n%s", diff)
	}
	if cell, ok := tab.Cell(1, "c"); !ok || cell != "x" {
		t.Errorf("Cell(1, c) = %q, %v", cell, ok)
	}
}
