// Package export writes station matrices and catalog tables to files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	parquet "github.com/parquet-go/parquet-go"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/ana"
	"github.com/dadosbr/dadosbr/ckan"
)

// WriteMatrixCSV writes a matrix in wide format: a "date" column then one column per
// station. Missing readings are empty.
func WriteMatrixCSV(w io.Writer, m *ana.Matrix) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"date"}, m.Stations()...)); err != nil {
		return err
	}
	for day, values := range m.Rows() {
		record := make([]string, 0, len(values)+1)
		record = append(record, day.String())
		for _, v := range values {
			record = append(record, v.String())
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTableCSV writes a catalog table with its header.
func WriteTableCSV(w io.Writer, t *ckan.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// Reading is one row of the long format: a station reading on a day. Value is set for
// numbers, Raw for readings kept verbatim.
type Reading struct {
	Date    string   `parquet:"date"`
	Station string   `parquet:"station"`
	Value   *float64 `parquet:"value,optional"`
	Raw     *string  `parquet:"raw,optional"`
}

// readings lists the non-null readings of a matrix, day by day.
func readings(m *ana.Matrix) []Reading {
	stations := m.Stations()
	var rows []Reading
	for day, values := range m.Rows() {
		for j, v := range values {
			r := Reading{Date: day.String(), Station: stations[j]}
			switch v.Kind() {
			case dadosbr.Null:
				continue
			case dadosbr.Number:
				f, _ := v.Float64()
				r.Value = &f
			case dadosbr.Raw:
				s, _ := v.Raw()
				r.Raw = &s
			}
			rows = append(rows, r)
		}
	}
	return rows
}

// WriteMatrixParquet writes the non-null readings of a matrix in long format.
func WriteMatrixParquet(w io.Writer, m *ana.Matrix) error {
	pw := parquet.NewGenericWriter[Reading](w)
	if _, err := pw.Write(readings(m)); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// Format is an export file format.
type Format string

const (
	CSV     Format = "csv"
	Parquet Format = "parquet"
)

// FormatOf guesses the format from a file name extension.
func FormatOf(name string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return CSV, nil
	case ".parquet":
		return Parquet, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", dadosbr.ErrInvalidArgument, ext)
	}
}

// WriteFile exports a matrix or a table to name, in the format of its extension. Tables
// are only exported to CSV.
func WriteFile(name string, m *ana.Matrix, t *ckan.Table) (err error) {
	format, err := FormatOf(name)
	if err != nil {
		return err
	}
	if t != nil && format != CSV {
		return fmt.Errorf("%w: catalog tables can only be exported to csv", dadosbr.ErrInvalidArgument)
	}
	if m == nil && t == nil {
		return fmt.Errorf("%w: nothing to export", dadosbr.ErrInvalidArgument)
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch {
	case t != nil:
		return WriteTableCSV(f, t)
	case format == Parquet:
		return WriteMatrixParquet(f, m)
	default:
		return WriteMatrixCSV(f, m)
	}
}
