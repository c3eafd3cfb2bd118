// Package renderer formats dadosbr results as Markdown.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/dadosbr/dadosbr/ana"
	"github.com/dadosbr/dadosbr/ckan"
	"github.com/dadosbr/dadosbr/fetch"
)

// cell escapes the characters that would break a table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// ProductsMarkdown lists the products of an institution.
func ProductsMarkdown(institution string, products []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Products of %s", strings.ToUpper(institution)))
	if len(products) == 0 {
		doc.PlainText("No product found.")
		return doc.String()
	}
	doc.BulletList(products...)
	return doc.String()
}

// StationsMarkdown renders a station directory as a table.
func StationsMarkdown(stations []ana.Station) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Stations (%d)", len(stations)))
	if len(stations) == 0 {
		doc.PlainText("No station found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Code", "Name", "City", "State", "Latitude", "Longitude"},
		Rows:   [][]string{},
	}
	for _, s := range stations {
		table.Rows = append(table.Rows, []string{
			s.Code,
			cell(s.Name),
			cell(s.City),
			cell(s.State),
			strconv.FormatFloat(s.Latitude, 'f', -1, 64),
			strconv.FormatFloat(s.Longitude, 'f', -1, 64),
		})
	}
	doc.Table(table)
	return doc.String()
}

// MatrixMarkdown renders a station matrix: one row per day, one column per station.
// Missing readings are empty cells.
func MatrixMarkdown(title string, m *ana.Matrix) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if m == nil || m.Empty() {
		doc.PlainText("No data.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d days from %s to %s, %d stations.", m.Len(), m.From(), m.To(), len(m.Stations())))

	stations := m.Stations()
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    append([]string{"Date"}, stations...),
		Rows:      [][]string{},
	}
	for range stations {
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	for day, values := range m.Rows() {
		row := make([]string, 0, len(values)+1)
		row = append(row, day.String())
		for _, v := range values {
			row = append(row, cell(v.String()))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// TableMarkdown renders a catalog table, limited to its first maxRows rows when
// maxRows > 0.
func TableMarkdown(title string, t *ckan.Table, maxRows int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if t.Empty() {
		doc.PlainText("No data.")
		return doc.String()
	}

	rows := t.Rows
	if maxRows > 0 && len(rows) > maxRows {
		rows = rows[:maxRows]
		doc.PlainText(fmt.Sprintf("First %d of %d rows.", maxRows, t.Len()))
	} else {
		doc.PlainText(fmt.Sprintf("%d rows.", t.Len()))
	}

	table := md.TableSet{
		Header: make([]string, len(t.Columns)),
		Rows:   make([][]string, 0, len(rows)),
	}
	for j, name := range t.Columns {
		table.Header[j] = cell(name)
		table.Alignment = append(table.Alignment, md.AlignLeft)
	}
	for _, r := range rows {
		row := make([]string, len(r))
		for j, c := range r {
			row[j] = cell(c)
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}

// DatasetMarkdown renders whatever CollectData returned.
func DatasetMarkdown(ds *fetch.Dataset, maxRows int) string {
	if ds == nil {
		return MatrixMarkdown("No data", nil)
	}
	title := fmt.Sprintf("%s %s", strings.ToUpper(ds.Institution.String()), ds.Product)
	if ds.Table != nil {
		return TableMarkdown(title, ds.Table, maxRows)
	}
	return MatrixMarkdown(title, ds.Matrix)
}
