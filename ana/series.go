package ana

import (
	"bytes"
	"cmp"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/date"
)

// record is the reading of one day at one consistency level.
type record struct {
	day         date.Date
	consistency int
	value       dadosbr.Value
}

// Series fetches the historical series of one station and resolves it into a dense daily
// series. A station without any monthly record yields an empty series.
func (c *Client) Series(ctx context.Context, code string, dt DataType) (date.Series[dadosbr.Value], error) {
	code, err := NormalizeCode(code)
	if err != nil {
		return date.Series[dadosbr.Value]{}, err
	}
	if _, err := ParseDataType(string(dt)); err != nil {
		return date.Series[dadosbr.Value]{}, err
	}
	params := url.Values{
		"codEstacao":        {code},
		"dataInicio":        {""},
		"dataFim":           {""},
		"tipoDados":         {string(dt)},
		"nivelConsistencia": {""},
	}
	body, err := c.get(ctx, "HidroSerieHistorica", params.Encode())
	if err != nil {
		return date.Series[dadosbr.Value]{}, fmt.Errorf("failed to fetch series: %w", err)
	}
	records, err := parseSeries(bytes.NewReader(body), dt)
	if err != nil {
		return date.Series[dadosbr.Value]{}, fmt.Errorf("failed to parse series: %w", err)
	}
	return resolve(records), nil
}

// field is any child element of a monthly record.
type field struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// monthRecord is one <SerieHistorica> element: one station, one month, one consistency level.
type monthRecord struct {
	Fields []field `xml:",any"`
}

// dateLayouts are the DataHora formats seen in the service responses.
var dateLayouts = []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}

func parseMonthStart(s string) (date.Date, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return date.Of(t).StartOfMonth(), nil
		}
	}
	return date.Date{}, fmt.Errorf("invalid DataHora %q", s)
}

// parseSeries reads every monthly record and expands it into daily records. A day
// field that is absent (day 31 of April) or empty is null, a non-numeric one is kept raw.
func parseSeries(r io.Reader, dt DataType) ([]record, error) {
	var records []record
	err := eachElement(r, "SerieHistorica", func(d *xml.Decoder, start xml.StartElement) error {
		var month monthRecord
		if err := d.DecodeElement(&month, &start); err != nil {
			return err
		}
		fields := make(map[string]string, len(month.Fields))
		for _, f := range month.Fields {
			fields[f.XMLName.Local] = f.Text
		}

		if _, err := NormalizeCode(fields["EstacaoCodigo"]); err != nil {
			return err
		}
		consistency, err := strconv.Atoi(strings.TrimSpace(fields["NivelConsistencia"]))
		if err != nil {
			return fmt.Errorf("invalid NivelConsistencia %q: %w", fields["NivelConsistencia"], err)
		}
		first, err := parseMonthStart(fields["DataHora"])
		if err != nil {
			return err
		}

		for i := range first.DaysInMonth() {
			rec := record{day: first.Add(i), consistency: consistency}
			if text, ok := fields[dt.Field(i+1)]; ok {
				rec.value = dadosbr.ParseValue(text)
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

// resolve sorts records by day then consistency, keeps the last record of every day,
// so the highest consistency level wins, and lays them on a dense daily calendar.
func resolve(records []record) date.Series[dadosbr.Value] {
	slices.SortStableFunc(records, func(a, b record) int {
		if c := a.day.Compare(b.day); c != 0 {
			return c
		}
		return cmp.Compare(a.consistency, b.consistency)
	})

	days := make([]date.Date, 0, len(records))
	values := make([]dadosbr.Value, 0, len(records))
	for i, rec := range records {
		if i+1 < len(records) && records[i+1].day == rec.day {
			continue
		}
		days = append(days, rec.day)
		values = append(values, rec.value)
	}
	return date.Dense(days, values)
}
