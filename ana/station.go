package ana

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/dadosbr/dadosbr"
)

// Station is a measurement station of the ANA inventory.
type Station struct {
	Code      string  `json:"code"` // 8 digits, zero padded
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NormalizeCode renders a station code on 8 digits, zero padded.
func NormalizeCode(code string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n < 0 {
		return "", fmt.Errorf("%w: invalid station code %q", dadosbr.ErrInvalidArgument, code)
	}
	return fmt.Sprintf("%08d", n), nil
}

// Stations lists the stations of a measurement type. Empty state or city leave the
// inventory unfiltered on that field; non-empty ones must match exactly.
func (c *Client) Stations(ctx context.Context, m dadosbr.MeasurementType, state, city string) ([]Station, error) {
	tpEst, err := StationTypeFor(m)
	if err != nil {
		return nil, err
	}
	params := url.Values{
		"codEstDE":    {""},
		"codEstATE":   {""},
		"tpEst":       {tpEst},
		"nmEst":       {""},
		"nmRio":       {""},
		"codSubBacia": {""},
		"codBacia":    {""},
		"nmMunicipio": {city},
		"nmEstado":    {state},
		"sgResp":      {""},
		"sgOper":      {""},
		"telemetrica": {""},
	}
	body, err := c.get(ctx, "HidroInventario", params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch station inventory: %w", err)
	}
	stations, err := parseStations(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse station inventory: %w", err)
	}
	return stations, nil
}

// inventoryRecord is one <Table> element of the HidroInventario response.
type inventoryRecord struct {
	Code      string `xml:"Codigo"`
	Name      string `xml:"Nome"`
	City      string `xml:"nmMunicipio"`
	State     string `xml:"nmEstado"`
	Latitude  string `xml:"Latitude"`
	Longitude string `xml:"Longitude"`
}

func parseStations(r io.Reader) ([]Station, error) {
	var stations []Station
	err := eachElement(r, "Table", func(d *xml.Decoder, start xml.StartElement) error {
		var rec inventoryRecord
		if err := d.DecodeElement(&rec, &start); err != nil {
			return err
		}
		s, err := rec.station()
		if err != nil {
			return err
		}
		stations = append(stations, s)
		return nil
	})
	return stations, err
}

func (rec inventoryRecord) station() (Station, error) {
	code, err := NormalizeCode(rec.Code)
	if err != nil {
		return Station{}, err
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(rec.Latitude), 64)
	if err != nil {
		return Station{}, fmt.Errorf("station %s: invalid latitude %q: %w", code, rec.Latitude, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(rec.Longitude), 64)
	if err != nil {
		return Station{}, fmt.Errorf("station %s: invalid longitude %q: %w", code, rec.Longitude, err)
	}
	return Station{
		Code:      code,
		Name:      strings.TrimSpace(rec.Name),
		City:      strings.TrimSpace(rec.City),
		State:     strings.TrimSpace(rec.State),
		Latitude:  lat,
		Longitude: lon,
	}, nil
}
