// Package fetch is the single entry point to every supported institution. It routes
// requests to the ANA web service or to the CKAN catalogs and applies one error policy:
// invalid arguments and ANA failures are returned, catalog failures are logged and yield
// no data.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/ana"
	"github.com/dadosbr/dadosbr/ckan"
	"github.com/dadosbr/dadosbr/internal/log"
)

// Client fetches data from the four institutions.
type Client struct {
	httpClient *http.Client
	hosts      map[dadosbr.Institution]string
	fanOut     int

	ana  *ana.Client
	ckan *ckan.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the http.Client used for every request.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithHost overrides the host of an institution.
func WithHost(inst dadosbr.Institution, host string) Option {
	return func(c *Client) { c.hosts[inst] = strings.TrimRight(host, "/") }
}

// WithANABaseURL overrides the address of the ANA web service.
func WithANABaseURL(baseURL string) Option { return WithHost(dadosbr.ANA, baseURL) }

// WithFanOut sets how many ANA stations are fetched concurrently. Zero or less means
// ana.DefaultFanOut.
func WithFanOut(n int) Option {
	return func(c *Client) { c.fanOut = n }
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{hosts: make(map[dadosbr.Institution]string)}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = new(http.Client)
	}
	c.ana = ana.NewClient(c.httpClient)
	if base, ok := c.hosts[dadosbr.ANA]; ok {
		c.ana.SetBaseURL(base)
	}
	c.ckan = ckan.NewClient(c.httpClient)
	return c
}

// host resolves an institution, honouring overrides.
func (c *Client) host(inst dadosbr.Institution) (string, bool) {
	if h, ok := c.hosts[inst]; ok {
		return h, true
	}
	return dadosbr.Host(inst)
}

// Dataset is the result of CollectData: a station matrix for ANA, a table for the
// catalogs.
type Dataset struct {
	Institution dadosbr.Institution
	Product     string
	Matrix      *ana.Matrix
	Table       *ckan.Table
}

// ListProducts returns the products of an institution: the measurement types for ANA,
// the catalog packages for the others. Any failure is logged and lists nothing.
func (c *Client) ListProducts(ctx context.Context, institution string) []string {
	inst, err := dadosbr.ParseInstitution(institution)
	if err != nil {
		log.Warnw("cannot list products", "institution", institution, "error", err)
		return []string{}
	}
	if inst == dadosbr.ANA {
		products := make([]string, len(dadosbr.MeasurementTypes))
		for i, m := range dadosbr.MeasurementTypes {
			products[i] = m.String()
		}
		return products
	}

	host, _ := c.host(inst)
	products, err := c.ckan.ListProducts(ctx, host)
	if err != nil {
		log.Warnw("cannot list products", "institution", inst, "error", err)
		return []string{}
	}
	if products == nil {
		products = []string{}
	}
	return products
}

// ListStations lists the ANA stations of a measurement type, optionally filtered by
// state and city.
func (c *Client) ListStations(ctx context.Context, measurement, state, city string) ([]ana.Station, error) {
	m, err := dadosbr.ParseMeasurementType(measurement)
	if err != nil {
		return nil, err
	}
	return c.ana.Stations(ctx, m, state, city)
}

// CollectData fetches a product. For ANA the product is a measurement type and stations
// are required; for the catalogs stations are ignored. A nil Dataset and a nil error
// mean the catalog had nothing to offer.
func (c *Client) CollectData(ctx context.Context, institution, product string, stations []string) (*Dataset, error) {
	inst, err := dadosbr.ParseInstitution(institution)
	if err != nil {
		return nil, err
	}

	if inst == dadosbr.ANA {
		if product == "" || len(stations) == 0 {
			return nil, fmt.Errorf("%w: ana requires a product (vazao, chuva or cota) and stations", dadosbr.ErrInvalidArgument)
		}
		m, err := dadosbr.ParseMeasurementType(product)
		if err != nil {
			return nil, err
		}
		dt, err := ana.DataTypeFor(m)
		if err != nil {
			return nil, err
		}
		matrix, err := c.ana.Assemble(ctx, stations, dt, c.fanOut)
		if err != nil {
			return nil, err
		}
		return &Dataset{Institution: inst, Product: m.String(), Matrix: matrix}, nil
	}

	if product == "" {
		return nil, fmt.Errorf("%w: %s requires a product", dadosbr.ErrInvalidArgument, inst)
	}
	host, _ := c.host(inst)
	table, err := c.ckan.DownloadProduct(ctx, host, product)
	if err != nil {
		log.Warnw("cannot download product", "institution", inst, "product", product, "error", err)
		return nil, nil
	}
	if table == nil {
		return nil, nil
	}
	return &Dataset{Institution: inst, Product: product, Table: table}, nil
}
