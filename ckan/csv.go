package ckan

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/internal/log"
)

// DownloadCSV downloads one ';'-separated Latin-1 resource into a Table.
func (c *Client) DownloadCSV(ctx context.Context, addr string) (*Table, error) {
	body, err := dadosbr.Get(ctx, c.httpClient, addr, DownloadTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", addr, err)
	}
	t, err := parseCSV(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", addr, err)
	}
	return t, nil
}

// parseCSV reads a header and its rows. Rows longer than the header or badly quoted are
// skipped, short rows are padded. An empty input is an empty Table.
func parseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // checked below

	header, err := reader.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	t := &Table{Columns: uniqueNames(header)}

	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		if len(record) > len(t.Columns) {
			skipped++
			continue
		}
		if n := len(t.Columns) - len(record); n > 0 {
			record = append(record, make([]string, n)...)
		}
		t.Rows = append(t.Rows, record)
	}
	if skipped > 0 {
		log.Debugw("skipped malformed csv rows", "skipped", skipped, "kept", len(t.Rows))
	}
	return t, nil
}

// uniqueNames suffixes repeated column names with .1, .2, ...
func uniqueNames(header []string) []string {
	names := make([]string, len(header))
	seen := make(map[string]int, len(header))
	taken := make(map[string]bool, len(header))
	for _, h := range header {
		taken[strings.TrimSpace(h)] = true
	}
	for i, h := range header {
		name := strings.TrimSpace(h)
		if n, dup := seen[name]; dup {
			candidate := name
			for candidate == name || taken[candidate] {
				n++
				candidate = name + "." + strconv.Itoa(n)
			}
			seen[name] = n
			taken[candidate] = true
			names[i] = candidate
			continue
		}
		seen[name] = 0
		names[i] = name
	}
	return names
}

// DownloadProduct downloads every CSV resource of a product, one after the other, and
// concatenates them by column name. Resources that fail or hold no row are skipped. It
// returns nil when the product has no CSV resource or none could be read.
func (c *Client) DownloadProduct(ctx context.Context, host, product string) (*Table, error) {
	resources, err := c.ListResources(ctx, host, product)
	if err != nil {
		return nil, err
	}
	var links []string
	for _, res := range resources {
		if strings.Contains(res.Format, "csv") {
			links = append(links, res.URL)
		}
	}
	if len(links) == 0 {
		log.Warnw("product has no csv resource", "product", product, "host", host)
		return nil, nil
	}

	log.Infow("downloading product", "product", product, "files", len(links))
	var all *Table
	for _, link := range links {
		t, err := c.DownloadCSV(ctx, link)
		if err != nil {
			log.Debugw("resource skipped", "url", link, "error", err)
			continue
		}
		if t.Empty() {
			log.Debugw("resource skipped", "url", link, "error", "no row")
			continue
		}
		if all == nil {
			all = t
			continue
		}
		all.Append(t)
	}
	return all, nil
}
