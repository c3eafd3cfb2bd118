package ckan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"

	"github.com/dadosbr/dadosbr"
)

const (
	// CatalogTimeout bounds every catalog action call.
	CatalogTimeout = 60 * time.Second

	// DownloadTimeout bounds every resource download.
	DownloadTimeout = 90 * time.Second
)

// Resource is a downloadable file of a product.
type Resource struct {
	URL    string `json:"url"`
	Format string `json:"format"` // lower-cased, possibly empty
}

// Client calls the CKAN action API of any host.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client using httpClient, or a plain http.Client when nil.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = new(http.Client)
	}
	return &Client{httpClient: httpClient}
}

func actionURL(host, action string) string {
	return strings.TrimRight(host, "/") + "/api/3/action/" + action
}

// ListProducts returns the names of every product published by host.
func (c *Client) ListProducts(ctx context.Context, host string) ([]string, error) {
	var jobj any
	if err := dadosbr.GetJSON(ctx, c.httpClient, actionURL(host, "package_list"), CatalogTimeout, &jobj); err != nil {
		return nil, fmt.Errorf("failed to list products of %s: %w", host, err)
	}
	jval, err := jsonpath.Get("$.result", jobj)
	if err != nil {
		// no result, no product
		return nil, nil
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("failed to list products of %s: result is %T, not a list", host, jval)
	}
	products := make([]string, 0, len(jlist))
	for _, v := range jlist {
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("failed to list products of %s: product name is %T, not a string", host, v)
		}
		products = append(products, name)
	}
	return products, nil
}

// ListResources returns the resources of a product. A response whose success flag is
// false or missing lists nothing.
func (c *Client) ListResources(ctx context.Context, host, product string) ([]Resource, error) {
	addr := actionURL(host, "package_show") + "?" + url.Values{"id": {product}}.Encode()
	var jobj any
	if err := dadosbr.GetJSON(ctx, c.httpClient, addr, CatalogTimeout, &jobj); err != nil {
		return nil, fmt.Errorf("failed to show product %q: %w", product, err)
	}
	if success, err := jsonpath.Get("$.success", jobj); err != nil || success != true {
		return nil, nil
	}

	jval, err := jsonpath.Get("$.result.resources", jobj)
	if err != nil {
		return nil, fmt.Errorf("failed to show product %q: %w", product, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("failed to show product %q: resources is %T, not a list", product, jval)
	}

	resources := make([]Resource, 0, len(jlist))
	for _, item := range jlist {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("failed to show product %q: resource is %T, not an object", product, item)
		}
		addr, ok := obj["url"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to show product %q: resource without url", product)
		}
		// format is optional
		format, _ := obj["format"].(string)
		resources = append(resources, Resource{URL: addr, Format: strings.ToLower(format)})
	}
	return resources, nil
}
