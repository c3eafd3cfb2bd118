package ckan

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListProducts(t *testing.T) {
	f := &fakeCatalog{packageList: `{"help": "...", "success": true, "result": ["carga-energia", "ear-diario-por-reservatorio"]}`}
	c, host := newTestCatalog(t, f)

	got, err := c.ListProducts(context.Background(), host+"/")
	if err != nil {
		t.Fatalf("ListProducts() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"carga-energia", "ear-diario-por-reservatorio"}, got); diff != "" {
		t.Errorf("ListProducts() mismatch (-want +got):\n%s", diff)
	}
}

func TestListProducts_Errors(t *testing.T) {
	testCases := []struct {
		name string
		f    *fakeCatalog
	}{
		{"server error", &fakeCatalog{status: 500}},
		{"invalid json", &fakeCatalog{packageList: `{"result": [`}},
		{"result not a list", &fakeCatalog{packageList: `{"result": "carga"}`}},
		{"name not a string", &fakeCatalog{packageList: `{"result": [1, 2]}`}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, host := newTestCatalog(t, tc.f)
			if _, err := c.ListProducts(context.Background(), host); err == nil {
				t.Error("ListProducts() expected an error")
			}
		})
	}
}

func TestListProducts_NoResult(t *testing.T) {
	c, host := newTestCatalog(t, &fakeCatalog{packageList: `{"success": true}`})
	got, err := c.ListProducts(context.Background(), host)
	if err != nil || len(got) != 0 {
		t.Errorf("ListProducts() = %v, %v want nothing", got, err)
	}
}

func TestListResources(t *testing.T) {
	f := &fakeCatalog{packages: map[string]string{
		"carga-energia": `{"success": true, "result": {"name": "carga-energia", "resources": [
			{"url": "http://files/carga_2023.csv", "format": "CSV"},
			{"url": "http://files/carga_2024.parquet", "format": "PARQUET"},
			{"url": "http://files/dicionario.pdf"}
		]}}`,
		"failed": `{"success": false, "result": {"resources": [{"url": "http://files/x.csv", "format": "csv"}]}}`,
		"silent": `{"result": {"resources": [{"url": "http://files/x.csv", "format": "csv"}]}}`,
	}}
	c, host := newTestCatalog(t, f)

	got, err := c.ListResources(context.Background(), host, "carga-energia")
	if err != nil {
		t.Fatalf("ListResources() unexpected error: %v", err)
	}
	want := []Resource{
		{URL: "http://files/carga_2023.csv", Format: "csv"},
		{URL: "http://files/carga_2024.parquet", Format: "parquet"},
		{URL: "http://files/dicionario.pdf", Format: ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListResources() mismatch (-want +got):\n%s", diff)
	}

	for _, product := range []string{"failed", "silent"} {
		got, err := c.ListResources(context.Background(), host, product)
		if err != nil || len(got) != 0 {
			t.Errorf("ListResources(%q) = %v, %v want an empty list", product, got, err)
		}
	}
}

func TestListResources_Errors(t *testing.T) {
	f := &fakeCatalog{packages: map[string]string{
		"no-resources": `{"success": true, "result": {}}`,
		"no-url":       `{"success": true, "result": {"resources": [{"format": "csv"}]}}`,
		"broken":       `{"success": true,`,
	}}
	c, host := newTestCatalog(t, f)
	for product := range f.packages {
		if _, err := c.ListResources(context.Background(), host, product); err == nil {
			t.Errorf("ListResources(%q) expected an error", product)
		}
	}
	// package_show answers 404 for unknown products.
	if _, err := c.ListResources(context.Background(), host, "unknown"); err == nil {
		t.Error("ListResources(unknown) expected an error")
	}
}
