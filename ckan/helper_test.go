package ckan

import (
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
)

// fakeCatalog serves the CKAN actions and the resource files of one host.
type fakeCatalog struct {
	packageList string            // package_list body
	packages    map[string]string // product id -> package_show body
	files       map[string][]byte // path -> file content
	status      int               // forced status for every action, when set

	hits atomic.Int32
}

func (f *fakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	switch r.URL.Path {
	case "/api/3/action/package_list":
		if f.status != 0 {
			w.WriteHeader(f.status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(f.packageList))
	case "/api/3/action/package_show":
		if f.status != 0 {
			w.WriteHeader(f.status)
			return
		}
		body, ok := f.packages[r.URL.Query().Get("id")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success": false, "error": {"message": "Not found"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	default:
		content, ok := f.files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write(content)
	}
}

func newTestCatalog(t *testing.T, f *fakeCatalog) (*Client, string) {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewClient(srv.Client()), srv.URL
}

func readFile(t *testing.T, name string) []byte {
	t.Helper()
	content, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	return content
}
