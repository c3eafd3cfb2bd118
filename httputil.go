package dadosbr

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/dadosbr/dadosbr/date"
	"github.com/dadosbr/dadosbr/internal/log"
)

// contains http utils shared by the upstream clients

// Get performs an HTTP GET bounded by timeout (zero means no extra bound) and returns
// the body of a 2xx response.
func Get(ctx context.Context, client *http.Client, addr string, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return buf.Bytes(), nil
}

// GetJSON performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func GetJSON(ctx context.Context, client *http.Client, addr string, timeout time.Duration, data interface{}) error {
	body, err := Get(ctx, client, addr, timeout)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base   http.RoundTripper
	period date.Period
	dir    string
}

// RoundTrip implements the http.RoundTripper interface. Entries are keyed by the current
// period, so they expire when the period changes.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	if req.Method != http.MethodGet {
		return c.base.RoundTrip(req)
	}
	key := fmt.Sprintf("%s %s %s", c.period.Identifier(date.Today()), req.Method, req.URL.String())
	key = fmt.Sprintf("dadosbr-%s-%x", c.period, sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		log.Debugw("cache hit", "url", req.URL.String())
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Debugw("http", "method", req.Method, "host", req.URL.Host, "path", req.URL.Path, "status", resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Warnw("cache write failed (ignored)", "url", req.URL.String(), "error", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache. DumpResponse leaves resp.Body readable.
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(c.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// entries only ever appear complete
	return os.Rename(f.Name(), filepath.Join(c.dir, key))
}

// NewCachingClient returns an http.Client whose GET responses are cached in the OS
// temporary directory until the current period ends.
func NewCachingClient(period date.Period) *http.Client {
	return &http.Client{Transport: &diskCache{base: http.DefaultTransport, period: period, dir: os.TempDir()}}
}
