package ana

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/dadosbr/dadosbr"
)

const (
	// DefaultFanOut is the default number of stations fetched concurrently.
	DefaultFanOut = 10

	// RequestTimeout bounds every call to the web service.
	RequestTimeout = 120 * time.Second
)

// DefaultBaseURL is the address of ServiceANA.asmx.
var DefaultBaseURL, _ = dadosbr.Host(dadosbr.ANA)

// Client provides access to the ANA web service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client using httpClient, or a plain http.Client when nil.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = new(http.Client)
	}
	return &Client{baseURL: DefaultBaseURL, httpClient: httpClient}
}

// SetBaseURL overrides the service address (for mirrors and tests).
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// get calls one operation of the service and returns the raw XML.
func (c *Client) get(ctx context.Context, operation, query string) ([]byte, error) {
	return dadosbr.Get(ctx, c.httpClient, c.baseURL+"/"+operation+"?"+query, RequestTimeout)
}

// eachElement calls fn for every element named local, at any depth, letting fn decode it.
// A document without any element is malformed.
func eachElement(r io.Reader, local string, fn func(*xml.Decoder, xml.StartElement) error) error {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	root := false
	for {
		tok, err := d.Token()
		if err == io.EOF {
			if !root {
				return io.ErrUnexpectedEOF
			}
			return nil
		}
		if err != nil {
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		root = true
		if start.Name.Local != local {
			continue
		}
		if err := fn(d, start); err != nil {
			return err
		}
	}
}
