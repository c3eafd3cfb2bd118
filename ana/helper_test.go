package ana

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// serieXML wraps monthly records into a HidroSerieHistorica response.
func serieXML(months ...string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<DataTable xmlns="http://MRCS/"><diffgr:diffgram xmlns:diffgr="urn:schemas-microsoft-com:xml-diffgram-v1"><DocumentElement xmlns="">` +
		strings.Join(months, "") +
		`</DocumentElement></diffgr:diffgram></DataTable>`
}

// month renders one SerieHistorica record with the given day values.
func month(code string, consistency int, dataHora, prefix string, values map[int]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<SerieHistorica><EstacaoCodigo>%s</EstacaoCodigo><NivelConsistencia>%d</NivelConsistencia><DataHora>%s</DataHora>",
		code, consistency, dataHora)
	for day := 1; day <= 31; day++ {
		if v, ok := values[day]; ok {
			fmt.Fprintf(&b, "<%s%02d>%s</%s%02d>", prefix, day, v, prefix, day)
		}
	}
	b.WriteString("</SerieHistorica>")
	return b.String()
}

// fakeService mimics ServiceANA.asmx.
type fakeService struct {
	series    map[string]string // station code as received -> response body
	inventory string
	delay     time.Duration

	hits        atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
	lastQuery   atomic.Value
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		m := f.maxInFlight.Load()
		if n <= m || f.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}
	f.lastQuery.Store(r.URL.Query())
	time.Sleep(f.delay)

	switch path.Base(r.URL.Path) {
	case "HidroSerieHistorica":
		body, ok := f.series[r.URL.Query().Get("codEstacao")]
		if !ok {
			body = serieXML()
		}
		w.Write([]byte(body))
	case "HidroInventario":
		w.Write([]byte(f.inventory))
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, f *fakeService) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	c := NewClient(srv.Client())
	c.SetBaseURL(srv.URL + "/ServiceANA.asmx/")
	return c
}
