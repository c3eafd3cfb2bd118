package cmd

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/fetch"
)

const serie = `<DataTable xmlns="http://MRCS/"><DocumentElement xmlns="">
<SerieHistorica><EstacaoCodigo>56425000</EstacaoCodigo><NivelConsistencia>2</NivelConsistencia><DataHora>2021-03-01 00:00:00</DataHora><Cota01>210</Cota01><Cota02>215</Cota02></SerieHistorica>
</DocumentElement></DataTable>`

const inventario = `<DataTable xmlns="http://MRCS/"><DocumentElement xmlns="">
<Table><Codigo>56425000</Codigo><Nome>PONTE NOVA</Nome><nmMunicipio>PONTE NOVA</nmMunicipio><nmEstado>MINAS GERAIS</nmEstado><Latitude>-20.38</Latitude><Longitude>-42.9</Longitude></Table>
</DocumentElement></DataTable>`

// setup points the commands to a fake upstream and captures their output.
func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ServiceANA.asmx/HidroSerieHistorica":
			w.Write([]byte(serie))
		case "/ServiceANA.asmx/HidroInventario":
			w.Write([]byte(inventario))
		case "/api/3/action/package_list":
			w.Write([]byte(`{"success": true, "result": ["carga-energia", "pld-horario"]}`))
		case "/api/3/action/package_show":
			w.Write([]byte(`{"success": true, "result": {"resources": [{"url": "http://` + r.Host + `/carga.csv", "format": "csv"}]}}`))
		case "/carga.csv":
			w.Write([]byte("din_instante;val_carga\n2024-01-01;5432,1\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	oldGlobal, oldStdout, oldOptions := global, stdout, clientOptions
	t.Cleanup(func() { global, stdout, clientOptions = oldGlobal, oldStdout, oldOptions })

	global = Config{ANABaseURL: srv.URL + "/ServiceANA.asmx", Plain: true}
	clientOptions = []fetch.Option{fetch.WithHost(dadosbr.ONS, srv.URL)}
	var out bytes.Buffer
	stdout = &out
	return &out
}

func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatal(err)
	}
	return c.Execute(context.Background(), f)
}

func TestHostsCmd(t *testing.T) {
	out := setup(t)
	if status := run(t, &hostsCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("hosts exited with %v", status)
	}
	for _, want := range []string{"**ana**: http://telemetriaws1.ana.gov.br/ServiceANA.asmx", "**ccee**: https://dadosabertos.ccee.org.br"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("hosts output lacks %q:\n%s", want, out)
		}
	}
	if status := run(t, &hostsCmd{}, "inmet"); status != subcommands.ExitUsageError {
		t.Errorf("hosts inmet exited with %v, want a usage error", status)
	}
}

func TestProductsCmd(t *testing.T) {
	out := setup(t)
	if status := run(t, &productsCmd{}, "ons"); status != subcommands.ExitSuccess {
		t.Fatalf("products exited with %v", status)
	}
	if !strings.Contains(out.String(), "- pld-horario") {
		t.Errorf("products output:\n%s", out)
	}
	if status := run(t, &productsCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("products without institution exited with %v", status)
	}
}

func TestStationsCmd(t *testing.T) {
	out := setup(t)
	if status := run(t, &stationsCmd{}, "-type", "cota", "-state", "MINAS GERAIS"); status != subcommands.ExitSuccess {
		t.Fatalf("stations exited with %v", status)
	}
	if !strings.Contains(out.String(), "56425000") {
		t.Errorf("stations output:\n%s", out)
	}
	if status := run(t, &stationsCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("stations without type exited with %v", status)
	}
}

func TestCollectCmd(t *testing.T) {
	out := setup(t)
	if status := run(t, &collectCmd{}, "ana", "cota", "56425000"); status != subcommands.ExitSuccess {
		t.Fatalf("collect exited with %v", status)
	}
	for _, want := range []string{"# ANA cota", "2021-03-02", "215"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("collect output lacks %q:\n%s", want, out)
		}
	}

	if status := run(t, &collectCmd{}, "ana", "cota"); status != subcommands.ExitUsageError {
		t.Errorf("collect without station exited with %v, want a usage error", status)
	}
}

func TestCollectCmd_Output(t *testing.T) {
	setup(t)
	dir := t.TempDir()

	testCases := []struct {
		file string
		args []string
		want string
	}{
		{"ana.csv", []string{"ana", "cota", "56425000"}, "date,56425000\n2021-03-01,210\n2021-03-02,215\n"},
		{"ons.csv", []string{"ons", "carga-energia"}, "din_instante,val_carga\n2024-01-01,\"5432,1\"\n"},
		{"ana.md", []string{"ana", "cota", "56425000"}, "2021-03-02"},
	}
	for _, tc := range testCases {
		name := filepath.Join(dir, tc.file)
		args := append([]string{"-o", name}, tc.args...)
		if status := run(t, &collectCmd{}, args...); status != subcommands.ExitSuccess {
			t.Errorf("collect -o %s exited with %v", tc.file, status)
			continue
		}
		content, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(content), tc.want) {
			t.Errorf("%s = %q, want %q", tc.file, content, tc.want)
		}
	}

	name := filepath.Join(dir, "ons.parquet")
	if status := run(t, &collectCmd{}, "-o", name, "ons", "carga-energia"); status != subcommands.ExitFailure {
		t.Errorf("collect of a catalog table to parquet exited with %v, want a failure", status)
	}
}

func TestTopicCmd(t *testing.T) {
	out := setup(t)
	if status := run(t, &topicCmd{}, "ana"); status != subcommands.ExitSuccess {
		t.Fatalf("topic exited with %v", status)
	}
	if !strings.Contains(out.String(), "# ANA stations") {
		t.Errorf("topic output:\n%s", out)
	}
	if status := run(t, &topicCmd{}, "missing"); status != subcommands.ExitFailure {
		t.Errorf("topic missing exited with %v", status)
	}
}

func TestCompletionCoversCommands(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("dados", flag.ContinueOnError), "dados")
	Register(commander)
	sub := completion().Sub
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if _, ok := sub[c.Name()]; !ok {
			t.Errorf("command %q has no completion", c.Name())
		}
	})

	defer func(g Config) { global = g }(global)
	fs := flag.NewFlagSet("dados", flag.ContinueOnError)
	SetFlags(fs, Config{})
	fs.VisitAll(func(f *flag.Flag) {
		if _, ok := completion().Flags[f.Name]; !ok {
			t.Errorf("flag -%s has no completion", f.Name)
		}
	})
}
