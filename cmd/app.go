// Package cmd implements the dados command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/dadosbr/dadosbr"
	"github.com/dadosbr/dadosbr/date"
	"github.com/dadosbr/dadosbr/fetch"
	"github.com/dadosbr/dadosbr/internal/log"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&hostsCmd{}, "catalog")
	c.Register(&productsCmd{}, "catalog")
	c.Register(&stationsCmd{}, "ana")
	c.Register(&collectCmd{}, "data")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var global Config

// stdout is where commands print their result.
var stdout io.Writer = os.Stdout

// extra options for fetch.New, set by tests to point catalogs to fake hosts.
var clientOptions []fetch.Option

// SetFlags declares the global flags, with cfg values as defaults.
func SetFlags(f *flag.FlagSet, cfg Config) {
	global = cfg
	f.StringVar(&global.ANABaseURL, "ana-url", cfg.ANABaseURL, "Address of the ANA ServiceANA.asmx web service. Defaults to the public one.")
	f.IntVar(&global.FanOut, "fanout", cfg.FanOut, "Number of ANA stations fetched concurrently (0 for the default).")
	f.BoolVar(&global.Cache, "cache", cfg.Cache, "Cache upstream responses on disk until the end of the day.")
	f.BoolVar(&global.Debug, "debug", cfg.Debug, "Enable debug logging.")
	f.DurationVar(&global.Timeout, "timeout", cfg.Timeout, "Maximum duration of a command (0 for none).")
	f.BoolVar(&global.Plain, "plain", cfg.Plain, "Print raw Markdown instead of rendering it for the terminal.")
}

// Init must be called once the flags are parsed.
func Init() error {
	return log.Init(global.Debug)
}

// Sync flushes the logs.
func Sync() { log.Sync() }

// newClient creates the fetch client from the global settings.
func newClient() *fetch.Client {
	var opts []fetch.Option
	if global.Cache {
		opts = append(opts, fetch.WithHTTPClient(dadosbr.NewCachingClient(date.Daily)))
	} else {
		opts = append(opts, fetch.WithHTTPClient(http.DefaultClient))
	}
	if global.ANABaseURL != "" {
		opts = append(opts, fetch.WithANABaseURL(global.ANABaseURL))
	}
	opts = append(opts, fetch.WithFanOut(global.FanOut))
	opts = append(opts, clientOptions...)
	return fetch.New(opts...)
}

// withTimeout bounds ctx with the global timeout, if any.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if global.Timeout > 0 {
		return context.WithTimeout(ctx, global.Timeout)
	}
	return context.WithCancel(ctx)
}

// printMarkdown renders a markdown document for the terminal.
func printMarkdown(md string) {
	if global.Plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
